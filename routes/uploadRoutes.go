package routes

import (
	"net/http"

	controller "github.com/Invia-shubham/Food_Ordering_Backend/controllers"

	"github.com/gorilla/mux"
)

func UploadPublicRoutes(router *mux.Router) {
	router.HandleFunc("/upload", controller.UploadImage).Methods(http.MethodPost)
}
