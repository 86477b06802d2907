package routes

import (
	"net/http"

	controller "github.com/Invia-shubham/Food_Ordering_Backend/controllers"

	"github.com/gorilla/mux"
)

func CategoryProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/category", controller.CreateCategory).Methods(http.MethodPost)
	router.HandleFunc("/category", controller.GetCategories).Methods(http.MethodGet)
}
