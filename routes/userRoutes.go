package routes

import (
	"net/http"

	controller "github.com/Invia-shubham/Food_Ordering_Backend/controllers"

	"github.com/gorilla/mux"
)

func UserPublicRoutes(router *mux.Router) {
	router.HandleFunc("/users", controller.SignUp).Methods(http.MethodPost)
	router.HandleFunc("/login", controller.Login).Methods(http.MethodPost)
}

func UserProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/users", controller.GetUsers).Methods(http.MethodGet)
	router.HandleFunc("/users/{user_id}", controller.GetUser).Methods(http.MethodGet)
	router.HandleFunc("/users/{user_id}", controller.UpdateUser).Methods(http.MethodPut)
	router.HandleFunc("/users/{user_id}", controller.DeleteUser).Methods(http.MethodDelete)
}
