package routes

import (
	"net/http"

	controller "github.com/Invia-shubham/Food_Ordering_Backend/controllers"

	"github.com/gorilla/mux"
)

func FoodProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/food", controller.CreateFood).Methods(http.MethodPost)
	router.HandleFunc("/food", controller.GetFoods).Methods(http.MethodGet)
	router.HandleFunc("/food/{food_id}", controller.GetFood).Methods(http.MethodGet)
	router.HandleFunc("/food/{food_id}", controller.UpdateFood).Methods(http.MethodPut)
	router.HandleFunc("/food/{food_id}", controller.DeleteFood).Methods(http.MethodDelete)
}
