package routes

import (
	"net/http"

	controller "github.com/Invia-shubham/Food_Ordering_Backend/controllers"

	"github.com/gorilla/mux"
)

func ItemPublicRoutes(router *mux.Router) {
	router.HandleFunc("/item", controller.CreateItem).Methods(http.MethodPost)
	router.HandleFunc("/items", controller.GetItems).Methods(http.MethodGet)
	router.HandleFunc("/items/category/{category_id}", controller.GetItemsByCategory).Methods(http.MethodGet)
	router.HandleFunc("/item/{item_id}", controller.GetItem).Methods(http.MethodGet)
	router.HandleFunc("/item/{item_id}", controller.UpdateItem).Methods(http.MethodPut)
	router.HandleFunc("/item/{item_id}", controller.DeleteItem).Methods(http.MethodDelete)
}
