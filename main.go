package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Invia-shubham/Food_Ordering_Backend/config"
	middleware "github.com/Invia-shubham/Food_Ordering_Backend/middlewares"
	"github.com/Invia-shubham/Food_Ordering_Backend/routes"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	config.Load()
	config.ConnectDB()
	config.EnsureIndexes()

	router := mux.NewRouter()
	router.Use(middleware.Recover)
	router.Use(middleware.RequestLogger)

	// Uploaded images are retrievable under /uploads.
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.App.UploadDir))))

	api := router.PathPrefix("/api").Subrouter()

	// Public routes (no authentication)
	routes.UserPublicRoutes(api)
	routes.ItemPublicRoutes(api)
	routes.UploadPublicRoutes(api)

	// Protected routes behind the bearer-token middleware
	secured := api.PathPrefix("/").Subrouter()
	secured.Use(middleware.Authentication)
	routes.UserProtectedRoutes(secured)
	routes.FoodProtectedRoutes(secured)
	routes.CategoryProtectedRoutes(secured)

	log.Info().Str("port", config.App.Port).Msg("server running")
	if err := http.ListenAndServe(":"+config.App.Port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
