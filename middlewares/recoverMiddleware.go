package middleware

import (
	"net/http"

	"github.com/rs/zerolog/log"

	helper "github.com/Invia-shubham/Food_Ordering_Backend/helper"
)

// Recover converts a handler panic into a 500 response instead of killing the
// connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("path", r.URL.Path).
					Msg("handler panicked")
				helper.RespondError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
