package helper

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

// RespondJSON writes payload as the response body with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondSuccess writes the standard success envelope. Data is omitted when nil.
func RespondSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	body := map[string]interface{}{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	RespondJSON(w, status, body)
}

// RespondError writes the standard error envelope. Store internals never
// reach the caller; handlers pass a plain message instead.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// WriteStatusForInsert maps an insert failure to a response: a unique-index
// violation is the caller's fault, anything else is ours.
func WriteStatusForInsert(w http.ResponseWriter, err error, duplicateMsg, serverMsg string) {
	if mongo.IsDuplicateKeyError(err) {
		RespondError(w, http.StatusBadRequest, duplicateMsg)
		return
	}
	RespondError(w, http.StatusInternalServerError, serverMsg)
}
