package httptransport

import (
	"encoding/json"
	"net/http"
)

// Default error texts, used when a failure carries no specific message.
var statusText = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not Found",
	http.StatusUnprocessableEntity: "Invalid Request",
	http.StatusInternalServerError: "Internal Server Error",
}

// writeEnvelope renders the response envelope: {"response": ..., "code":
// 200} on success, {"error": ..., "code": <status>} otherwise. An empty
// error payload falls back to the default text for the status.
func writeEnvelope(w http.ResponseWriter, payload any, code int) {
	body := make(map[string]any, 2)
	body["code"] = code
	if code == http.StatusOK {
		body["response"] = payload
	} else {
		msg, _ := payload.(string)
		if msg == "" {
			msg = statusText[code]
			if msg == "" {
				msg = "Unknown Error"
			}
		}
		body["error"] = msg
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
