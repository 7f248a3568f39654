package handlers

import "net/http"

// Welcome answers on / so clients can check the API is up.
func Welcome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Banking API"})
}
