package errors

import (
	"encoding/json"
	"net/http"
)

type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StatusCode returns the HTTP status an error maps to.
func StatusCode(err error) int {
	switch {
	case As(err, new(*UnauthenticatedError)):
		return http.StatusUnauthorized
	case As(err, new(*BadRequestError)),
		As(err, new(*InvalidAmountError)),
		As(err, new(*InsufficientFundsError)):
		return http.StatusBadRequest
	case As(err, new(*AccountNotFoundError)):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// HandleHTTPError handles http errors
func HandleHTTPError(w http.ResponseWriter, err error) {
	httpErr := &HTTPError{Code: StatusCode(err)}
	if httpErr.Code == http.StatusInternalServerError {
		httpErr.Message = "Internal server error"
	} else {
		httpErr.Message = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if httpErr.Code == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="ledger"`)
	}
	w.WriteHeader(httpErr.Code)
	json.NewEncoder(w).Encode(httpErr)
}
