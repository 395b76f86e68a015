// Package httputil holds the JSON response helpers shared by HTTP handlers.
package httputil

import (
	"encoding/json"
	"io"
	"net/http"

	dErrors "employee-api/pkg/domain-errors"
)

// GenericErrorMessage is written for every 5xx response; details stay in logs.
const GenericErrorMessage = "An unexpected error occurred"

const maxBodyBytes = 1 << 20

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into an HTTP status and body. Client errors carry
// their message as a JSON string, not-found has no body and server-side
// failures get a generic message.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status := StatusFor(code)

	switch code {
	case dErrors.CodeNotFound:
		w.WriteHeader(status)
	case dErrors.CodeBadRequest, dErrors.CodeValidation:
		de, _ := dErrors.From(err)
		WriteJSON(w, status, de.Message)
	case dErrors.CodeTooManyRequests:
		WriteJSON(w, status, "Too many requests")
	case dErrors.CodeUnavailable:
		WriteJSON(w, status, "Service unavailable")
	default:
		WriteJSON(w, status, GenericErrorMessage)
	}
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeValidation:
		return http.StatusBadRequest
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeTooManyRequests:
		return http.StatusTooManyRequests
	case dErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON reads a size-limited JSON body into T. Decoding failures are
// returned as CodeBadRequest.
func DecodeJSON[T any](r *http.Request) (T, error) {
	var v T
	body := io.LimitReader(r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&v); err != nil {
		return v, dErrors.Wrap(err, dErrors.CodeBadRequest, "Malformed request body")
	}
	return v, nil
}
