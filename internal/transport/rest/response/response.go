package response

import (
	"encoding/json"
	"net/http"
)

// SuccessBody is the success envelope the frontend consumes:
// {"status":"success","message":"...","user":{...}}
type SuccessBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	User    any    `json:"user"`
}

// ErrorBody:
// {"error":{"code":"...","message":"...","meta":{...},"request_id":"..."}}
type ErrorBody struct {
	Error ErrorPayload `json:"error"`
}

type ErrorPayload struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Meta      map[string]string `json:"meta,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// JSON writes raw JSON with Content-Type.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Success wraps a user payload in the success envelope.
func Success(w http.ResponseWriter, status int, message string, user any) {
	JSON(w, status, SuccessBody{
		Status:  "success",
		Message: message,
		User:    user,
	})
}

// Fail writes the error body.
func Fail(w http.ResponseWriter, status int, code, message string, meta map[string]string, requestID string) {
	JSON(w, status, ErrorBody{
		Error: ErrorPayload{
			Code:      code,
			Message:   message,
			Meta:      meta,
			RequestID: requestID,
		},
	})
}
