package handler

import (
	"encoding/json"
	"net/http"

	"github.com/forgo/catalog/internal/model"
)

// View is the payload handed to the view sink. View names the template a
// renderer would use; Errors is set when a submitted form is redisplayed.
type View struct {
	View   string             `json:"view"`
	Title  string             `json:"title"`
	Data   interface{}        `json:"data,omitempty"`
	Errors []model.FieldError `json:"errors,omitempty"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteView renders a view through the JSON view sink
func WriteView(w http.ResponseWriter, status int, v View) {
	WriteJSON(w, status, v)
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	err.WriteJSON(w)
}

// Redirect sends the client to url with 303 See Other so the follow-up
// request is a GET
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}
