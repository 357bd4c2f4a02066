package handler

import (
	"errors"
	"net/http"

	"github.com/forgo/catalog/internal/model"
	"github.com/forgo/catalog/internal/service"
)

// writeFormError redisplays a rejected form with its field errors, or falls
// back to a problem response for any other error. data receives the cleaned
// form under key.
func writeFormError(w http.ResponseWriter, view, title, key string, data map[string]interface{}, err error) {
	var invalid *service.ValidationError
	if !errors.As(err, &invalid) {
		WriteError(w, MapServiceError(err))
		return
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	data[key] = invalid.Form
	WriteView(w, http.StatusUnprocessableEntity, View{
		View:   view,
		Title:  title,
		Data:   data,
		Errors: invalid.Fields,
	})
}

// writeDeleteError redisplays the delete confirmation when the delete was
// blocked by dependents, or falls back to a problem response.
func writeDeleteError(w http.ResponseWriter, view, title string, detail interface{}, err error) {
	var blocked *service.BlockedError
	if !errors.As(err, &blocked) {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteView(w, http.StatusConflict, View{
		View:  view,
		Title: title,
		Data:  detail,
		Errors: []model.FieldError{{
			Field:   blocked.Kind,
			Message: blocked.Error(),
		}},
	})
}

func badBody(w http.ResponseWriter) {
	WriteError(w, model.NewBadRequestError("invalid request body"))
}
