package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
)

const maxFormBytes = 1 << 20

var errUnsupportedBody = errors.New("unsupported content type")

// mediaType returns the request's body media type. A missing header is
// treated as a url-encoded form post.
func mediaType(r *http.Request) (string, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return "application/x-www-form-urlencoded", nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	return mt, err
}

// decodeForm decodes a submitted form into v. JSON bodies are decoded
// directly; url-encoded bodies are mapped onto v's json field names, taking
// the first value of each field.
func decodeForm(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	mt, err := mediaType(r)
	if err != nil {
		return err
	}

	switch mt {
	case "application/json":
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		return decoder.Decode(v)
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return err
		}
		fields := make(map[string]string, len(r.PostForm))
		for key, values := range r.PostForm {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}
		raw, err := json.Marshal(fields)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, v)
	default:
		return errUnsupportedBody
	}
}

// decodeDeleteID reads the id a delete form submits under field.
// An empty body yields an empty id.
func decodeDeleteID(w http.ResponseWriter, r *http.Request, field string) (string, error) {
	if r.ContentLength == 0 {
		return "", nil
	}
	body := map[string]string{}
	if err := decodeForm(w, r, &body); err != nil {
		return "", err
	}
	return body[field], nil
}
