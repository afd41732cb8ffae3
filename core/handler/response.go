package handler

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as an application/json response with the given status.
// 204 and 304 are written without a body.
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	switch status {
	case http.StatusNoContent, http.StatusNotModified:
		return nil
	}
	return json.NewEncoder(w).Encode(v)
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Redirect replies with a redirect to url. A zero code means 303 See Other.
func Redirect(w http.ResponseWriter, r *http.Request, url string, code int) error {
	if code == 0 {
		code = http.StatusSeeOther
	}
	http.Redirect(w, r, url, code)
	return nil
}

// JSONErrorHandler renders errors as HTTPError JSON.
func JSONErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	httpErr := ToHTTPError(err)
	_ = JSON(w, httpErr.Status, httpErr)
}

// String writes s as a text/plain response with the given status.
func String(w http.ResponseWriter, status int, s string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write([]byte(s))
	return err
}
