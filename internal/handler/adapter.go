package handler

import (
	"errors"
	"net/http"

	"github.com/msomdec/signup-api/internal/controller"
)

// AdaptRoute exposes a controller as an HTTP handler.
// Request:  JSON object, decoded into controller.Request.Body
// Response: 2xx → the controller body as JSON; otherwise {"error": "..."}
func AdaptRoute(c controller.Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := readJSON(w, r, &body); err != nil {
			if errors.Is(err, errBodyTooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "Request body too large.")
				return
			}
			writeError(w, http.StatusBadRequest, "Invalid request body.")
			return
		}

		resp := c.Handle(r.Context(), &controller.Request{Body: body})
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			writeJSON(w, resp.StatusCode, resp.Body)
			return
		}
		writeError(w, resp.StatusCode, errorMessage(resp))
	})
}

func errorMessage(resp *controller.Response) string {
	switch body := resp.Body.(type) {
	case error:
		return body.Error()
	case string:
		return body
	default:
		return http.StatusText(resp.StatusCode)
	}
}
