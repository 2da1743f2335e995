// Package controller holds transport-agnostic request handlers.
//
// A Controller receives a decoded Request and always answers with a
// Response; failures are expressed as status codes, not Go errors.
package controller

import "context"

// Request is a decoded request payload.
type Request struct {
	Body map[string]any
}

// Response is a status code plus a body. For status codes below 300 the
// body is serialized as-is; otherwise it is an error whose message is
// exposed to the client.
type Response struct {
	StatusCode int
	Body       any
}

// Controller handles a single kind of request.
type Controller interface {
	Handle(ctx context.Context, req *Request) *Response
}

// stringParam returns the named field when it is a non-empty string.
func stringParam(req *Request, name string) (string, bool) {
	if req == nil || req.Body == nil {
		return "", false
	}
	s, ok := req.Body[name].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
