package protocols

import (
	"io"
	"net/http"
	"net/url"
)

type HttpRequest struct {
	Body      io.ReadCloser
	Header    http.Header
	UrlParams url.Values
	Req       *http.Request
}

type HttpResponse struct {
	Body       io.ReadCloser
	Header     http.Header
	StatusCode int
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Controller interface {
	Handle(r HttpRequest) *HttpResponse
}
