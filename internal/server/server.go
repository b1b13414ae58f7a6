package server

import (
	"fmt"
	"net/http"
	"time"
)

// NewHTTPServer wraps a handler in an http.Server with sane timeouts.
func NewHTTPServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
