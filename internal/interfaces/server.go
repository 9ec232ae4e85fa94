package interfaces

import (
	"net/http"
)

// Server defines the methods an HTTP server implementation provides to the
// application.
type Server interface {
	AddRoute(route string, handler func(w http.ResponseWriter, r *http.Request)) error
	ListenAndServe() error
}
