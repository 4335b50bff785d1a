package httpserver

import (
	"net/http"
	"time"

	"casebook/internal/platform/config"
)

// New builds the listener. The write timeout leaves room for a handler that
// runs to the full request timeout to still write its error response.
func New(cfg config.Server, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}
