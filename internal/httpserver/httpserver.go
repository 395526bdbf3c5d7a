package httpserver

import (
	"log"
	"net/http"
	"time"
)

// Start blocks serving mux on addr.
func Start(addr string, mux *http.ServeMux) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("listening on %s", addr)
	return srv.ListenAndServe()
}
