// Package sitegate serves a static site over HTTPS with certificates
// from Let's Encrypt, and redirects plain HTTP traffic to the HTTPS
// origin.
package sitegate

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"golang.org/x/crypto/acme/autocert"
)

type server struct {
	config  *Config
	handler http.Handler
}

func newServer(config *Config) *server {
	mux := http.NewServeMux()
	mux.Handle("/api/ping", jsonAPI(ping))
	mux.Handle("/", http.FileServer(http.Dir(config.staticDir())))

	// Body handling is mounted ahead of all routes, in fixed order:
	// size limit first, then form parsing.
	handler := limitBody(config.maxBodyBytes(), parseBody(mux))

	return &server{config: config, handler: handler}
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Serve runs the HTTPS server and the HTTP redirect server. It blocks
// until either listener fails.
func Serve(config *Config) error {
	if config.Domain == "" {
		return fmt.Errorf("no domain configured")
	}

	if err := os.MkdirAll(config.certDir(), 0755); err != nil {
		return fmt.Errorf("make cert cache dir: %w", err)
	}

	m := &autocert.Manager{
		Cache:      autocert.DirCache(config.certDir()),
		Prompt:     autocert.AcceptTOS,
		Email:      config.Email,
		HostPolicy: autocert.HostWhitelist(config.Domain),
	}

	httpsServer := &http.Server{
		Addr:      config.httpsAddr(),
		TLSConfig: m.TLSConfig(),
		Handler:   newServer(config),
	}
	redirectServer := &http.Server{
		Addr:    config.httpAddr(),
		Handler: redirectHandler(config.Domain),
	}

	log.Printf("serving %s at %s", config.Domain, httpsServer.Addr)
	log.Printf("redirecting %s to https", redirectServer.Addr)

	errc := make(chan error, 2)
	go func() { errc <- redirectServer.ListenAndServe() }()
	go func() { errc <- httpsServer.ListenAndServeTLS("", "") }()
	return <-errc
}
