package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"

	httpapi "phishx/internal/api/http"
	"phishx/internal/api/http/logger"
	"phishx/internal/env"
	"phishx/internal/metrics"
)

func main() {
	// == bootstrap ==
	bootstrap := env.NewBootstrapManager(os.LookupEnv)
	cfg, err := bootstrap.Setup()
	if err != nil {
		log.Fatal(err)
	}

	node, _ := os.Hostname()

	// == rest api ==
	router := httpapi.NewApiRouter(httpapi.RouterOptions{
		Config:   cfg,
		Metrics:  metrics.NewRegistry(),
		AuditLog: logger.JsonLineLogger{Out: os.Stdout},
		Node:     node,
	})
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		TLSConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	go func() {
		var err error
		if cfg.TLSEnabled() {
			log.Printf("[*] server listening on %s (tls)", cfg.ListenAddr)
			err = srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			log.Printf("[*] server listening on %s", cfg.ListenAddr)
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// == shutdown ==
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, unix.SIGTERM)
	s := <-sig
	log.Printf("[*] received %s, shutting down", s)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[!] shutdown: %v", err)
	}
}
