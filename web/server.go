package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/unrolled/render"

	"github.com/N0HBDY-code/GOHLS-sub000/controller"
)

type Server struct {
	server *http.Server
}

// AdminCreds guards the mutating draft and playoff routes. Full user
// management is handled upstream; this is only the elevated-role gate.
type AdminCreds struct {
	User     string
	Password string
}

func NewServer(port int, ctrl controller.C, creds AdminCreds) (*Server, error) {
	render := render.New()
	router := getRouter(ctrl, render, creds)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}
