package main

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jinwei/multistage_demo/go_greeter/internal/config"
	"github.com/jinwei/multistage_demo/go_greeter/internal/listener"
	"github.com/jinwei/multistage_demo/go_greeter/internal/routes"
)

func handler(w http.ResponseWriter, r *http.Request) {
	status, body := http.StatusOK, routes.NotFoundBody
	if route, ok := routes.Lookup(r.Method, r.URL.EscapedPath()); ok {
		body = route.Body
	} else {
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", routes.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func newServer() *http.Server {
	return &http.Server{
		Handler:      http.HandlerFunc(handler),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func main() {
	cfg := config.Load()

	ln, err := listener.Listen(cfg.Port)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	log.Printf("listening on %s", listener.URL(cfg.Port))
	log.Fatal(newServer().Serve(ln))
}
