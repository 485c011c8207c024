package main

import (
	"log"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/jinwei/multistage_demo/go_greeter/internal/config"
	"github.com/jinwei/multistage_demo/go_greeter/internal/listener"
	"github.com/jinwei/multistage_demo/go_greeter/internal/routes"
)

var contentType = []byte(routes.ContentType)

func handler(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.SetContentTypeBytes(contentType)

	// Path() is normalized ("//health" becomes "/health"); route on the path as sent.
	route, ok := routes.Lookup(string(ctx.Method()), string(ctx.URI().PathOriginal()))
	if !ok {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		ctx.SetBodyString(routes.NotFoundBody)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString(route.Body)
}

func newServer() *fasthttp.Server {
	return &fasthttp.Server{
		Handler:               handler,
		Name:                  "fasthttp",
		NoDefaultServerHeader: true,
		NoDefaultContentType:  true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           60 * time.Second,
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
