package main

import (
	"context"
	"log"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	hzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/jinwei/multistage_demo/go_greeter/internal/config"
	"github.com/jinwei/multistage_demo/go_greeter/internal/listener"
	"github.com/jinwei/multistage_demo/go_greeter/internal/routes"
)

func respond(status int, body string) app.HandlerFunc {
	return func(_ context.Context, ctx *app.RequestContext) {
		ctx.SetContentType(routes.ContentType)
		ctx.SetStatusCode(status)
		ctx.SetBodyString(body)
	}
}

// newServer registers the route table. The router sees the raw request path,
// trailing-slash redirects are off so "/health/" is a plain 404, and method
// mismatches fall through to NoRoute.
func newServer(opts ...hzconfig.Option) *server.Hertz {
	opts = append([]hzconfig.Option{
		server.WithUseRawPath(true),
		server.WithRedirectTrailingSlash(false),
		server.WithHandleMethodNotAllowed(false),
		server.WithReadTimeout(10 * time.Second),
		server.WithWriteTimeout(10 * time.Second),
		server.WithIdleTimeout(60 * time.Second),
	}, opts...)

	h := server.New(opts...)
	for _, r := range routes.Table {
		h.Handle(r.Method, r.Path, respond(consts.StatusOK, r.Body))
	}
	h.NoRoute(respond(consts.StatusNotFound, routes.NotFoundBody))
	return h
}

func main() {
	hlog.SetLevel(hlog.LevelWarn)
	cfg := config.Load()

	ln, err := listener.Listen(cfg.Port)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	h := newServer(server.WithListener(ln))

	log.Printf("listening on %s", listener.URL(cfg.Port))
	log.Fatal(h.Run())
}
