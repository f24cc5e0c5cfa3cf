package handler

import (
	"context"

	"github.com/valyala/fasthttp"

	"coastfire/internal/logger"
)

type routeFunc func(h *Handler, c context.Context, ctx *fasthttp.RequestCtx, log *logger.Logger)

type route struct {
	method string
	handle routeFunc
}

// The bare paths are aliases for older clients.
var routes = map[string]route{
	"/api/collect-email": {fasthttp.MethodPost, (*Handler).collectEmail},
	"/collect-email":     {fasthttp.MethodPost, (*Handler).collectEmail},
	"/api/send-results":  {fasthttp.MethodPost, (*Handler).sendResults},
	"/send-results":      {fasthttp.MethodPost, (*Handler).sendResults},
	"/api/calculate":     {fasthttp.MethodPost, (*Handler).calculate},
	"/healthz":           {fasthttp.MethodGet, (*Handler).health},
}

func lookup(path string) (route, bool) {
	r, ok := routes[path]
	return r, ok
}
