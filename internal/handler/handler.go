package handler

import (
	"bytes"
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"coastfire/internal/leads"
	"coastfire/internal/logger"
	"coastfire/internal/mailer"
	"coastfire/internal/model"
)

const msgInternalError = "Internal server error"

// Notifier delivers the lead emails.
type Notifier interface {
	SendWelcome(ctx context.Context, email string) mailer.DeliveryOutcome
	SendResults(ctx context.Context, email string, result model.ProjectionResult, inputs *model.CalculatorInputs) mailer.DeliveryOutcome
	Simulated() bool
}

type Handler struct {
	leads   leads.Gateway
	mail    Notifier
	log     *logger.Logger
	timeout time.Duration
}

func New(g leads.Gateway, n Notifier, baseLog *logger.Logger, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Handler{
		leads:   g,
		mail:    n,
		log:     baseLog.With("component", "http"),
		timeout: timeout,
	}
}

// Handle is the fasthttp entry point: it routes the request, recovers
// panics into a 500 and logs one line per request.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	reqID := uuid.NewString()
	ctx.Response.Header.Set("X-Request-Id", reqID)
	log := h.log.With("request_id", reqID)

	defer func() {
		if r := recover(); r != nil {
			log.Error("Handler panic", "panic", r)
			writeError(ctx, fasthttp.StatusInternalServerError, msgInternalError)
		}
		log.Info("Request handled",
			"method", string(ctx.Method()),
			"path", string(ctx.Path()),
			"status", ctx.Response.StatusCode(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}()

	rt, ok := lookup(string(ctx.Path()))
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
		return
	}
	if string(ctx.Method()) != rt.method {
		ctx.Response.Header.Set(fasthttp.HeaderAllow, rt.method)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()
	rt.handle(h, reqCtx, ctx, log)
}

// decodeBody unmarshals the JSON body into v. An empty body leaves v zero.
func decodeBody(ctx *fasthttp.RequestCtx, v any) error {
	body := bytes.TrimSpace(ctx.PostBody())
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = fasthttp.StatusInternalServerError
		body = []byte(`{"status":500,"error":"Internal server error"}`)
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status: status,
		Error:  message,
	})
}
