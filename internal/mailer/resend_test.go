package mailer

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"coastfire/internal/config"
)

// startProvider serves handler on an in-memory listener and returns a client
// dialing it.
func startProvider(t *testing.T, handler fasthttp.RequestHandler) *ResendClient {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{Handler: handler}
	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() { _ = srv.Shutdown() })

	c := NewResendClient(config.EmailConfig{
		APIKey:  "re_test",
		BaseURL: "http://resend.test",
		Timeout: 2 * time.Second,
	})
	c.client.Dial = func(string) (net.Conn, error) { return ln.Dial() }
	return c
}

func TestResendClientSend(t *testing.T) {
	var got sendEmailRequest
	var auth, path, method string

	c := startProvider(t, func(ctx *fasthttp.RequestCtx) {
		auth = string(ctx.Request.Header.Peek(fasthttp.HeaderAuthorization))
		path = string(ctx.Path())
		method = string(ctx.Method())
		_ = json.Unmarshal(ctx.PostBody(), &got)
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"id":"msg_123"}`)
	})

	id, err := c.Send(context.Background(), Message{
		From:    "noreply@resend.dev",
		To:      []string{"jane@example.com"},
		Subject: "Hello",
		HTML:    "<p>hi</p>",
	})
	require.NoError(t, err)
	require.Equal(t, "msg_123", id)
	require.Equal(t, "Bearer re_test", auth)
	require.Equal(t, "/emails", path)
	require.Equal(t, fasthttp.MethodPost, method)
	require.Equal(t, []string{"jane@example.com"}, got.To)
	require.Equal(t, "Hello", got.Subject)
	require.Equal(t, "<p>hi</p>", got.HTML)
}

func TestResendClientProviderError(t *testing.T) {
	c := startProvider(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusUnprocessableEntity)
		ctx.SetBodyString(`{"statusCode":422,"name":"validation_error","message":"Invalid to field"}`)
	})

	_, err := c.Send(context.Background(), Message{To: []string{"bad"}})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, 422, apiErr.StatusCode)
	require.Equal(t, "validation_error", apiErr.Name)
	require.Equal(t, "Invalid to field", err.Error())
}

func TestResendClientErrorWithoutBody(t *testing.T) {
	c := startProvider(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusBadGateway)
	})

	_, err := c.Send(context.Background(), Message{To: []string{"a@b.c"}})
	require.EqualError(t, err, "email provider returned status 502")
}

func TestResendClientCanceledContext(t *testing.T) {
	calls := 0
	c := startProvider(t, func(ctx *fasthttp.RequestCtx) { calls++ })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Send(ctx, Message{To: []string{"a@b.c"}})
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, calls)
}
