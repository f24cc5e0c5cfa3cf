package handler

import (
	"bytes"
	"context"
	"errors"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"coastfire/internal/engine"
	"coastfire/internal/leads"
	"coastfire/internal/logger"
	"coastfire/internal/model"
)

const (
	msgEmailRequired     = "Email is required"
	msgResultsRequired   = "Email and calculator results are required"
	msgInvalidBody       = "Invalid request body"
	msgInvalidResults    = "Invalid calculator results"
	msgAlreadySubscribed = "You are already subscribed!"
	msgSubscribed        = "Successfully subscribed! Check your email for a welcome message."
	msgEmailSent         = "Email sent successfully!"
	msgEmailSimulated    = "Email simulation successful (Resend not configured)"
)

var errNoProjection = errors.New("calculator results carry no fireNumber")

func (h *Handler) collectEmail(c context.Context, ctx *fasthttp.RequestCtx, log *logger.Logger) {
	var req model.CollectEmailRequest
	if err := decodeBody(ctx, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, msgInvalidBody)
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		writeError(ctx, fasthttp.StatusBadRequest, msgEmailRequired)
		return
	}

	if leads.Exists(c, h.leads, log, email) {
		writeJSON(ctx, fasthttp.StatusOK, model.CollectEmailResponse{Success: true, Message: msgAlreadySubscribed})
		return
	}

	if _, err := h.leads.Save(c, leads.NewSignupLead(email, strings.TrimSpace(req.Source))); err != nil {
		if errors.Is(err, leads.ErrDuplicate) {
			writeJSON(ctx, fasthttp.StatusOK, model.CollectEmailResponse{Success: true, Message: msgAlreadySubscribed})
			return
		}
		log.Error("Saving signup lead failed", "email", email, "error", err)
		writeError(ctx, fasthttp.StatusInternalServerError, msgInternalError)
		return
	}

	// The lead is stored; a failed welcome email does not fail the signup.
	if out := h.mail.SendWelcome(c, email); !out.Delivered {
		log.Warn("Welcome email not delivered", "email", email, "error", out.Error)
	}

	writeJSON(ctx, fasthttp.StatusOK, model.CollectEmailResponse{Success: true, Message: msgSubscribed})
}

func (h *Handler) sendResults(c context.Context, ctx *fasthttp.RequestCtx, log *logger.Logger) {
	var req model.SendResultsRequest
	if err := decodeBody(ctx, &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, msgInvalidBody)
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !isObject(req.CalculatorResults) {
		writeError(ctx, fasthttp.StatusBadRequest, msgResultsRequired)
		return
	}

	result, inputs, err := resolveProjection(req)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, msgInvalidResults)
		return
	}

	if !leads.Exists(c, h.leads, log, email) {
		h.saveCalculatorLead(c, log, email, req)
	}

	out := h.mail.SendResults(c, email, result, inputs)
	switch {
	case !out.Delivered:
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to send email: "+out.Error)
	case out.Simulated:
		writeJSON(ctx, fasthttp.StatusOK, model.SendResultsResponse{Message: msgEmailSimulated, Email: email})
	default:
		writeJSON(ctx, fasthttp.StatusOK, model.SendResultsResponse{Message: msgEmailSent, EmailID: out.MessageID})
	}
}

// saveCalculatorLead persists the lead on a best-effort basis: failures are
// logged and the results email is still attempted.
func (h *Handler) saveCalculatorLead(c context.Context, log *logger.Logger, email string, req model.SendResultsRequest) {
	lead, err := leads.NewCalculatorLead(email, req.CalculatorResults, req.UserInputs)
	if err == nil {
		_, err = h.leads.Save(c, lead)
	}
	if err != nil {
		log.Warn("Saving calculator lead failed, continuing with email", "email", email, "error", err)
	}
}

// resolveProjection recomputes the projection from the submitted inputs when
// they validate, and otherwise falls back to the results the client sent,
// which must at least carry a positive fireNumber.
func resolveProjection(req model.SendResultsRequest) (model.ProjectionResult, *model.CalculatorInputs, error) {
	if isObject(req.UserInputs) {
		var form model.CalculatorForm
		if json.Unmarshal(req.UserInputs, &form) == nil {
			if in, res, err := engine.Calculate(form); err == nil {
				return res, &in, nil
			}
		}
	}

	var res model.ProjectionResult
	if err := json.Unmarshal(req.CalculatorResults, &res); err != nil {
		return model.ProjectionResult{}, nil, err
	}
	if res.FireNumber <= 0 {
		return model.ProjectionResult{}, nil, errNoProjection
	}
	return res, nil, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
