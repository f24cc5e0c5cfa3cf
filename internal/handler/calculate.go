package handler

import (
	"context"
	"errors"

	"github.com/valyala/fasthttp"

	"coastfire/internal/engine"
	"coastfire/internal/leads"
	"coastfire/internal/logger"
	"coastfire/internal/model"
)

func (h *Handler) calculate(_ context.Context, ctx *fasthttp.RequestCtx, log *logger.Logger) {
	var form model.CalculatorForm
	if err := decodeBody(ctx, &form); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, msgInvalidBody)
		return
	}

	in, res, err := engine.Calculate(form)
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			log.Debug("Calculator input rejected", "code", verr.Code, "field", verr.Field)
			writeJSON(ctx, fasthttp.StatusBadRequest, model.ErrorResponse{
				Status: fasthttp.StatusBadRequest,
				Error:  verr.Message,
				Code:   verr.Code,
				Field:  verr.Field,
			})
			return
		}
		writeError(ctx, fasthttp.StatusInternalServerError, msgInternalError)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, model.CalculateResponse{Inputs: in, Result: res})
}

func (h *Handler) health(_ context.Context, ctx *fasthttp.RequestCtx, _ *logger.Logger) {
	resp := model.HealthResponse{Status: "ok", Database: "configured", Email: "configured"}
	if _, ok := h.leads.(leads.Unconfigured); ok {
		resp.Database = "unconfigured"
	}
	if h.mail.Simulated() {
		resp.Email = "simulated"
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}
