package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"coastfire/internal/config"
	"coastfire/internal/logger"
	"coastfire/internal/model"
)

type fakeSender struct {
	sent []Message
	id   string
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg Message) (string, error) {
	f.sent = append(f.sent, msg)
	return f.id, f.err
}

var emailCfg = config.EmailConfig{
	FromEmail: "team@coastfire.example",
	SiteURL:   "https://coastfire.example",
}

func midCareer() (model.ProjectionResult, model.CalculatorInputs) {
	in := model.CalculatorInputs{
		CurrentAge:          30,
		CurrentSavings:      50000,
		RetirementAge:       60,
		DesiredAnnualIncome: 80000,
		WithdrawalRatePct:   4,
		ExpectedReturnPct:   7,
	}
	return model.ProjectionResult{
		FireNumber:        2000000,
		CoastFireNumber:   262734.23,
		CurrentSavings:    50000,
		FutureValue:       380612.75,
		AdditionalNeeded:  212734.23,
		YearsToRetirement: 30,
		MonthlyIncome:     6666.67,
	}, in
}

func TestSendWelcome(t *testing.T) {
	sender := &fakeSender{id: "msg_1"}
	d := NewDispatcher(sender, emailCfg, logger.Nop())

	out := d.SendWelcome(context.Background(), "jane@example.com")

	require.Equal(t, DeliveryOutcome{Delivered: true, MessageID: "msg_1"}, out)
	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	require.Equal(t, "team@coastfire.example", msg.From)
	require.Equal(t, []string{"jane@example.com"}, msg.To)
	require.Equal(t, welcomeSubject, msg.Subject)
	require.Contains(t, msg.HTML, `href="https://coastfire.example/calculator/coast-fire"`)
}

func TestSendResultsInProgress(t *testing.T) {
	sender := &fakeSender{id: "msg_2"}
	d := NewDispatcher(sender, emailCfg, logger.Nop())
	res, in := midCareer()

	out := d.SendResults(context.Background(), "jane@example.com", res, &in)

	require.True(t, out.Delivered)
	require.Equal(t, "msg_2", out.MessageID)
	msg := sender.sent[0]
	require.Equal(t, resultsSubjectProgress, msg.Subject)
	require.Contains(t, msg.HTML, "$262,734")
	require.Contains(t, msg.HTML, "$2,000,000")
	require.Contains(t, msg.HTML, "$212,734")
	require.Contains(t, msg.HTML, "$380,613")
	require.Contains(t, msg.HTML, "in 30 years")
	require.Contains(t, msg.HTML, "the 4% rule")
	require.Contains(t, msg.HTML, "Additional Needed")
}

func TestSendResultsReached(t *testing.T) {
	sender := &fakeSender{id: "msg_3"}
	d := NewDispatcher(sender, emailCfg, logger.Nop())
	res, in := midCareer()
	res.IsCoastFire = true
	res.AdditionalNeeded = 0

	d.SendResults(context.Background(), "jane@example.com", res, &in)

	msg := sender.sent[0]
	require.Equal(t, resultsSubjectReached, msg.Subject)
	require.Contains(t, msg.HTML, "by age 60")
	require.NotContains(t, msg.HTML, "Additional Needed")
}

func TestSendResultsWithoutInputs(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, emailCfg, logger.Nop())
	res, _ := midCareer()

	out := d.SendResults(context.Background(), "jane@example.com", res, nil)

	require.True(t, out.Delivered)
	require.NotContains(t, sender.sent[0].HTML, "% rule")
}

func TestSendFailureIsReported(t *testing.T) {
	sender := &fakeSender{err: errors.New("domain not verified")}
	d := NewDispatcher(sender, emailCfg, logger.Nop())
	res, in := midCareer()

	out := d.SendResults(context.Background(), "jane@example.com", res, &in)

	require.False(t, out.Delivered)
	require.False(t, out.Simulated)
	require.Equal(t, "domain not verified", out.Error)
}

func TestSimulatedWhenUnconfigured(t *testing.T) {
	d := FromConfig(emailCfg, logger.Nop())
	require.True(t, d.Simulated())

	out := d.SendWelcome(context.Background(), "jane@example.com")
	require.Equal(t, DeliveryOutcome{Delivered: true, Simulated: true}, out)
}

func TestFromConfigWithKeyUsesResend(t *testing.T) {
	cfg := emailCfg
	cfg.APIKey = "re_live"
	d := FromConfig(cfg, logger.Nop())
	require.False(t, d.Simulated())
	_, ok := d.sender.(*ResendClient)
	require.True(t, ok)
}

func TestRenderResultsZeroValues(t *testing.T) {
	html, err := renderResults("https://coastfire.example", model.ProjectionResult{}, nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	require.Contains(t, html, "$0")
}
