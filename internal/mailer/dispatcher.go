// Package mailer renders and delivers the welcome and results emails.
package mailer

import (
	"context"

	"coastfire/internal/config"
	"coastfire/internal/logger"
	"coastfire/internal/model"
)

const (
	welcomeSubject         = "🔥 Welcome! Your FIRE journey starts now"
	resultsSubjectReached  = "🔥 Your Coast FIRE Results - You Made It!"
	resultsSubjectProgress = "🔥 Your Coast FIRE Results - Keep Going!"
)

// DeliveryOutcome describes one send attempt. Simulated is set when no
// provider is configured; such outcomes still count as delivered.
type DeliveryOutcome struct {
	Delivered bool
	Simulated bool
	MessageID string
	Error     string
}

type Dispatcher struct {
	sender  Sender
	from    string
	siteURL string
	log     *logger.Logger
}

// NewDispatcher wires a dispatcher. A nil sender puts it in simulation mode.
func NewDispatcher(sender Sender, cfg config.EmailConfig, baseLog *logger.Logger) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		from:    cfg.FromEmail,
		siteURL: cfg.SiteURL,
		log:     baseLog.With("service", "Dispatcher"),
	}
}

// FromConfig picks the Resend client when an API key is configured and
// simulation mode otherwise.
func FromConfig(cfg config.EmailConfig, baseLog *logger.Logger) *Dispatcher {
	var sender Sender
	if cfg.Configured() {
		sender = NewResendClient(cfg)
	}
	return NewDispatcher(sender, cfg, baseLog)
}

func (d *Dispatcher) Simulated() bool {
	return d.sender == nil
}

func (d *Dispatcher) SendWelcome(ctx context.Context, email string) DeliveryOutcome {
	html, err := renderWelcome(d.siteURL)
	if err != nil {
		return d.failed("welcome", email, err)
	}
	return d.send(ctx, "welcome", Message{
		From:    d.from,
		To:      []string{email},
		Subject: welcomeSubject,
		HTML:    html,
	})
}

// SendResults emails a projection. inputs may be nil when only the client's
// results are known; the email then omits input-derived details.
func (d *Dispatcher) SendResults(ctx context.Context, email string, result model.ProjectionResult, inputs *model.CalculatorInputs) DeliveryOutcome {
	html, err := renderResults(d.siteURL, result, inputs)
	if err != nil {
		return d.failed("results", email, err)
	}
	subject := resultsSubjectProgress
	if result.IsCoastFire {
		subject = resultsSubjectReached
	}
	return d.send(ctx, "results", Message{
		From:    d.from,
		To:      []string{email},
		Subject: subject,
		HTML:    html,
	})
}

func (d *Dispatcher) send(ctx context.Context, kind string, msg Message) DeliveryOutcome {
	if d.sender == nil {
		d.log.Info("Email provider not configured, simulating send", "kind", kind, "email", msg.To[0])
		return DeliveryOutcome{Delivered: true, Simulated: true}
	}

	id, err := d.sender.Send(ctx, msg)
	if err != nil {
		return d.failed(kind, msg.To[0], err)
	}
	d.log.Info("Email sent", "kind", kind, "email", msg.To[0], "message_id", id)
	return DeliveryOutcome{Delivered: true, MessageID: id}
}

func (d *Dispatcher) failed(kind, email string, err error) DeliveryOutcome {
	d.log.Error("Email delivery failed", "kind", kind, "email", email, "error", err)
	return DeliveryOutcome{Error: err.Error()}
}
