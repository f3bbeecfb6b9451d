package lead

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/iwvelando/teaser/internal/mailer"
	"github.com/iwvelando/teaser/pkg/constants"
)

// Settings address the notification email.
type Settings struct {
	From    string
	To      string
	Bcc     string
	Subject string
}

// Result is the JSON answer to a submission: the provider payload merged with
// a success flag and the lead id.
type Result map[string]any

// Success reports the success flag of r.
func (r Result) Success() bool {
	ok, _ := r["success"].(bool)
	return ok
}

// Service validates requests and notifies the sales inbox.
type Service struct {
	client    mailer.Client
	settings  Settings
	unitPrice float64
	logger    *zap.Logger
}

// NewService returns a Service pricing units at unitPrice.
func NewService(client mailer.Client, settings Settings, unitPrice float64, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.Subject == "" {
		settings.Subject = constants.DefaultLeadSubject
	}
	return &Service{client: client, settings: settings, unitPrice: unitPrice, logger: logger}
}

// UnitPrice returns the face value each unit is priced at.
func (s *Service) UnitPrice() float64 {
	return s.unitPrice
}

// Submit validates form and sends the notification. Invalid forms return a
// *ValidationError. A provider rejection is not an error: the result carries
// success=false and the provider's payload.
func (s *Service) Submit(ctx context.Context, form Form) (Result, error) {
	req, err := form.Validate(s.unitPrice)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	logger := s.logger.With(zap.String("op", "lead.Submit"), zap.String("leadId", id))

	html, err := RenderEmail(req)
	if err != nil {
		return nil, err
	}

	msg := mailer.Message{
		From:    s.settings.From,
		To:      []string{s.settings.To},
		ReplyTo: req.Email,
		Subject: s.settings.Subject,
		HTML:    html,
	}
	if s.settings.Bcc != "" {
		msg.Bcc = []string{s.settings.Bcc}
	}

	resp, err := s.client.Send(ctx, msg)
	if err != nil {
		logger.Error("failed to send notification", zap.Error(err))
		return nil, eris.Wrap(err, "lead: send notification")
	}

	out := make(Result, len(resp.Body)+2)
	for k, v := range resp.Body {
		out[k] = v
	}
	out["success"] = resp.OK
	out["leadId"] = id

	if resp.OK {
		logger.Info("investment request sent",
			zap.Float64("units", req.Units),
			zap.Float64("value", req.Value),
		)
	} else {
		logger.Warn("notification rejected by provider", zap.Int("status", resp.StatusCode))
	}
	return out, nil
}
