package notification

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"go-magang/internal/config"
	"go-magang/internal/shared/contextutil"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

const (
	DriverConsole  = "console"
	DriverSendgrid = "sendgrid"

	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

//go:generate mockgen -source=notification_sender.go -destination=mock/notification_sender_mock.go -package=mock
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender picks the delivery driver from MAIL_DRIVER.
func NewSender(cfg config.MailConfig, logger ...*zap.Logger) Sender {
	l := zap.L().Named("notification.sender")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.sender")
	}
	from := mail.Address{Name: cfg.FromName, Address: cfg.FromAddress}
	if cfg.Driver == DriverSendgrid {
		return NewSendgridSender(cfg.SendgridAPIKey, from, sendgridHost, l)
	}
	return &consoleSender{from: from, logger: l}
}

type sendgridSender struct {
	key    string
	host   string
	from   *sgmail.Email
	logger *zap.Logger
}

func NewSendgridSender(key string, from mail.Address, host string, logger *zap.Logger) Sender {
	if host == "" {
		host = sendgridHost
	}
	return &sendgridSender{
		key:    key,
		host:   host,
		from:   sgmail.NewEmail(from.Name, from.Address),
		logger: logger,
	}
}

func (s *sendgridSender) prepare(msg Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail(to.Name, to.Address))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(
		sgmail.NewContent("text/plain", msg.TextContent),
		sgmail.NewContent("text/html", msg.HTMLContent),
	)
	return m
}

func (s *sendgridSender) Send(ctx context.Context, msg Message) error {
	if !msg.HasRecipients() {
		return nil
	}

	req := sendgrid.GetRequest(s.key, sendgridEndpoint, s.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(s.prepare(msg))

	res, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("sendgrid request failed", zap.Error(err))
		return fmt.Errorf("send email: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		contextutil.GetLogger(ctx, s.logger).Error("sendgrid rejected email",
			zap.Int("status", res.StatusCode),
			zap.String("body", res.Body),
		)
		return fmt.Errorf("send email: status %d", res.StatusCode)
	}
	return nil
}

// consoleSender only logs; used in development.
type consoleSender struct {
	from   mail.Address
	logger *zap.Logger
}

func (s *consoleSender) Send(ctx context.Context, msg Message) error {
	if !msg.HasRecipients() {
		return nil
	}
	to := make([]string, 0, len(msg.To))
	for _, a := range msg.To {
		to = append(to, a.String())
	}
	contextutil.GetLogger(ctx, s.logger).Info("email",
		zap.String("from", s.from.String()),
		zap.String("to", strings.Join(to, ", ")),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.TextContent),
	)
	return nil
}
