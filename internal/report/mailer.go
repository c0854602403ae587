package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/abhisek/wordgarden/internal/config"
	"github.com/abhisek/wordgarden/internal/logger"
)

// ErrMailerDisabled is returned by Send when no sender address is set.
var ErrMailerDisabled = errors.New("report mailer disabled: WORDGARDEN_SES_FROM not configured")

// emailSender is the part of *sesv2.Client the mailer calls.
type emailSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Mailer sends reports through Amazon SES.
type Mailer struct {
	client   emailSender
	from     string
	fromName string
	log      *logger.Logger
}

// NewMailer returns a Mailer for cfg. An empty From yields a disabled
// mailer and no AWS configuration is loaded.
func NewMailer(ctx context.Context, cfg config.EmailConfig, log *logger.Logger) (*Mailer, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With("component", "mailer")
	if cfg.From == "" {
		log.Info("report mailer disabled")
		return &Mailer{log: log}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	log.Debug("report mailer enabled", "from", cfg.From, "region", cfg.Region)
	return newMailer(sesv2.NewFromConfig(awsCfg), cfg, log), nil
}

func newMailer(client emailSender, cfg config.EmailConfig, log *logger.Logger) *Mailer {
	return &Mailer{client: client, from: cfg.From, fromName: cfg.FromName, log: log}
}

// Enabled reports whether Send will deliver.
func (m *Mailer) Enabled() bool {
	return m.client != nil && m.from != ""
}

// Send emails r to the address to.
func (m *Mailer) Send(ctx context.Context, to string, r Report) error {
	if !m.Enabled() {
		return ErrMailerDisabled
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return errors.New("report mailer: empty recipient")
	}

	htmlBody, err := HTML(r)
	if err != nil {
		return err
	}

	from := m.from
	if m.fromName != "" {
		from = fmt.Sprintf("%s <%s>", m.fromName, m.from)
	}
	subject := fmt.Sprintf("Word Garden: %d words, %d stars", r.WordsLearned, r.Stars)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody), Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(Text(r)), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("send report to %s: %w", to, err)
	}
	m.log.Info("report sent", "to", to, "message_id", aws.ToString(out.MessageId))
	return nil
}
