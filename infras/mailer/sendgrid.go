package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

const sendgridEndpoint = "https://api.sendgrid.com/v3/mail/send"

type sendgridMailer struct {
	client *http.Client
	apiKey string
	from   string
}

func (m *sendgridMailer) Send(ctx context.Context, msg Message) bool {
	if m.apiKey == "" || m.from == "" {
		log.Warn().Msg("sendgrid api key or sender not configured, dropping email")

		return false
	}

	payload := map[string]any{
		"personalizations": []map[string]any{
			{"to": []map[string]string{{"email": msg.To}}},
		},
		"from":    map[string]string{"email": m.from},
		"subject": msg.Subject,
		"content": []map[string]string{
			{"type": "text/html", "value": msg.HTMLBody},
		},
	}
	if len(msg.Attachment) > 0 {
		payload["attachments"] = []map[string]string{{
			"content":     base64.StdEncoding.EncodeToString(msg.Attachment),
			"type":        "application/pdf",
			"filename":    msg.AttachmentName,
			"disposition": "attachment",
		}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode sendgrid payload")

		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendgridEndpoint, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Msg("failed to build sendgrid request")

		return false
	}

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("to", msg.To).Msg("sendgrid request failed")

		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Str("to", msg.To).Msg("sendgrid rejected the email")

		return false
	}

	log.Info().Str("to", msg.To).Msg("email sent via sendgrid")

	return true
}
