package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

const sendGridURL = "https://api.sendgrid.com/v3/mail/send"

// Message is one transactional email to deliver.
type Message struct {
	To      string
	Subject string // optional, template default used when empty
	Type    Type
	Data    any
}

// Result mirrors what the old edge function returned to its callers.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Sender posts rendered templates to the SendGrid v3 API. An empty API key
// degrades every send into a logged no-op so the product flows never fail
// on a missing credential.
type Sender struct {
	apiKey   string
	from     string
	fromName string
	http     *http.Client
	logger   *zap.Logger
}

type SenderConfig struct {
	APIKey   string
	From     string
	FromName string
}

func NewSender(cfg SenderConfig, logger *zap.Logger) *Sender {
	return &Sender{
		apiKey:   cfg.APIKey,
		from:     cfg.From,
		fromName: cfg.FromName,
		http:     &http.Client{},
		logger:   logger.With(zap.String("component", "mailer")),
	}
}

// sendGridRequest is the subset of the v3 payload we use.
type sendGridRequest struct {
	Personalizations []struct {
		To []struct {
			Email string `json:"email"`
		} `json:"to"`
	} `json:"personalizations"`
	From struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"from"`
	Subject string `json:"subject"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func (s *Sender) Send(ctx context.Context, msg Message) Result {
	if s.apiKey == "" {
		s.logger.Warn("sendgrid api key not configured, dropping email",
			zap.String("type", string(msg.Type)),
			zap.String("to", msg.To),
		)
		return Result{Success: false, Message: "SendGrid não configurado"}
	}

	subject, html, err := RenderTemplate(msg.Type, msg.Data)
	if err != nil {
		return Result{Success: false, Message: err.Error()}
	}
	if msg.Subject != "" {
		subject = msg.Subject
	}

	var req sendGridRequest
	req.Personalizations = append(req.Personalizations, struct {
		To []struct {
			Email string `json:"email"`
		} `json:"to"`
	}{To: []struct {
		Email string `json:"email"`
	}{{Email: msg.To}}})
	req.From.Email = s.from
	req.From.Name = s.fromName
	req.Subject = subject
	req.Content = append(req.Content, struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{Type: "text/html", Value: html})

	body, err := json.Marshal(req)
	if err != nil {
		return Result{Success: false, Message: err.Error()}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, sendGridURL, bytes.NewReader(body))
	if err != nil {
		return Result{Success: false, Message: err.Error()}
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(httpReq)
	if err != nil {
		return Result{Success: false, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return Result{Success: false, Message: fmt.Sprintf("SendGrid error: %s", string(detail))}
	}

	return Result{Success: true, Message: "Email enviado com sucesso"}
}
