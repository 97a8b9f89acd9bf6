package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/evelinalundqvist/portfolio-backend/config"
	"github.com/evelinalundqvist/portfolio-backend/models"
)

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// SendEmail sends an email using the Resend API.
// Requires RESEND_API_KEY and RESEND_FROM_EMAIL in the environment.
func SendEmail(cfg map[string]string, subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	if apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY is not configured")
	}
	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "Portfolio <[email protected]>")

	payload := ResendEmailRequest{
		From:    fromEmail,
		To:      recipients,
		Subject: subject,
		Html:    body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshaling email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		var errResp ResendErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("resend API error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("resend API returned status %d", resp.StatusCode)
	}

	var emailResp ResendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&emailResp); err == nil {
		log.Debug().Str("emailId", emailResp.ID).Msg("notification email sent")
	}

	return nil
}

// NotifyNewMessage emails the site owner about a new contact-form message.
// Best-effort: callers log the returned error, the message save already
// succeeded. NOTIFY_ON_NEW_MESSAGE=false switches the mail off entirely.
func NotifyNewMessage(cfg map[string]string, msg models.Message) error {
	if !config.GetBool(cfg, "NOTIFY_ON_NEW_MESSAGE", true) {
		return nil
	}

	recipient := config.GetString(cfg, "ADMIN_NOTIFY_EMAIL", "")
	if recipient == "" {
		return nil
	}

	subject := fmt.Sprintf("New message from %s", msg.Name)
	body := fmt.Sprintf(
		"<p><strong>From:</strong> %s (%s)</p><p>%s</p>",
		html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Message),
	)
	return SendEmail(cfg, subject, body, []string{recipient})
}
