package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evelinalundqvist/portfolio-backend/models"
)

func TestNotifyNewMessageDisabledByConfig(t *testing.T) {
	cfg := map[string]string{
		"NOTIFY_ON_NEW_MESSAGE": "false",
		"ADMIN_NOTIFY_EMAIL":    "[email protected]",
		"RESEND_API_KEY":        "re_test",
	}

	// Disabled means no mail is even attempted, so no API key is consumed
	// and no error comes back.
	err := NotifyNewMessage(cfg, models.Message{Name: "Anna", Email: "[email protected]", Message: "Hej"})
	assert.NoError(t, err)
}

func TestNotifyNewMessageNoRecipientConfigured(t *testing.T) {
	err := NotifyNewMessage(map[string]string{}, models.Message{Name: "Anna"})
	assert.NoError(t, err)
}

func TestSendEmailRequiresRecipients(t *testing.T) {
	err := SendEmail(map[string]string{"RESEND_API_KEY": "re_test"}, "subject", "body", nil)
	assert.Error(t, err)
}

func TestSendEmailRequiresAPIKey(t *testing.T) {
	err := SendEmail(map[string]string{}, "subject", "body", []string{"[email protected]"})
	assert.Error(t, err)
}
