package services

import (
	"testing"

	"github.com/battersup/battersup-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestEmailService_IsConfigured_True(t *testing.T) {
	cfg := config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     "587",
		Username: "user@example.com",
		Password: "password",
		From:     "noreply@example.com",
	}
	svc := NewEmailService(cfg)

	assert.True(t, svc.IsConfigured())
}

func TestEmailService_IsConfigured_MissingHost(t *testing.T) {
	cfg := config.SMTPConfig{
		Port:     "587",
		Username: "user@example.com",
		Password: "password",
		From:     "noreply@example.com",
	}
	svc := NewEmailService(cfg)

	assert.False(t, svc.IsConfigured())
}

func TestEmailService_IsConfigured_MissingPassword(t *testing.T) {
	cfg := config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     "587",
		Username: "user@example.com",
		From:     "noreply@example.com",
	}
	svc := NewEmailService(cfg)

	assert.False(t, svc.IsConfigured())
}

func TestEmailService_Send_NotConfiguredIsNoop(t *testing.T) {
	svc := NewEmailService(config.SMTPConfig{})

	err := svc.Send("someone@example.com", "Subject", "<p>Body</p>")

	assert.NoError(t, err)
}

func TestEmailService_SendSignupCode_NotConfiguredIsNoop(t *testing.T) {
	svc := NewEmailService(config.SMTPConfig{})

	err := svc.SendSignupCode("someone@example.com", "Maple Grove", "player", "BU-ABC234", "https://example.com/join/BU-ABC234")

	assert.NoError(t, err)
}
