package services

import (
	"errors"
	"os"
)

// ResendClient sends transactional email through the Resend HTTP API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a Resend client from explicit credentials
func NewResendClient(apiKey, from string) (*ResendClient, error) {
	if apiKey == "" {
		return nil, errors.New("resend api key cannot be empty")
	}
	if from == "" {
		from = "GreenDesk <noreply@greendesk.app>"
	}
	return &ResendClient{apiKey: apiKey, from: from}, nil
}

// Global instance
var resendClient *ResendClient

// GetResendClient returns the global Resend client, creating it from the
// environment on first use. Returns nil when RESEND_API_KEY is unset so
// callers can skip email in local development.
func GetResendClient() *ResendClient {
	if resendClient == nil {
		apiKey := os.Getenv("RESEND_API_KEY")
		if apiKey == "" {
			return nil
		}
		client, err := NewResendClient(apiKey, os.Getenv("RESEND_FROM"))
		if err != nil {
			return nil
		}
		resendClient = client
	}
	return resendClient
}
