package app

import (
	"kardash_backend/internal/email"
	"kardash_backend/internal/logger"
)

// MockEmailProvider пишет письма в лог вместо отправки.
// Используется, пока SMTP не сконфигурирован.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error {
	logger.Info("[MOCK EMAIL] message not sent",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}

func (m *MockEmailProvider) Validate() error { return nil }

func (m *MockEmailProvider) Close() error { return nil }
