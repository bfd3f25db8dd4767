package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/nando-castro/api-financas/internal/dto"
)

// Message types carried in the Type property of each publishing.
const (
	TypePasswordReset = "password_reset"
)

func encodePasswordReset(msg dto.PasswordResetMessage) ([]byte, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal password reset message: %w", err)
	}
	return body, nil
}

func decodePasswordReset(body []byte) (dto.PasswordResetMessage, error) {
	var msg dto.PasswordResetMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return msg, fmt.Errorf("unmarshal password reset message: %w", err)
	}
	if msg.Email == "" || msg.Token == "" {
		return msg, fmt.Errorf("password reset message missing email or token")
	}
	return msg, nil
}
