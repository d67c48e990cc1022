package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"travelbot/internal/config"
	"travelbot/pkg/utils"
)

// Substrings rejected anywhere in a chat message, compared case-insensitively.
var forbiddenPatterns = []string{
	"<script",
	"javascript:",
	"vbscript:",
	"onload=",
	"onerror=",
	"onclick=",
	"onmouseover=",
	"onfocus=",
}

const (
	msgNotAString       = "Tin nhắn không hợp lệ."
	msgEmpty            = "Vui lòng nhập câu hỏi của bạn."
	msgTooLongFormat    = "Câu hỏi quá dài. Vui lòng nhập tối đa %d ký tự."
	msgForbiddenPattern = "Câu hỏi chứa nội dung không được phép."
)

type InputValidatorInterface interface {
	// Validate returns the trimmed message or a *utils.ValidationError.
	Validate(raw any) (string, error)
}

type InputValidator struct {
	maxLength int
}

func NewInputValidator(cfg *config.Config) InputValidatorInterface {
	return &InputValidator{maxLength: cfg.MaxMessageLength}
}

func (v *InputValidator) Validate(raw any) (string, error) {
	text, ok := raw.(string)
	if !ok {
		return "", &utils.ValidationError{Reason: utils.ReasonNotAString, Message: msgNotAString}
	}

	message := strings.TrimSpace(text)
	if message == "" {
		return "", &utils.ValidationError{Reason: utils.ReasonEmpty, Message: msgEmpty}
	}

	if utf8.RuneCountInString(message) > v.maxLength {
		return "", &utils.ValidationError{
			Reason:  utils.ReasonTooLong,
			Message: fmt.Sprintf(msgTooLongFormat, v.maxLength),
		}
	}

	lower := strings.ToLower(message)
	for _, pattern := range forbiddenPatterns {
		if strings.Contains(lower, pattern) {
			return "", &utils.ValidationError{Reason: utils.ReasonForbiddenPattern, Message: msgForbiddenPattern}
		}
	}

	return message, nil
}
