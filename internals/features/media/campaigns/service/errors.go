package service

import (
	"errors"
	"strings"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrImageNotFound    = errors.New("campaign image not found")
	ErrVideoNotFound    = errors.New("campaign video not found")
)

// ValidationError carries per-field messages for the 422 envelope.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msgs := range e.Fields {
		parts = append(parts, f+": "+strings.Join(msgs, ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
