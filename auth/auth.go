// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// SessionIDPrefix marks session ids so they are recognizable in logs
const SessionIDPrefix = "ses"

var (
	ErrMissingDeviceID = errors.New("device id is required")
	ErrInvalidDeviceID = errors.New("device id must be a UUID")
)

// GenerateSessionID creates a random, URL-safe session id ("ses-V1StGXR8_Z5jdHi6B-myT")
func GenerateSessionID() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return SessionIDPrefix + "-" + id, nil
}

// ValidateDeviceUUID checks a client-generated device id and returns it in
// canonical form (lowercase, hyphenated), so that "{...}" and "urn:uuid:"
// spellings of the same device share one storage scope.
func ValidateDeviceUUID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrMissingDeviceID
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDeviceID, err)
	}
	if id == uuid.Nil {
		return "", fmt.Errorf("%w: nil UUID", ErrInvalidDeviceID)
	}

	return id.String(), nil
}
