package utils

import (
	"continuity-engine/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSuggestionID() string {
	return uuid.NewString()
}

func GenerateEnrollmentID() string {
	return uuid.NewString()
}
