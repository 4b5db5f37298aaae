package contracts

import (
	"context"
	"continuity-engine/internal/app/models"
)

type TemplateRepository interface {
	// FindByID returns (nil, nil) when the template does not exist.
	FindByID(ctx context.Context, templateID string) (*models.AssessmentTemplate, error)
	FindAll(ctx context.Context) ([]models.AssessmentTemplate, error)
}
