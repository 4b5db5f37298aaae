package contracts

import (
	"context"
	"continuity-engine/internal/app/models"
)

type MetricRepository interface {
	FindAll(ctx context.Context) ([]models.MetricDefinition, error)
}
