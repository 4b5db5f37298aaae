package contracts

import (
	"context"
	"continuity-engine/internal/app/models"
)

type ProgramRepository interface {
	// FindAll returns the billing-program catalog in declaration order.
	FindAll(ctx context.Context) ([]models.BillingProgramDefinition, error)
	// FindByProgramType returns (nil, nil) when the program is unknown.
	FindByProgramType(ctx context.Context, programType string) (*models.BillingProgramDefinition, error)
}
