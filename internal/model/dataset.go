package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DatasetStore defines persistence operations for datasets.
type DatasetStore interface {
	Create(ctx context.Context, dataset Dataset) (Dataset, error)
	GetByID(ctx context.Context, id uuid.UUID) (Dataset, error)
	List(ctx context.Context) ([]Dataset, error)
	Update(ctx context.Context, id uuid.UUID, name, description string) (Dataset, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Dataset groups voice samples under a name. Deleting a dataset cascades
// to its samples at the database level.
type Dataset struct {
	ID          uuid.UUID
	Name        string
	Description string
	OwnerID     *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateDatasetParams contains parameters to create a dataset.
type CreateDatasetParams struct {
	Name        string
	Description string
	OwnerID     uuid.UUID
}
