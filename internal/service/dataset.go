package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vkazankov/voicebank/internal/logger"
	"github.com/vkazankov/voicebank/internal/model"
)

// Dataset implements dataset CRUD on top of the row store and blob store.
type Dataset struct {
	datasets model.DatasetStore
	samples  model.SampleStore
	blobs    model.BlobStore
	logger   *logger.Logger
}

func NewDataset(
	datasets model.DatasetStore,
	samples model.SampleStore,
	blobs model.BlobStore,
	logger *logger.Logger,
) *Dataset {
	return &Dataset{
		datasets: datasets,
		samples:  samples,
		blobs:    blobs,
		logger:   logger,
	}
}

func (s *Dataset) Create(ctx context.Context, params model.CreateDatasetParams) (model.Dataset, error) {
	if params.Name == "" {
		return model.Dataset{}, model.NewValidationError("name is required")
	}

	ownerID := params.OwnerID
	dataset := model.Dataset{
		ID:          uuid.New(),
		Name:        params.Name,
		Description: params.Description,
		OwnerID:     &ownerID,
	}

	dataset, err := s.datasets.Create(ctx, dataset)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to create dataset: %w", err)
	}

	return dataset, nil
}

func (s *Dataset) Get(ctx context.Context, id uuid.UUID) (model.Dataset, error) {
	dataset, err := s.datasets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Dataset{}, model.ErrNotFound
		}
		return model.Dataset{}, fmt.Errorf("failed to get dataset: %w", err)
	}

	return dataset, nil
}

func (s *Dataset) List(ctx context.Context) ([]model.Dataset, error) {
	datasets, err := s.datasets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}

	return datasets, nil
}

func (s *Dataset) Update(ctx context.Context, id uuid.UUID, name, description string) (model.Dataset, error) {
	if name == "" {
		return model.Dataset{}, model.NewValidationError("name is required")
	}

	dataset, err := s.datasets.Update(ctx, id, name, description)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Dataset{}, model.ErrNotFound
		}
		return model.Dataset{}, fmt.Errorf("failed to update dataset: %w", err)
	}

	return dataset, nil
}

// Delete removes a dataset, its samples and their blobs. Blob cleanup runs
// before the row delete: a failure mid-way leaves rows intact, so a retried
// delete simply no-ops on already-missing blobs. Individual blob failures
// are logged, never surfaced.
func (s *Dataset) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.datasets.GetByID(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get dataset: %w", err)
	}

	samples, err := s.samples.ListAllByDataset(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list dataset samples: %w", err)
	}

	for _, sample := range samples {
		if sample.AudioKey == "" {
			continue
		}
		if err := s.blobs.Delete(ctx, sample.AudioKey); err != nil {
			s.logger.Error("Dataset service: failed to delete blob",
				"dataset_id", id,
				"sample_id", sample.ID,
				"key", sample.AudioKey,
				"error", err)
		}
	}

	if err := s.datasets.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete dataset: %w", err)
	}

	return nil
}
