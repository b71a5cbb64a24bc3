package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/vkazankov/voicebank/internal/logger"
	"github.com/vkazankov/voicebank/internal/model"
)

// Sample coordinates voice sample rows with their audio blobs. The blob
// write and the row write are not one transaction; a row failure triggers a
// best-effort rollback delete of the fresh blob.
type Sample struct {
	samples  model.SampleStore
	datasets model.DatasetStore
	blobs    model.BlobStore
	logger   *logger.Logger
}

func NewSample(
	samples model.SampleStore,
	datasets model.DatasetStore,
	blobs model.BlobStore,
	logger *logger.Logger,
) *Sample {
	return &Sample{
		samples:  samples,
		datasets: datasets,
		blobs:    blobs,
		logger:   logger,
	}
}

func (s *Sample) Upload(ctx context.Context, params model.UploadSampleParams) (model.VoiceSample, error) {
	if params.Text == "" {
		return model.VoiceSample{}, model.NewValidationError("text is required")
	}
	if params.File == nil {
		return model.VoiceSample{}, model.NewValidationError("file is required")
	}

	if _, err := s.datasets.GetByID(ctx, params.DatasetID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.VoiceSample{}, model.ErrNotFound
		}
		return model.VoiceSample{}, fmt.Errorf("failed to get dataset: %w", err)
	}

	key, err := s.blobs.Save(ctx, params.OriginalFileName, params.File)
	if err != nil {
		return model.VoiceSample{}, fmt.Errorf("failed to save blob: %w", err)
	}

	uploaderID := params.UploaderID
	sample := model.VoiceSample{
		ID:               uuid.New(),
		Text:             params.Text,
		AudioKey:         key,
		DatasetID:        params.DatasetID,
		UploaderID:       &uploaderID,
		OriginalFileName: params.OriginalFileName,
	}

	sample, err = s.samples.Create(ctx, sample)
	if err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			s.logger.Error("Sample service: failed to delete blob after row failure",
				"key", key,
				"error", delErr)
		}
		return model.VoiceSample{}, fmt.Errorf("failed to create sample: %w", err)
	}

	return sample, nil
}

func (s *Sample) Get(ctx context.Context, id uuid.UUID) (model.VoiceSample, error) {
	sample, err := s.samples.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.VoiceSample{}, model.ErrNotFound
		}
		return model.VoiceSample{}, fmt.Errorf("failed to get sample: %w", err)
	}

	return sample, nil
}

// Update replaces the transcript, the audio, or both. When new audio is
// supplied the old blob is deleted first; if the subsequent save fails the
// row still points at the removed blob, a recoverable inconsistency reads
// report as not found.
func (s *Sample) Update(ctx context.Context, params model.UpdateSampleParams) (model.VoiceSample, error) {
	if params.Text == "" && params.File == nil {
		return model.VoiceSample{}, model.NewValidationError("nothing to update")
	}

	sample, err := s.samples.GetByID(ctx, params.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.VoiceSample{}, model.ErrNotFound
		}
		return model.VoiceSample{}, fmt.Errorf("failed to get sample: %w", err)
	}

	if params.Text != "" {
		sample.Text = params.Text
	}

	if params.File != nil {
		if sample.AudioKey != "" {
			if err := s.blobs.Delete(ctx, sample.AudioKey); err != nil {
				s.logger.Error("Sample service: failed to delete old blob",
					"sample_id", sample.ID,
					"key", sample.AudioKey,
					"error", err)
			}
		}

		key, err := s.blobs.Save(ctx, params.OriginalFileName, params.File)
		if err != nil {
			return model.VoiceSample{}, fmt.Errorf("failed to save blob: %w", err)
		}
		sample.AudioKey = key
		sample.OriginalFileName = params.OriginalFileName
	}

	sample, err = s.samples.Update(ctx, sample)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.VoiceSample{}, model.ErrNotFound
		}
		return model.VoiceSample{}, fmt.Errorf("failed to update sample: %w", err)
	}

	return sample, nil
}

func (s *Sample) Delete(ctx context.Context, id uuid.UUID) error {
	sample, err := s.samples.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get sample: %w", err)
	}

	if sample.AudioKey != "" {
		if err := s.blobs.Delete(ctx, sample.AudioKey); err != nil {
			s.logger.Error("Sample service: failed to delete blob",
				"sample_id", sample.ID,
				"key", sample.AudioKey,
				"error", err)
		}
	}

	if err := s.samples.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete sample: %w", err)
	}

	return nil
}

func (s *Sample) ListByDataset(ctx context.Context, datasetID uuid.UUID, offset, limit int) ([]model.VoiceSample, error) {
	samples, err := s.samples.ListByDataset(ctx, datasetID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list samples: %w", err)
	}

	return samples, nil
}

// OpenAudio resolves a blob key to its bytes for the file endpoint.
func (s *Sample) OpenAudio(ctx context.Context, key string) (io.ReadCloser, error) {
	if key == "" {
		return nil, model.ErrNotFound
	}

	rc, err := s.blobs.Open(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}

	return rc, nil
}
