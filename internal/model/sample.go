package model

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// SampleStore defines persistence operations for voice samples.
type SampleStore interface {
	Create(ctx context.Context, sample VoiceSample) (VoiceSample, error)
	GetByID(ctx context.Context, id uuid.UUID) (VoiceSample, error)
	ListByDataset(ctx context.Context, datasetID uuid.UUID, offset, limit int) ([]VoiceSample, error)
	ListAllByDataset(ctx context.Context, datasetID uuid.UUID) ([]VoiceSample, error)
	Update(ctx context.Context, sample VoiceSample) (VoiceSample, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// VoiceSample is one audio recording plus its transcript, belonging to
// exactly one dataset. AudioKey is an opaque blob store key, resolved only
// by the blob store; the original upload filename is kept as metadata.
type VoiceSample struct {
	ID               uuid.UUID
	Text             string
	AudioKey         string
	DatasetID        uuid.UUID
	UploaderID       *uuid.UUID
	OriginalFileName string
	CreatedAt        time.Time
}

// UploadSampleParams contains parameters to upload a new sample.
type UploadSampleParams struct {
	DatasetID        uuid.UUID
	Text             string
	File             io.Reader
	OriginalFileName string
	UploaderID       uuid.UUID
}

// UpdateSampleParams contains parameters to update a sample. Text and File
// are both optional, but at least one must be supplied.
type UpdateSampleParams struct {
	ID               uuid.UUID
	Text             string
	File             io.Reader
	OriginalFileName string
}
