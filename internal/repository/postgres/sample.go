package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vkazankov/voicebank/internal/model"
)

var _ model.SampleStore = (*SampleRepository)(nil)

type SampleRepository struct {
	db *Connection
}

func NewSampleRepository(db *Connection) *SampleRepository {
	return &SampleRepository{
		db: db,
	}
}

func (r *SampleRepository) Create(ctx context.Context, sample model.VoiceSample) (model.VoiceSample, error) {
	query := `INSERT INTO voice_samples (id, text, audio_key, dataset_id, user_id, original_file_name)
			  VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
			  RETURNING id, text, audio_key, dataset_id, user_id, COALESCE(original_file_name, ''), created_at`

	var saved model.VoiceSample
	err := r.db.QueryRow(ctx, query,
		sample.ID, sample.Text, sample.AudioKey, sample.DatasetID,
		sample.UploaderID, sample.OriginalFileName,
	).Scan(
		&saved.ID, &saved.Text, &saved.AudioKey, &saved.DatasetID,
		&saved.UploaderID, &saved.OriginalFileName, &saved.CreatedAt,
	)
	if err != nil {
		return model.VoiceSample{}, fmt.Errorf("failed to create voice sample: %w", err)
	}

	return saved, nil
}

func (r *SampleRepository) GetByID(ctx context.Context, id uuid.UUID) (model.VoiceSample, error) {
	query := `SELECT id, text, audio_key, dataset_id, user_id, COALESCE(original_file_name, ''), created_at
			  FROM voice_samples WHERE id = $1`

	var sample model.VoiceSample
	err := r.db.QueryRow(ctx, query, id).Scan(
		&sample.ID, &sample.Text, &sample.AudioKey, &sample.DatasetID,
		&sample.UploaderID, &sample.OriginalFileName, &sample.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.VoiceSample{}, model.ErrNotFound
		}
		return model.VoiceSample{}, fmt.Errorf("failed to get voice sample by id: %w", err)
	}

	return sample, nil
}

func (r *SampleRepository) ListByDataset(ctx context.Context, datasetID uuid.UUID, offset, limit int) ([]model.VoiceSample, error) {
	query := `SELECT id, text, audio_key, dataset_id, user_id, COALESCE(original_file_name, ''), created_at
			  FROM voice_samples
			  WHERE dataset_id = $1
			  ORDER BY created_at DESC
			  OFFSET $2 LIMIT $3`

	rows, err := r.db.Query(ctx, query, datasetID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list voice samples: %w", err)
	}
	defer rows.Close()

	return scanSamples(rows)
}

// ListAllByDataset returns every sample of a dataset, newest first. Used by
// the dataset delete flow to collect blob keys before the row cascade.
func (r *SampleRepository) ListAllByDataset(ctx context.Context, datasetID uuid.UUID) ([]model.VoiceSample, error) {
	query := `SELECT id, text, audio_key, dataset_id, user_id, COALESCE(original_file_name, ''), created_at
			  FROM voice_samples
			  WHERE dataset_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, datasetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list voice samples: %w", err)
	}
	defer rows.Close()

	return scanSamples(rows)
}

func (r *SampleRepository) Update(ctx context.Context, sample model.VoiceSample) (model.VoiceSample, error) {
	query := `UPDATE voice_samples
			  SET text = $2, audio_key = $3, original_file_name = NULLIF($4, '')
			  WHERE id = $1
			  RETURNING id, text, audio_key, dataset_id, user_id, COALESCE(original_file_name, ''), created_at`

	var saved model.VoiceSample
	err := r.db.QueryRow(ctx, query,
		sample.ID, sample.Text, sample.AudioKey, sample.OriginalFileName,
	).Scan(
		&saved.ID, &saved.Text, &saved.AudioKey, &saved.DatasetID,
		&saved.UploaderID, &saved.OriginalFileName, &saved.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.VoiceSample{}, model.ErrNotFound
		}
		return model.VoiceSample{}, fmt.Errorf("failed to update voice sample: %w", err)
	}

	return saved, nil
}

func (r *SampleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM voice_samples WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete voice sample: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanSamples(rows pgx.Rows) ([]model.VoiceSample, error) {
	var samples []model.VoiceSample
	for rows.Next() {
		var sample model.VoiceSample
		err := rows.Scan(
			&sample.ID, &sample.Text, &sample.AudioKey, &sample.DatasetID,
			&sample.UploaderID, &sample.OriginalFileName, &sample.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}
