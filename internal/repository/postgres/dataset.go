package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vkazankov/voicebank/internal/model"
)

var _ model.DatasetStore = (*DatasetRepository)(nil)

type DatasetRepository struct {
	db *Connection
}

func NewDatasetRepository(db *Connection) *DatasetRepository {
	return &DatasetRepository{
		db: db,
	}
}

func (r *DatasetRepository) Create(ctx context.Context, dataset model.Dataset) (model.Dataset, error) {
	query := `INSERT INTO datasets (id, name, description, user_id)
			  VALUES ($1, $2, NULLIF($3, ''), $4)
			  RETURNING id, name, COALESCE(description, ''), user_id, created_at, updated_at`

	var saved model.Dataset
	err := r.db.QueryRow(ctx, query,
		dataset.ID, dataset.Name, dataset.Description, dataset.OwnerID,
	).Scan(
		&saved.ID, &saved.Name, &saved.Description, &saved.OwnerID,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("failed to create dataset: %w", err)
	}

	return saved, nil
}

func (r *DatasetRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Dataset, error) {
	query := `SELECT id, name, COALESCE(description, ''), user_id, created_at, updated_at
			  FROM datasets WHERE id = $1`

	var dataset model.Dataset
	err := r.db.QueryRow(ctx, query, id).Scan(
		&dataset.ID, &dataset.Name, &dataset.Description, &dataset.OwnerID,
		&dataset.CreatedAt, &dataset.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Dataset{}, model.ErrNotFound
		}
		return model.Dataset{}, fmt.Errorf("failed to get dataset by id: %w", err)
	}

	return dataset, nil
}

func (r *DatasetRepository) List(ctx context.Context) ([]model.Dataset, error) {
	query := `SELECT id, name, COALESCE(description, ''), user_id, created_at, updated_at
			  FROM datasets
			  ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	defer rows.Close()

	var datasets []model.Dataset
	for rows.Next() {
		var dataset model.Dataset
		err := rows.Scan(
			&dataset.ID, &dataset.Name, &dataset.Description, &dataset.OwnerID,
			&dataset.CreatedAt, &dataset.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, dataset)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return datasets, nil
}

func (r *DatasetRepository) Update(ctx context.Context, id uuid.UUID, name, description string) (model.Dataset, error) {
	query := `UPDATE datasets
			  SET name = $2, description = NULLIF($3, ''), updated_at = now()
			  WHERE id = $1
			  RETURNING id, name, COALESCE(description, ''), user_id, created_at, updated_at`

	var dataset model.Dataset
	err := r.db.QueryRow(ctx, query, id, name, description).Scan(
		&dataset.ID, &dataset.Name, &dataset.Description, &dataset.OwnerID,
		&dataset.CreatedAt, &dataset.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Dataset{}, model.ErrNotFound
		}
		return model.Dataset{}, fmt.Errorf("failed to update dataset: %w", err)
	}

	return dataset, nil
}

// Delete removes a dataset row. Dependent voice sample rows are removed by
// the ON DELETE CASCADE rule in the same statement.
func (r *DatasetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM datasets WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
