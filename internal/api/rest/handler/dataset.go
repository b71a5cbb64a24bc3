package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vkazankov/voicebank/internal/logger"
	"github.com/vkazankov/voicebank/internal/model"
)

// DatasetService defines business operations for dataset management.
type DatasetService interface {
	Create(ctx context.Context, params model.CreateDatasetParams) (model.Dataset, error)
	Get(ctx context.Context, id uuid.UUID) (model.Dataset, error)
	List(ctx context.Context) ([]model.Dataset, error)
	Update(ctx context.Context, id uuid.UUID, name, description string) (model.Dataset, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Dataset handles HTTP endpoints for datasets.
type Dataset struct {
	datasetService DatasetService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewDataset creates a new Dataset handler.
func NewDataset(datasetService DatasetService, contextManager model.ContextManager, logger *logger.Logger) *Dataset {
	return &Dataset{
		datasetService: datasetService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type datasetRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type datasetResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func convertDataset(dataset model.Dataset) datasetResponse {
	resp := datasetResponse{
		ID:          dataset.ID.String(),
		Name:        dataset.Name,
		Description: dataset.Description,
		CreatedAt:   dataset.CreatedAt,
		UpdatedAt:   dataset.UpdatedAt,
	}
	if dataset.OwnerID != nil {
		resp.UserID = dataset.OwnerID.String()
	}
	return resp
}

// Create creates a new dataset owned by the authenticated user.
func (h *Dataset) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req datasetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dataset, err := h.datasetService.Create(r.Context(), model.CreateDatasetParams{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     userID,
	})
	if err != nil {
		handleError(w, h.logger, "Dataset handler", err)
		return
	}

	writeJSON(w, http.StatusOK, convertDataset(dataset))
}

// Get returns one dataset by id.
func (h *Dataset) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	dataset, err := h.datasetService.Get(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, "Dataset handler", err)
		return
	}

	writeJSON(w, http.StatusOK, convertDataset(dataset))
}

// List returns all datasets, newest first.
func (h *Dataset) List(w http.ResponseWriter, r *http.Request) {
	datasets, err := h.datasetService.List(r.Context())
	if err != nil {
		handleError(w, h.logger, "Dataset handler", err)
		return
	}

	resp := make([]datasetResponse, 0, len(datasets))
	for _, dataset := range datasets {
		resp = append(resp, convertDataset(dataset))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update renames a dataset or changes its description.
func (h *Dataset) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req datasetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dataset, err := h.datasetService.Update(r.Context(), id, req.Name, req.Description)
	if err != nil {
		handleError(w, h.logger, "Dataset handler", err)
		return
	}

	writeJSON(w, http.StatusOK, convertDataset(dataset))
}

// Delete removes a dataset, cascading to its samples and blobs.
func (h *Dataset) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.datasetService.Delete(r.Context(), id); err != nil {
		handleError(w, h.logger, "Dataset handler", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
