package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vkazankov/voicebank/internal/logger"
	"github.com/vkazankov/voicebank/internal/model"
)

const (
	maxUploadMemory = 32 << 20

	defaultPageSize = 20
	maxPageSize     = 100
)

// SampleService defines business operations for voice sample management.
type SampleService interface {
	Upload(ctx context.Context, params model.UploadSampleParams) (model.VoiceSample, error)
	Get(ctx context.Context, id uuid.UUID) (model.VoiceSample, error)
	Update(ctx context.Context, params model.UpdateSampleParams) (model.VoiceSample, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByDataset(ctx context.Context, datasetID uuid.UUID, offset, limit int) ([]model.VoiceSample, error)
}

// Sample handles HTTP endpoints for voice samples.
type Sample struct {
	sampleService  SampleService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewSample creates a new Sample handler.
func NewSample(sampleService SampleService, contextManager model.ContextManager, logger *logger.Logger) *Sample {
	return &Sample{
		sampleService:  sampleService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type sampleResponse struct {
	ID               string    `json:"id"`
	Text             string    `json:"text"`
	AudioPath        string    `json:"audioPath"`
	DatasetID        string    `json:"datasetId"`
	UserID           string    `json:"userId,omitempty"`
	OriginalFileName string    `json:"originalFileName,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type samplePageResponse struct {
	Samples []sampleResponse `json:"samples"`
	HasMore bool             `json:"hasMore"`
}

func convertSample(sample model.VoiceSample) sampleResponse {
	resp := sampleResponse{
		ID:               sample.ID.String(),
		Text:             sample.Text,
		AudioPath:        "/files/" + sample.AudioKey,
		DatasetID:        sample.DatasetID.String(),
		OriginalFileName: sample.OriginalFileName,
		CreatedAt:        sample.CreatedAt,
	}
	if sample.UploaderID != nil {
		resp.UserID = sample.UploaderID.String()
	}
	return resp
}

// Upload stores a new sample into a dataset from a multipart form with
// "file" and "text" fields.
func (h *Sample) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	datasetID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, fileName, err := formFile(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	if file != nil {
		defer file.Close()
	}

	params := model.UploadSampleParams{
		DatasetID:        datasetID,
		Text:             r.FormValue("text"),
		OriginalFileName: fileName,
		UploaderID:       userID,
	}
	if file != nil {
		params.File = file
	}

	sample, err := h.sampleService.Upload(r.Context(), params)
	if err != nil {
		handleError(w, h.logger, "Sample handler", err)
		return
	}

	writeJSON(w, http.StatusOK, convertSample(sample))
}

// Get returns one sample by id.
func (h *Sample) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	sample, err := h.sampleService.Get(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, "Sample handler", err)
		return
	}

	writeJSON(w, http.StatusOK, convertSample(sample))
}

// Update replaces a sample's transcript, audio, or both via multipart form
// fields "text" and "file", both optional.
func (h *Sample) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, fileName, err := formFile(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	if file != nil {
		defer file.Close()
	}

	params := model.UpdateSampleParams{
		ID:               id,
		Text:             r.FormValue("text"),
		OriginalFileName: fileName,
	}
	if file != nil {
		params.File = file
	}

	sample, err := h.sampleService.Update(r.Context(), params)
	if err != nil {
		handleError(w, h.logger, "Sample handler", err)
		return
	}

	writeJSON(w, http.StatusOK, convertSample(sample))
}

// Delete removes a sample row and its blob.
func (h *Sample) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.sampleService.Delete(r.Context(), id); err != nil {
		handleError(w, h.logger, "Sample handler", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListByDataset returns a newest-first page of a dataset's samples.
// hasMore is an approximation: a full page suggests another one exists.
func (h *Sample) ListByDataset(w http.ResponseWriter, r *http.Request) {
	datasetID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	offset := queryInt(r, "offset", 0)
	limit := queryInt(r, "limit", defaultPageSize)
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	samples, err := h.sampleService.ListByDataset(r.Context(), datasetID, offset, limit)
	if err != nil {
		handleError(w, h.logger, "Sample handler", err)
		return
	}

	resp := samplePageResponse{
		Samples: make([]sampleResponse, 0, len(samples)),
		HasMore: len(samples) == limit,
	}
	for _, sample := range samples {
		resp.Samples = append(resp.Samples, convertSample(sample))
	}

	writeJSON(w, http.StatusOK, resp)
}

// formFile extracts the optional "file" part. A missing part is not an
// error here; required-file validation belongs to the service.
func formFile(r *http.Request) (io.ReadCloser, string, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", nil
		}
		return nil, "", err
	}
	return file, header.Filename, nil
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
