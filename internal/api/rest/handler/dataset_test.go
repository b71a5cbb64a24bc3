package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vkazankov/voicebank/internal/api/rest/reqctx"
	"github.com/vkazankov/voicebank/internal/model"
	"github.com/vkazankov/voicebank/internal/testutil"
)

func TestDatasetHandler_Create(t *testing.T) {
	contextManager := reqctx.NewManager()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		service := &MockDatasetService{}
		service.On("Create", mock.Anything, model.CreateDatasetParams{
			Name:        "readings",
			Description: "long form recordings",
			OwnerID:     userID,
		}).Return(model.Dataset{
			ID:      uuid.New(),
			Name:    "readings",
			OwnerID: &userID,
		}, nil)

		h := NewDataset(service, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodPost, "/datasets",
			strings.NewReader(`{"name":"readings","description":"long form recordings"}`))
		req = req.WithContext(contextManager.SetUserIDToContext(req.Context(), userID))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp datasetResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "readings", resp.Name)
		assert.Equal(t, userID.String(), resp.UserID)
		service.AssertExpectations(t)
	})

	t.Run("no user in context", func(t *testing.T) {
		h := NewDataset(&MockDatasetService{}, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodPost, "/datasets", strings.NewReader(`{"name":"readings"}`))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty name", func(t *testing.T) {
		service := &MockDatasetService{}
		service.On("Create", mock.Anything, mock.Anything).
			Return(model.Dataset{}, model.NewValidationError("name is required"))

		h := NewDataset(service, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodPost, "/datasets", strings.NewReader(`{"name":""}`))
		req = req.WithContext(contextManager.SetUserIDToContext(req.Context(), userID))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDatasetHandler_Get(t *testing.T) {
	contextManager := reqctx.NewManager()

	t.Run("success", func(t *testing.T) {
		datasetID := uuid.New()

		service := &MockDatasetService{}
		service.On("Get", mock.Anything, datasetID).
			Return(model.Dataset{ID: datasetID, Name: "readings"}, nil)

		h := NewDataset(service, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/datasets/"+datasetID.String(), nil)
		req.SetPathValue("id", datasetID.String())
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp datasetResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, datasetID.String(), resp.ID)
		assert.Empty(t, resp.UserID)
	})

	t.Run("not found", func(t *testing.T) {
		datasetID := uuid.New()

		service := &MockDatasetService{}
		service.On("Get", mock.Anything, datasetID).Return(model.Dataset{}, model.ErrNotFound)

		h := NewDataset(service, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/datasets/"+datasetID.String(), nil)
		req.SetPathValue("id", datasetID.String())
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h := NewDataset(&MockDatasetService{}, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/datasets/not-a-uuid", nil)
		req.SetPathValue("id", "not-a-uuid")
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDatasetHandler_List(t *testing.T) {
	contextManager := reqctx.NewManager()

	t.Run("success", func(t *testing.T) {
		service := &MockDatasetService{}
		service.On("List", mock.Anything).Return([]model.Dataset{
			{ID: uuid.New(), Name: "second"},
			{ID: uuid.New(), Name: "first"},
		}, nil)

		h := NewDataset(service, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/datasets", nil)
		rec := httptest.NewRecorder()

		h.List(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp []datasetResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "second", resp[0].Name)
	})

	t.Run("empty list is a JSON array", func(t *testing.T) {
		service := &MockDatasetService{}
		service.On("List", mock.Anything).Return([]model.Dataset{}, nil)

		h := NewDataset(service, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/datasets", nil)
		rec := httptest.NewRecorder()

		h.List(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestDatasetHandler_Update(t *testing.T) {
	contextManager := reqctx.NewManager()
	datasetID := uuid.New()

	t.Run("success", func(t *testing.T) {
		service := &MockDatasetService{}
		service.On("Update", mock.Anything, datasetID, "renamed", "new description").
			Return(model.Dataset{ID: datasetID, Name: "renamed", Description: "new description"}, nil)

		h := NewDataset(service, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodPut, "/datasets/"+datasetID.String(),
			strings.NewReader(`{"name":"renamed","description":"new description"}`))
		req.SetPathValue("id", datasetID.String())
		rec := httptest.NewRecorder()

		h.Update(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp datasetResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "renamed", resp.Name)
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewDataset(&MockDatasetService{}, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodPut, "/datasets/"+datasetID.String(), strings.NewReader("{"))
		req.SetPathValue("id", datasetID.String())
		rec := httptest.NewRecorder()

		h.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDatasetHandler_Delete(t *testing.T) {
	contextManager := reqctx.NewManager()
	datasetID := uuid.New()

	t.Run("success", func(t *testing.T) {
		service := &MockDatasetService{}
		service.On("Delete", mock.Anything, datasetID).Return(nil)

		h := NewDataset(service, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodDelete, "/datasets/"+datasetID.String(), nil)
		req.SetPathValue("id", datasetID.String())
		rec := httptest.NewRecorder()

		h.Delete(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		service.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		service := &MockDatasetService{}
		service.On("Delete", mock.Anything, datasetID).Return(model.ErrNotFound)

		h := NewDataset(service, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodDelete, "/datasets/"+datasetID.String(), nil)
		req.SetPathValue("id", datasetID.String())
		rec := httptest.NewRecorder()

		h.Delete(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		service := &MockDatasetService{}
		service.On("Delete", mock.Anything, datasetID).Return(errors.New("database error"))

		h := NewDataset(service, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodDelete, "/datasets/"+datasetID.String(), nil)
		req.SetPathValue("id", datasetID.String())
		rec := httptest.NewRecorder()

		h.Delete(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
