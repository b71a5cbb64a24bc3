package handler

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vkazankov/voicebank/internal/model"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) (model.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

type MockDatasetService struct {
	mock.Mock
}

func (m *MockDatasetService) Create(ctx context.Context, params model.CreateDatasetParams) (model.Dataset, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Dataset), args.Error(1)
}

func (m *MockDatasetService) Get(ctx context.Context, id uuid.UUID) (model.Dataset, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Dataset), args.Error(1)
}

func (m *MockDatasetService) List(ctx context.Context) ([]model.Dataset, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Dataset), args.Error(1)
}

func (m *MockDatasetService) Update(ctx context.Context, id uuid.UUID, name, description string) (model.Dataset, error) {
	args := m.Called(ctx, id, name, description)
	return args.Get(0).(model.Dataset), args.Error(1)
}

func (m *MockDatasetService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSampleService struct {
	mock.Mock
}

func (m *MockSampleService) Upload(ctx context.Context, params model.UploadSampleParams) (model.VoiceSample, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.VoiceSample), args.Error(1)
}

func (m *MockSampleService) Get(ctx context.Context, id uuid.UUID) (model.VoiceSample, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.VoiceSample), args.Error(1)
}

func (m *MockSampleService) Update(ctx context.Context, params model.UpdateSampleParams) (model.VoiceSample, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.VoiceSample), args.Error(1)
}

func (m *MockSampleService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSampleService) ListByDataset(ctx context.Context, datasetID uuid.UUID, offset, limit int) ([]model.VoiceSample, error) {
	args := m.Called(ctx, datasetID, offset, limit)
	return args.Get(0).([]model.VoiceSample), args.Error(1)
}

type MockBlobOpener struct {
	mock.Mock
}

func (m *MockBlobOpener) OpenAudio(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if rc, ok := args.Get(0).(io.ReadCloser); ok {
		return rc, args.Error(1)
	}
	return nil, args.Error(1)
}
