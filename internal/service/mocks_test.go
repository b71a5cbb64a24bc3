package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vkazankov/voicebank/internal/model"
)

// MockDatasetStore mocks the DatasetStore interface
type MockDatasetStore struct {
	mock.Mock
}

func (m *MockDatasetStore) Create(ctx context.Context, dataset model.Dataset) (model.Dataset, error) {
	args := m.Called(ctx, dataset)
	return args.Get(0).(model.Dataset), args.Error(1)
}

func (m *MockDatasetStore) GetByID(ctx context.Context, id uuid.UUID) (model.Dataset, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Dataset), args.Error(1)
}

func (m *MockDatasetStore) List(ctx context.Context) ([]model.Dataset, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Dataset), args.Error(1)
}

func (m *MockDatasetStore) Update(ctx context.Context, id uuid.UUID, name, description string) (model.Dataset, error) {
	args := m.Called(ctx, id, name, description)
	return args.Get(0).(model.Dataset), args.Error(1)
}

func (m *MockDatasetStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSampleStore mocks the SampleStore interface
type MockSampleStore struct {
	mock.Mock
}

func (m *MockSampleStore) Create(ctx context.Context, sample model.VoiceSample) (model.VoiceSample, error) {
	args := m.Called(ctx, sample)
	return args.Get(0).(model.VoiceSample), args.Error(1)
}

func (m *MockSampleStore) GetByID(ctx context.Context, id uuid.UUID) (model.VoiceSample, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.VoiceSample), args.Error(1)
}

func (m *MockSampleStore) ListByDataset(ctx context.Context, datasetID uuid.UUID, offset, limit int) ([]model.VoiceSample, error) {
	args := m.Called(ctx, datasetID, offset, limit)
	return args.Get(0).([]model.VoiceSample), args.Error(1)
}

func (m *MockSampleStore) ListAllByDataset(ctx context.Context, datasetID uuid.UUID) ([]model.VoiceSample, error) {
	args := m.Called(ctx, datasetID)
	return args.Get(0).([]model.VoiceSample), args.Error(1)
}

func (m *MockSampleStore) Update(ctx context.Context, sample model.VoiceSample) (model.VoiceSample, error) {
	args := m.Called(ctx, sample)
	return args.Get(0).(model.VoiceSample), args.Error(1)
}

func (m *MockSampleStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBlobStore mocks the BlobStore interface
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Save(ctx context.Context, originalFileName string, r io.Reader) (string, error) {
	args := m.Called(ctx, originalFileName, r)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if rc, ok := args.Get(0).(io.ReadCloser); ok {
		return rc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockBlobStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

// MockTokenManager mocks the TokenManager interface
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateToken(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) ParseToken(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
