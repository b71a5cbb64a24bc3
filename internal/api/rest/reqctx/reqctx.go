// Package reqctx carries the authenticated user ID through request
// contexts.
package reqctx

import (
	"context"

	"github.com/google/uuid"

	"github.com/vkazankov/voicebank/internal/model"
)

type contextKey int

const userIDKey contextKey = iota

var _ model.ContextManager = (*Manager)(nil)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
