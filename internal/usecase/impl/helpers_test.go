package impl

import (
	"context"
	"io"
	"log/slog"

	"wordvault/internal/domain/repository"
)

// stubTxManager satisfies both TransactionManager and RepositoryFactory so
// service tests run their transactional callbacks against plain mocks.
type stubTxManager struct {
	userRepo repository.UserRepository
	wordRepo repository.WordRepository
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *stubTxManager) NewUserRepository() repository.UserRepository {
	return m.userRepo
}

func (m *stubTxManager) NewWordRepository() repository.WordRepository {
	return m.wordRepo
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
