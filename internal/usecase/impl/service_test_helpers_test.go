package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"rater/internal/domain/repository"
	mockRepo "rater/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// testLogger returns a logger whose output goes nowhere.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughTx wires a transaction manager mock so that Execute simply runs
// the callback against the given repository factory.
func passthroughTx(t *testing.T, factory *mockRepo.MockRepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txManager
}
