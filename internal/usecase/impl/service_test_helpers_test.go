package impl

import (
	"context"
	"testing"
	"time"

	"comanda/internal/domain/repository"
	mockRepo "comanda/internal/mocks/repository"
	mockService "comanda/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func fixedClock(t *testing.T, now time.Time) *mockService.MockClock {
	clock := mockService.NewMockClock(t)
	clock.EXPECT().Now().Return(now).Maybe()

	return clock
}

// inlineTxManager runs the transaction body directly against factory.
func inlineTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}
