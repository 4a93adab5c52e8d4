package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"agenda/internal/domain/entity"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/validation"
	mockRepo "agenda/internal/mocks/repository"
	mockSvc "agenda/internal/mocks/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/mock"
)

var (
	testNow   = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	testPoint = orb.Point{-46.6544, -23.5614}
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestValidator() *validation.Validator {
	return validation.New(validation.WithClock(func() time.Time { return testNow }))
}

func defaultTestPolicy() GeocodePolicy {
	return NewGeocodePolicy(nil)
}

func ptr(s string) *string { return &s }

// newSyncAnnouncer runs notification and publishing on the caller's goroutine.
func newSyncAnnouncer(notifier *mockSvc.MockNotifier, publisher *mockSvc.MockEventPublisher) *RegistrationAnnouncer {
	return &RegistrationAnnouncer{
		notifier:  notifier,
		publisher: publisher,
		logger:    newDiscardLogger(),
		async:     func(fn func()) { fn() },
	}
}

// expectTx lets the transaction callback run against factory and returns its error.
func expectTx(ctx context.Context, txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func existingIndividual() *entity.Individual {
	point := testPoint

	return &entity.Individual{
		TaxID:       "52998224725",
		Name:        "Maria Silva",
		BirthDate:   time.Date(1990, time.May, 20, 0, 0, 0, 0, time.UTC),
		Phone:       "11987654321",
		PostalCode:  "01310-100",
		Email:       "maria@example.com",
		Address:     "Avenida Paulista, 1000 - Bela Vista",
		Coordinates: &point,
		CreatedAt:   time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
	}
}

func existingOrganization() *entity.Organization {
	point := testPoint

	return &entity.Organization{
		TaxID:       "11222333000181",
		LegalName:   "Acme Comercio Ltda",
		TradeName:   "Acme",
		Phone:       "11333344445",
		Email:       "contato@acme.com.br",
		Address:     "Rua Augusta, 500 - Consolação",
		PostalCode:  "01305-000",
		Coordinates: &point,
	}
}
