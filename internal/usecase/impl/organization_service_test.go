package impl

import (
	"context"
	"testing"
	"time"

	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/service"
	mockRepo "agenda/internal/mocks/repository"
	mockSvc "agenda/internal/mocks/service"
	"agenda/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type organizationServiceFixtures struct {
	service   usecase.OrganizationUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	repo      *mockRepo.MockOrganizationRepository
	geocoder  *mockSvc.MockGeocoder
	notifier  *mockSvc.MockNotifier
	publisher *mockSvc.MockEventPublisher
}

func createTestOrganizationService(t *testing.T, policy GeocodePolicy) organizationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	repo := mockRepo.NewMockOrganizationRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)
	notifier := mockSvc.NewMockNotifier(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	factory.EXPECT().NewOrganizationRepository().Return(repo).Maybe()

	svc := NewOrganizationService(OrganizationServiceParams{
		TxManager: txManager,
		Repo:      repo,
		Geocoder:  geocoder,
		Validator: newTestValidator(),
		Policy:    policy,
		Announcer: newSyncAnnouncer(notifier, publisher),
		Logger:    newDiscardLogger(),
	})
	svc.(*organizationService).now = func() time.Time { return testNow }

	return organizationServiceFixtures{
		service:   svc,
		txManager: txManager,
		factory:   factory,
		repo:      repo,
		geocoder:  geocoder,
		notifier:  notifier,
		publisher: publisher,
	}
}

func validOrganizationInput() *usecase.OrganizationInput {
	return &usecase.OrganizationInput{
		TaxID:      ptr("11.222.333/0001-81"),
		LegalName:  ptr("Acme Comercio Ltda"),
		TradeName:  ptr("Acme"),
		Phone:      ptr("11333344445"),
		Email:      ptr("contato@acme.com.br"),
		Address:    ptr("Rua Augusta, 500 - Consolação"),
		PostalCode: ptr("01305-000"),
	}
}

func TestOrganizationService_Create_Success(t *testing.T) {
	fx := createTestOrganizationService(t, defaultTestPolicy())
	ctx := context.Background()

	fx.geocoder.EXPECT().Resolve(ctx, "01305-000").Return(service.Resolved(testPoint))
	expectTx(ctx, fx.txManager, fx.factory)
	fx.repo.EXPECT().ExistsByID(ctx, "11222333000181").Return(false, nil)
	fx.repo.EXPECT().FindByEmail(ctx, "contato@acme.com.br").Return(nil, repository.ErrOrganizationNotFound)
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Organization")).Return(nil)
	fx.notifier.EXPECT().Notify(mock.Anything, "Acme Comercio Ltda", "contato@acme.com.br").Return(nil)
	fx.publisher.EXPECT().
		PublishPartyRegistered(mock.Anything, mock.MatchedBy(func(e *service.PartyRegisteredEvent) bool {
			return e.Kind == "organization" && e.DisplayName == "Acme Comercio Ltda"
		})).
		Return(nil)

	record, err := fx.service.Create(ctx, validOrganizationInput())
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", record.TaxID)
	require.NotNil(t, record.Coordinates)
}

func TestOrganizationService_Create_UnresolvablePostalCodeIsFatal(t *testing.T) {
	fx := createTestOrganizationService(t, defaultTestPolicy())
	ctx := context.Background()

	fx.geocoder.EXPECT().Resolve(ctx, "01305-000").Return(service.Unresolvable())

	_, err := fx.service.Create(ctx, validOrganizationInput())
	requireFields(t, err, map[string]string{"cep": "Não foi possível obter as coordenadas para este CEP"})
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestOrganizationService_Create_ProviderFailureIsExternalServiceError(t *testing.T) {
	fx := createTestOrganizationService(t, defaultTestPolicy())
	ctx := context.Background()
	cause := errors.New("503 Service Unavailable")

	fx.geocoder.EXPECT().Resolve(ctx, "01305-000").Return(service.ProviderFailure(cause))

	_, err := fx.service.Create(ctx, validOrganizationInput())
	requireFields(t, err, map[string]string{"cep": "Não foi possível obter as coordenadas para este CEP"})

	var external *domainerrors.ExternalServiceError
	require.ErrorAs(t, err, &external)
	assert.ErrorIs(t, err, cause)
}

func TestOrganizationService_Create_SoftPolicyOverride(t *testing.T) {
	policy := defaultTestPolicy()
	policy.OrganizationCreate = GeocodeSoft
	fx := createTestOrganizationService(t, policy)
	ctx := context.Background()

	fx.geocoder.EXPECT().Resolve(ctx, "01305-000").Return(service.Unresolvable())
	expectTx(ctx, fx.txManager, fx.factory)
	fx.repo.EXPECT().ExistsByID(ctx, "11222333000181").Return(false, nil)
	fx.repo.EXPECT().FindByEmail(ctx, "contato@acme.com.br").Return(nil, repository.ErrOrganizationNotFound)
	fx.repo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishPartyRegistered(mock.Anything, mock.Anything).Return(nil)

	record, err := fx.service.Create(ctx, validOrganizationInput())
	require.NoError(t, err)
	assert.Nil(t, record.Coordinates)
}

func TestOrganizationService_Create_TaxIDTaken(t *testing.T) {
	fx := createTestOrganizationService(t, defaultTestPolicy())
	ctx := context.Background()

	fx.geocoder.EXPECT().Resolve(ctx, "01305-000").Return(service.Resolved(testPoint))
	expectTx(ctx, fx.txManager, fx.factory)
	fx.repo.EXPECT().ExistsByID(ctx, "11222333000181").Return(true, nil)

	_, err := fx.service.Create(ctx, validOrganizationInput())
	requireFields(t, err, map[string]string{"cnpj": "CNPJ já cadastrado"})
}

func TestOrganizationService_Create_CollectsAllFormatErrors(t *testing.T) {
	fx := createTestOrganizationService(t, defaultTestPolicy())
	ctx := context.Background()

	input := validOrganizationInput()
	input.TaxID = ptr("11.222.333/0001-82")
	input.LegalName = ptr("Ac")
	input.TradeName = ptr("Acme 2")
	input.Email = ptr("contato@mailinator.com")

	fx.geocoder.EXPECT().Resolve(ctx, "01305-000").Return(service.Resolved(testPoint))
	expectTx(ctx, fx.txManager, fx.factory)
	fx.repo.EXPECT().ExistsByID(ctx, "11222333000182").Return(false, nil)
	fx.repo.EXPECT().FindByEmail(ctx, "contato@mailinator.com").Return(nil, repository.ErrOrganizationNotFound)

	_, err := fx.service.Create(ctx, input)
	requireFields(t, err, map[string]string{
		"cnpj":         "CNPJ inválido",
		"razaoSocial":  "Razão Social inválida",
		"nomeFantasia": "Nome Fantasia inválido",
		"email":        "E-mail inválido",
	})
}

func TestOrganizationService_Update_PostalCodeProviderFailureIsSoft(t *testing.T) {
	fx := createTestOrganizationService(t, defaultTestPolicy())
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, "11222333000181").Return(existingOrganization(), nil)
	fx.geocoder.EXPECT().Resolve(ctx, "20040-002").Return(service.ProviderFailure(errors.New("timeout")))
	expectTx(ctx, fx.txManager, fx.factory)
	fx.repo.EXPECT().
		Update(ctx, mock.MatchedBy(func(o *entity.Organization) bool { return o.PostalCode == "20040-002" })).
		Return(nil)

	record, err := fx.service.Update(ctx, "11.222.333/0001-81", &usecase.OrganizationInput{PostalCode: ptr("20040-002")})
	require.NoError(t, err)
	require.NotNil(t, record.Coordinates)
	assert.Equal(t, testPoint, *record.Coordinates)
}

func TestOrganizationService_Update_TradeNameOnly(t *testing.T) {
	fx := createTestOrganizationService(t, defaultTestPolicy())
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, "11222333000181").Return(existingOrganization(), nil)
	expectTx(ctx, fx.txManager, fx.factory)
	fx.repo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	record, err := fx.service.Update(ctx, "11222333000181", &usecase.OrganizationInput{TradeName: ptr("Acme Store")})
	require.NoError(t, err)
	assert.Equal(t, "Acme Store", record.TradeName)
	fx.geocoder.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	fx.repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestOrganizationService_Update_NotFound(t *testing.T) {
	fx := createTestOrganizationService(t, defaultTestPolicy())
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, "11222333000181").Return(nil, repository.ErrOrganizationNotFound)

	_, err := fx.service.Update(ctx, "11222333000181", &usecase.OrganizationInput{})
	require.ErrorIs(t, err, domainerrors.ErrOrganizationNotFound)
}

func TestOrganizationService_Delete(t *testing.T) {
	fx := createTestOrganizationService(t, defaultTestPolicy())
	ctx := context.Background()

	fx.repo.EXPECT().Delete(ctx, "11222333000181").Return(repository.ErrOrganizationNotFound)

	require.ErrorIs(t, fx.service.Delete(ctx, "11.222.333/0001-81"), domainerrors.ErrOrganizationNotFound)
}
