package impl

import (
	"context"
	"testing"

	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	mockRepo "agenda/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUnique_SkipsAbsentValues(t *testing.T) {
	repo := mockRepo.NewMockIndividualRepository(t)

	err := checkUnique(context.Background(), individualTaxIDKey(repo, nil), individualEmailKey(repo, nil))
	require.NoError(t, err)
}

func TestCheckUnique_PropagatesStoreErrors(t *testing.T) {
	repo := mockRepo.NewMockOrganizationRepository(t)
	ctx := context.Background()
	repo.EXPECT().ExistsByID(ctx, "11222333000181").Return(false, errors.New("connection refused"))

	err := checkUnique(ctx, organizationTaxIDKey(repo, ptr("11222333000181")))
	require.Error(t, err)
	_, isConflict := err.(*domainerrors.ConflictError)
	assert.False(t, isConflict)
}

func TestDuplicateToConflict(t *testing.T) {
	tests := []struct {
		kind  entity.PartyKind
		err   error
		field string
	}{
		{kind: entity.PartyKindIndividual, err: repository.ErrDuplicateTaxID, field: "cpf"},
		{kind: entity.PartyKindOrganization, err: repository.ErrDuplicateTaxID, field: "cnpj"},
		{kind: entity.PartyKindOrganization, err: errors.Wrap(repository.ErrDuplicateEmail, "insert"), field: "email"},
	}

	for _, tt := range tests {
		conflict, ok := duplicateToConflict(tt.kind, tt.err).(*domainerrors.ConflictError)
		require.True(t, ok)
		assert.Equal(t, tt.field, conflict.Field())
	}

	other := errors.New("boom")
	assert.Equal(t, other, duplicateToConflict(entity.PartyKindIndividual, other))
}
