package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/usecase"
	"github.com/iho/goloan/internal/usecase/mocks"
)

func TestCompanyUseCase_CreateCompany(t *testing.T) {
	tests := []struct {
		name      string
		input     usecase.CreateCompanyInput
		errorType error
	}{
		{
			name:  "registers a company",
			input: usecase.CreateCompanyInput{Name: "  Green Leaf  ", Identifier: "GL"},
		},
		{
			name:      "blank name",
			input:     usecase.CreateCompanyInput{Name: " ", Identifier: "GL2"},
			errorType: domain.ErrCompanyNameRequired,
		},
		{
			name:      "missing identifier",
			input:     usecase.CreateCompanyInput{Name: "Green Leaf"},
			errorType: domain.ErrInvalidIDFormat,
		},
		{
			name:      "identifier taken",
			input:     usecase.CreateCompanyInput{Name: "Other Acme", Identifier: "ACME"},
			errorType: domain.ErrDuplicateIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCompanyRepository(&domain.Company{ID: "co-1", Name: "Acme", Identifier: "ACME"})
			uc := usecase.NewCompanyUseCase(repo, mocks.NewMockIDGenerator())

			company, err := uc.CreateCompany(context.Background(), tt.input)
			if tt.errorType != nil {
				assert.ErrorIs(t, err, tt.errorType)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Green Leaf", company.Name)
			assert.True(t, company.HoldingAccountBalance.IsZero())

			stored, err := uc.GetCompany(context.Background(), company.ID)
			require.NoError(t, err)
			assert.Equal(t, company.Identifier, stored.Identifier)
		})
	}
}

func TestCompanyUseCase_ListCompanies(t *testing.T) {
	repo := mocks.NewMockCompanyRepository(
		&domain.Company{ID: "co-2", Name: "Zeta", Identifier: "B"},
		&domain.Company{ID: "co-1", Name: "Acme", Identifier: "A"},
		&domain.Company{ID: "co-3", Name: "Mid", Identifier: "C"},
	)
	uc := usecase.NewCompanyUseCase(repo, mocks.NewMockIDGenerator())

	all, err := uc.ListCompanies(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "co-1", all[0].ID)

	page, err := uc.ListCompanies(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "co-2", page[0].ID)
}

func TestCompanyUseCase_GetCompanyNotFound(t *testing.T) {
	uc := usecase.NewCompanyUseCase(mocks.NewMockCompanyRepository(), mocks.NewMockIDGenerator())

	_, err := uc.GetCompany(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}
