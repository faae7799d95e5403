package impl

import (
	"context"
	"testing"

	"superstore/internal/domain/entity"
	domainerrors "superstore/internal/domain/errors"
	"superstore/internal/domain/repository"
	mockRepo "superstore/internal/mocks/repository"
	"superstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	service := NewCustomerService(customerRepo)

	return customerServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
	}
}

func TestCustomerService_ListCustomers(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	stored := []*entity.Customer{
		{CustomerID: "CG-12520", CustomerName: "Claire Gute", Segment: "Consumer"},
		{CustomerID: "DV-13045", CustomerName: "Darrin Van Huff", Segment: "Corporate"},
	}

	fx.customerRepo.EXPECT().
		FindAll(ctx).
		Return(stored, nil)

	customers, err := fx.service.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)
	assert.Equal(t, "CG-12520", customers[0].CustomerID)
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.customerRepo.EXPECT().
		FindByID(ctx, "XX-00000").
		Return(nil, domainerrors.ErrCustomerNotFound)

	customer, err := fx.service.GetCustomer(ctx, "XX-00000")
	require.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := &entity.Customer{
		CustomerID:   "CG-12520",
		CustomerName: "Claire Gute",
		Segment:      "Consumer",
		Country:      "United States",
		City:         "Henderson",
		State:        "Kentucky",
		PostalCode:   "42420",
		Region:       "South",
	}

	fx.customerRepo.EXPECT().
		Create(ctx, customer).
		Return(nil)

	err := fx.service.CreateCustomer(ctx, customer)
	require.NoError(t, err)
}

func TestCustomerService_CreateCustomer_Duplicate(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := &entity.Customer{CustomerID: "CG-12520", CustomerName: "Claire Gute"}

	fx.customerRepo.EXPECT().
		Create(ctx, customer).
		Return(domainerrors.ErrDuplicateKey)

	err := fx.service.CreateCustomer(ctx, customer)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateKey))
}

func TestCustomerService_UpdateCustomer_PassesPatchThrough(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	city := "Louisville"
	patch := repository.CustomerPatch{City: &city}

	fx.customerRepo.EXPECT().
		Update(ctx, "CG-12520", patch).
		Return(nil)

	err := fx.service.UpdateCustomer(ctx, "CG-12520", patch)
	require.NoError(t, err)
}

func TestCustomerService_DeleteCustomer_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()

	fx.customerRepo.EXPECT().
		Delete(ctx, "XX-00000").
		Return(domainerrors.ErrCustomerNotFound)

	err := fx.service.DeleteCustomer(ctx, "XX-00000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}
