package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	mockRepo "expo/internal/mocks/repository"
	mockUsecase "expo/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedSales() []*entity.Sale {
	return []*entity.Sale{
		{ID: "s1", Total: 300, PaymentMethod: entity.PaymentMethodBBPay},
		{ID: "s2", Total: 150.5, PaymentMethod: entity.PaymentMethodCard},
		{ID: "s3", Total: 49.5, PaymentMethod: entity.PaymentMethodBBPay},
	}
}

func TestRepairSales(t *testing.T) {
	saleRepo := mockRepo.NewMockSaleRepository(t)
	ledger := mockUsecase.NewMockLedgerUsecase(t)
	saleRepo.EXPECT().ListSales(mock.Anything).Return(storedSales(), nil)
	saleRepo.EXPECT().PutSale(mock.Anything, mock.Anything).Return(nil).Times(3)
	ledger.EXPECT().RebuildMirrors(mock.Anything).Return(nil).Once()

	summary, err := repairSales(context.Background(), saleRepo, ledger, false)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 3, summary.Rewritten)
	assert.Equal(t, 500.0, summary.TotalRevenue)
	assert.Equal(t, 2, summary.BBPayTransactions)
}

func TestRepairSales_DryRun(t *testing.T) {
	saleRepo := mockRepo.NewMockSaleRepository(t)
	ledger := mockUsecase.NewMockLedgerUsecase(t)
	saleRepo.EXPECT().ListSales(mock.Anything).Return(storedSales(), nil)

	summary, err := repairSales(context.Background(), saleRepo, ledger, true)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Processed)
	assert.Zero(t, summary.Rewritten)
	saleRepo.AssertNotCalled(t, "PutSale", mock.Anything, mock.Anything)
	ledger.AssertNotCalled(t, "RebuildMirrors", mock.Anything)
}

func TestRepairSales_WriteFailureStops(t *testing.T) {
	saleRepo := mockRepo.NewMockSaleRepository(t)
	ledger := mockUsecase.NewMockLedgerUsecase(t)
	saleRepo.EXPECT().ListSales(mock.Anything).Return(storedSales(), nil)
	saleRepo.EXPECT().PutSale(mock.Anything, mock.Anything).Return(domainerrors.ErrStorageUnavailable).Once()

	_, err := repairSales(context.Background(), saleRepo, ledger, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
	assert.Contains(t, err.Error(), "s1")
	ledger.AssertNotCalled(t, "RebuildMirrors", mock.Anything)
}

func TestRepairSales_ReadFailureIsWrapped(t *testing.T) {
	saleRepo := mockRepo.NewMockSaleRepository(t)
	ledger := mockUsecase.NewMockLedgerUsecase(t)
	saleRepo.EXPECT().ListSales(mock.Anything).Return(nil, domainerrors.ErrStorageUnavailable)

	summary, err := repairSales(context.Background(), saleRepo, ledger, false)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, domainerrors.ErrStorageUnavailable)
	assert.Contains(t, err.Error(), "failed to read sales")
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer

	printSummary(&out, &repairSummary{Processed: 3, TotalRevenue: 500, BBPayTransactions: 2, Elapsed: 1500 * time.Millisecond}, true)

	assert.Equal(t, "Dry run, nothing was written\n"+
		"Sales processed: 3\n"+
		"Sales rewritten: 0\n"+
		"Total revenue: 500.00\n"+
		"BBPAY transactions: 2\n"+
		"Elapsed: 2s\n", out.String())
}
