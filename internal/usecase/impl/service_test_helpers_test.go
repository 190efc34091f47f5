package impl

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"expo/internal/domain/entity"
	mockRepo "expo/internal/mocks/repository"
	mockSvc "expo/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type ledgerServiceFixtures struct {
	service     *ledgerService
	productRepo *mockRepo.MockProductRepository
	saleRepo    *mockRepo.MockSaleRepository
	mirrorRepo  *mockRepo.MockMirrorRepository
	publisher   *mockSvc.MockEventPublisher
}

var fixedNow = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

func createTestLedgerService(t *testing.T) ledgerServiceFixtures {
	t.Helper()

	productRepo := mockRepo.NewMockProductRepository(t)
	saleRepo := mockRepo.NewMockSaleRepository(t)
	mirrorRepo := mockRepo.NewMockMirrorRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewLedgerService(LedgerServiceParams{
		ProductRepo: productRepo,
		SaleRepo:    saleRepo,
		MirrorRepo:  mirrorRepo,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	}).(*ledgerService)
	svc.now = func() time.Time { return fixedNow }

	return ledgerServiceFixtures{
		service:     svc,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		mirrorRepo:  mirrorRepo,
		publisher:   publisher,
	}
}

// expectMirrorRefresh allows any number of mirror rebuilds.
func (f ledgerServiceFixtures) expectMirrorRefresh(products []*entity.Product, sales []*entity.Sale) {
	f.productRepo.EXPECT().ListProducts(mock.Anything).Return(products, nil).Maybe()
	f.saleRepo.EXPECT().ListSales(mock.Anything).Return(sales, nil).Maybe()
	f.mirrorRepo.EXPECT().WriteMirror(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func ptr[T any](v T) *T {
	return &v
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
