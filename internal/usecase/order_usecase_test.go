package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type OrdArtworkRepoMock struct{ mock.Mock }

func (m *OrdArtworkRepoMock) ListAvailable(ctx context.Context) ([]model.Artwork, error) {
	panic("not used in OrderUsecase tests")
}

func (m *OrdArtworkRepoMock) FindAvailableByID(ctx context.Context, id int64) (model.Artwork, error) {
	panic("not used in OrderUsecase tests")
}

func (m *OrdArtworkRepoMock) FindByID(ctx context.Context, id int64) (model.Artwork, error) {
	panic("not used in OrderUsecase tests")
}

func (m *OrdArtworkRepoMock) Create(ctx context.Context, a model.Artwork) (int64, error) {
	panic("not used in OrderUsecase tests")
}

func (m *OrdArtworkRepoMock) Update(ctx context.Context, a model.Artwork) error {
	panic("not used in OrderUsecase tests")
}

func (m *OrdArtworkRepoMock) SoftDelete(ctx context.Context, id int64) error {
	panic("not used in OrderUsecase tests")
}

func (m *OrdArtworkRepoMock) MarkSold(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type OrdOrderRepoMock struct{ mock.Mock }

func (m *OrdOrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrdOrderRepoMock) FindByID(ctx context.Context, orderID int64) (repo.OrderWithArtwork, error) {
	args := m.Called(ctx, orderID)
	row, _ := args.Get(0).(repo.OrderWithArtwork)
	return row, args.Error(1)
}

func (m *OrdOrderRepoMock) List(ctx context.Context) ([]repo.OrderWithArtwork, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.OrderWithArtwork)
	return rows, args.Error(1)
}

func (m *OrdOrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, paymentID *string) error {
	args := m.Called(ctx, orderID, status, paymentID)
	return args.Error(0)
}

// fnをそのまま実行するTxManager
type txManagerStub struct {
	artworks repo.ArtworkRepository
	orders   repo.OrderRepository
}

func (s *txManagerStub) Artworks() repo.ArtworkRepository { return s.artworks }
func (s *txManagerStub) Orders() repo.OrderRepository     { return s.orders }

func (s *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(s)
}

func newOrderUsecase(artworks *OrdArtworkRepoMock, orders *OrdOrderRepoMock) *usecase.OrderUsecase {
	tx := &txManagerStub{artworks: artworks, orders: orders}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usecase.NewOrderUsecase(tx, orders, log)
}

func validCreateInput(artworkID int64) usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		ArtworkID:       artworkID,
		CustomerName:    "Анна Петрова",
		CustomerEmail:   "anna@example.com",
		CustomerPhone:   "+7 900 000-00-00",
		DeliveryAddress: "Москва, ул. Тверская, 1",
		TotalMinor:      2500000,
		Currency:        "RUB",
	}
}

func TestOrderNumber(t *testing.T) {
	assert.Equal(t, "ORD-000007", usecase.OrderNumber(7))
	assert.Equal(t, "ORD-000042", usecase.OrderNumber(42))
	assert.Equal(t, "ORD-1234567", usecase.OrderNumber(1234567))
}

func TestCreateOrder_Success(t *testing.T) {
	artworks := new(OrdArtworkRepoMock)
	orders := new(OrdOrderRepoMock)
	uc := newOrderUsecase(artworks, orders)

	artworks.On("MarkSold", mock.Anything, int64(10)).Return(true, nil).Once()
	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.ArtworkID == 10 &&
			o.Status == model.OrderStatusPending &&
			o.TotalMinor == 2500000 &&
			o.Currency == "RUB"
	})).Return(int64(42), nil).Once()

	out, err := uc.Create(context.Background(), validCreateInput(10))
	require.NoError(t, err)

	assert.Equal(t, int64(42), out.ID)
	assert.Equal(t, "ORD-000042", out.OrderNumber)
	artworks.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestCreateOrder_ArtworkUnavailable(t *testing.T) {
	artworks := new(OrdArtworkRepoMock)
	orders := new(OrdOrderRepoMock)
	uc := newOrderUsecase(artworks, orders)

	//sold/deleted/存在しないは全部RowsAffected=0でfalseになる
	artworks.On("MarkSold", mock.Anything, int64(10)).Return(false, nil).Once()

	_, err := uc.Create(context.Background(), validCreateInput(10))
	require.Error(t, err)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "artwork is not available for order", he.Message)

	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrder_OnlyOneBuyerWins(t *testing.T) {
	artworks := new(OrdArtworkRepoMock)
	orders := new(OrdOrderRepoMock)
	uc := newOrderUsecase(artworks, orders)

	//同じ作品への2回目はcompare-and-setで負ける
	artworks.On("MarkSold", mock.Anything, int64(10)).Return(true, nil).Once()
	artworks.On("MarkSold", mock.Anything, int64(10)).Return(false, nil).Once()
	orders.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil).Once()

	_, err1 := uc.Create(context.Background(), validCreateInput(10))
	_, err2 := uc.Create(context.Background(), validCreateInput(10))

	require.NoError(t, err1)
	require.Error(t, err2)

	he, ok := usecase.AsHTTPError(err2)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	orders.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreateOrder_MissingCustomerFields(t *testing.T) {
	artworks := new(OrdArtworkRepoMock)
	orders := new(OrdOrderRepoMock)
	uc := newOrderUsecase(artworks, orders)

	in := validCreateInput(10)
	in.CustomerPhone = "   "

	_, err := uc.Create(context.Background(), in)
	require.Error(t, err)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	artworks.AssertNotCalled(t, "MarkSold", mock.Anything, mock.Anything)
}

func TestPaymentCallback_Success(t *testing.T) {
	artworks := new(OrdArtworkRepoMock)
	orders := new(OrdOrderRepoMock)
	uc := newOrderUsecase(artworks, orders)

	orders.On("UpdateStatus", mock.Anything, int64(5), model.OrderStatusPaid,
		mock.MatchedBy(func(p *string) bool { return p != nil && *p == "pay_abc123" }),
	).Return(nil).Once()

	err := uc.PaymentCallback(context.Background(), usecase.PaymentCallbackInput{
		OrderID:   5,
		PaymentID: "pay_abc123",
		Status:    "SUCCESS",
	})
	require.NoError(t, err)
	orders.AssertExpectations(t)
}

func TestPaymentCallback_Failure(t *testing.T) {
	artworks := new(OrdArtworkRepoMock)
	orders := new(OrdOrderRepoMock)
	uc := newOrderUsecase(artworks, orders)

	//SUCCESS以外は全てpayment_failed。payment_idは触らない
	orders.On("UpdateStatus", mock.Anything, int64(5), model.OrderStatusPaymentFailed,
		(*string)(nil),
	).Return(nil).Once()

	err := uc.PaymentCallback(context.Background(), usecase.PaymentCallbackInput{
		OrderID:   5,
		PaymentID: "pay_abc123",
		Status:    "DECLINED",
	})
	require.NoError(t, err)
	orders.AssertExpectations(t)
}

func TestPaymentCallback_UnknownOrderStillAccepted(t *testing.T) {
	artworks := new(OrdArtworkRepoMock)
	orders := new(OrdOrderRepoMock)
	uc := newOrderUsecase(artworks, orders)

	orders.On("UpdateStatus", mock.Anything, int64(999), model.OrderStatusPaymentFailed,
		(*string)(nil),
	).Return(repo.ErrNotFound).Once()

	err := uc.PaymentCallback(context.Background(), usecase.PaymentCallbackInput{
		OrderID: 999,
		Status:  "FAILED",
	})
	require.NoError(t, err)
}

func TestSetStatus_InvalidValue(t *testing.T) {
	artworks := new(OrdArtworkRepoMock)
	orders := new(OrdOrderRepoMock)
	uc := newOrderUsecase(artworks, orders)

	err := uc.SetStatus(context.Background(), 5, usecase.SetStatusInput{Status: "unknown"})
	require.Error(t, err)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSetStatus_AnyTransitionAllowed(t *testing.T) {
	artworks := new(OrdArtworkRepoMock)
	orders := new(OrdOrderRepoMock)
	uc := newOrderUsecase(artworks, orders)

	//遷移グラフは強制しない：delivered→pendingも通す
	orders.On("UpdateStatus", mock.Anything, int64(5), model.OrderStatusPending,
		(*string)(nil),
	).Return(nil).Once()

	err := uc.SetStatus(context.Background(), 5, usecase.SetStatusInput{Status: "pending"})
	require.NoError(t, err)
	orders.AssertExpectations(t)
}

func TestSetStatus_NotFound(t *testing.T) {
	artworks := new(OrdArtworkRepoMock)
	orders := new(OrdOrderRepoMock)
	uc := newOrderUsecase(artworks, orders)

	orders.On("UpdateStatus", mock.Anything, int64(5), model.OrderStatusPaid,
		(*string)(nil),
	).Return(repo.ErrNotFound).Once()

	err := uc.SetStatus(context.Background(), 5, usecase.SetStatusInput{Status: "paid"})
	require.Error(t, err)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestGetOrder_NotFound(t *testing.T) {
	artworks := new(OrdArtworkRepoMock)
	orders := new(OrdOrderRepoMock)
	uc := newOrderUsecase(artworks, orders)

	orders.On("FindByID", mock.Anything, int64(77)).Return(repo.OrderWithArtwork{}, repo.ErrNotFound).Once()

	_, err := uc.Get(context.Background(), 77)
	require.Error(t, err)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestGetOrder_JoinsArtworkFields(t *testing.T) {
	artworks := new(OrdArtworkRepoMock)
	orders := new(OrdOrderRepoMock)
	uc := newOrderUsecase(artworks, orders)

	row := repo.OrderWithArtwork{
		Order: model.Order{
			ID:         3,
			ArtworkID:  10,
			TotalMinor: 2500000,
			Currency:   "RUB",
			Status:     model.OrderStatusPaid,
		},
		ArtworkTitle:      "Закат над городом",
		ArtworkImage:      "/img/sunset.jpg",
		ArtworkPriceMinor: 2500000,
		ArtworkCurrency:   "RUB",
	}
	orders.On("FindByID", mock.Anything, int64(3)).Return(row, nil).Once()

	out, err := uc.Get(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "Закат над городом", out.ArtworkTitle)
	assert.Equal(t, "/img/sunset.jpg", out.ArtworkImage)
	assert.Equal(t, "paid", out.Status)
	assert.NotEmpty(t, out.TotalAmount)
}

func TestListOrders_DBError(t *testing.T) {
	artworks := new(OrdArtworkRepoMock)
	orders := new(OrdOrderRepoMock)
	uc := newOrderUsecase(artworks, orders)

	orders.On("List", mock.Anything).Return([]repo.OrderWithArtwork(nil), errors.New("boom")).Once()

	_, err := uc.List(context.Background())
	require.Error(t, err)

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
}
