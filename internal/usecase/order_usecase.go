package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/domain/money"
	repo "app/internal/repository"
)

// 決済プロバイダが成功時に送ってくるstatus値
const paymentStatusSuccess = "SUCCESS"

type OrderUsecase struct {
	tx        repo.TransactionManager
	orderRepo repo.OrderRepository
	log       *slog.Logger
}

func NewOrderUsecase(tx repo.TransactionManager, orderRepo repo.OrderRepository, log *slog.Logger) *OrderUsecase {
	return &OrderUsecase{tx: tx, orderRepo: orderRepo, log: log}
}

type CreateOrderInput struct {
	ArtworkID       int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DeliveryAddress string
	TotalMinor      int64
	Currency        string
}

type CreateOrderOutput struct {
	ID          int64  `json:"id"`
	Message     string `json:"message"`
	OrderNumber string `json:"order_number"`
}

type OrderOutput struct {
	ID              int64     `json:"id"`
	ArtworkID       int64     `json:"artwork_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	DeliveryAddress string    `json:"delivery_address"`
	TotalAmount     string    `json:"total_amount"`
	TotalMinor      int64     `json:"total_minor"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	PaymentID       *string   `json:"payment_id"`
	CreatedAt       time.Time `json:"created_at"`
	ArtworkTitle    string    `json:"artwork_title"`
	ArtworkImage    string    `json:"artwork_image"`
	ArtworkPrice    string    `json:"artwork_price"`
}

// OrderNumber は注文番号の表示形式（例: id=7 → ORD-000007）
func OrderNumber(id int64) string {
	return fmt.Sprintf("ORD-%06d", id)
}

// Create は注文作成。作品のavailable→sold遷移と注文INSERTを
// 1トランザクションで行う。同じ作品への同時注文は片方だけ成功する
func (u *OrderUsecase) Create(ctx context.Context, in CreateOrderInput) (CreateOrderOutput, error) {
	if in.ArtworkID <= 0 {
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid artwork_id")
	}
	if strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.CustomerEmail) == "" ||
		strings.TrimSpace(in.CustomerPhone) == "" ||
		strings.TrimSpace(in.DeliveryAddress) == "" {
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "customer fields are required")
	}
	total, err := money.New(in.TotalMinor, in.Currency)
	if err != nil {
		return CreateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid total")
	}

	var out CreateOrderOutput

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//先にsoldへ更新（availableでなければ負け）
		ok, err := r.Artworks().MarkSold(ctx, in.ArtworkID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return NewHTTPError(http.StatusBadRequest, "artwork is not available for order")
		}

		orderID, err := r.Orders().Create(ctx, model.Order{
			ArtworkID:       in.ArtworkID,
			CustomerName:    strings.TrimSpace(in.CustomerName),
			CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
			CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
			DeliveryAddress: strings.TrimSpace(in.DeliveryAddress),
			TotalMinor:      total.Minor,
			Currency:        total.Currency,
			Status:          model.OrderStatusPending,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = CreateOrderOutput{
			ID:          orderID,
			Message:     "order created",
			OrderNumber: OrderNumber(orderID),
		}
		return nil
	})

	if err != nil {
		return CreateOrderOutput{}, err
	}

	u.log.Info("order created",
		slog.Int64("order_id", out.ID),
		slog.Int64("artwork_id", in.ArtworkID),
	)
	return out, nil
}

func (u *OrderUsecase) Get(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	row, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderOutput(row), nil
}

func (u *OrderUsecase) List(ctx context.Context) ([]OrderOutput, error) {
	rows, err := u.orderRepo.List(ctx)
	if err != nil {
		return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0, len(rows))
	for _, row := range rows {
		outs = append(outs, toOrderOutput(row))
	}
	return outs, nil
}

type SetStatusInput struct {
	Status    string
	PaymentID *string
}

// SetStatus は管理画面からの無条件上書き。値の妥当性だけ見る
// （遷移グラフは強制しない：delivered→pending も通る）
func (u *OrderUsecase) SetStatus(ctx context.Context, orderID int64, in SetStatusInput) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	status, err := model.ParseOrderStatus(in.Status)
	if err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err = u.orderRepo.UpdateStatus(ctx, orderID, status, in.PaymentID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type PaymentCallbackInput struct {
	OrderID   int64
	PaymentID string
	Status    string
}

// PaymentCallback は決済プロバイダからの通知。
// SUCCESS → paid＋payment_id記録、それ以外 → payment_failed。
// 失敗時も作品はsoldのまま（再公開は管理者が作品更新で行う運用）
func (u *OrderUsecase) PaymentCallback(ctx context.Context, in PaymentCallbackInput) error {
	if in.OrderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid orderId")
	}

	var err error
	if in.Status == paymentStatusSuccess {
		paymentID := in.PaymentID
		err = u.orderRepo.UpdateStatus(ctx, in.OrderID, model.OrderStatusPaid, &paymentID)
	} else {
		err = u.orderRepo.UpdateStatus(ctx, in.OrderID, model.OrderStatusPaymentFailed, nil)
	}

	//対象の注文が無くても通知自体は受理する
	if err == repo.ErrNotFound {
		u.log.Warn("payment callback for unknown order", slog.Int64("order_id", in.OrderID))
		return nil
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Info("payment callback processed",
		slog.Int64("order_id", in.OrderID),
		slog.String("provider_status", in.Status),
	)
	return nil
}

func toOrderOutput(row repo.OrderWithArtwork) OrderOutput {
	return OrderOutput{
		ID:              row.Order.ID,
		ArtworkID:       row.Order.ArtworkID,
		CustomerName:    row.Order.CustomerName,
		CustomerEmail:   row.Order.CustomerEmail,
		CustomerPhone:   row.Order.CustomerPhone,
		DeliveryAddress: row.Order.DeliveryAddress,
		TotalAmount:     money.Money{Minor: row.Order.TotalMinor, Currency: row.Order.Currency}.Display(),
		TotalMinor:      row.Order.TotalMinor,
		Currency:        row.Order.Currency,
		Status:          string(row.Order.Status),
		PaymentID:       row.Order.PaymentID,
		CreatedAt:       row.Order.CreatedAt,
		ArtworkTitle:    row.ArtworkTitle,
		ArtworkImage:    row.ArtworkImage,
		ArtworkPrice:    money.Money{Minor: row.ArtworkPriceMinor, Currency: row.ArtworkCurrency}.Display(),
	}
}
