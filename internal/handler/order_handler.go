package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderCreateRequest struct {
	ArtworkID       int64  `json:"artwork_id"`
	CustomerName    string `json:"customer_name" validate:"max=255"`
	CustomerEmail   string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone   string `json:"customer_phone" validate:"max=50"`
	DeliveryAddress string `json:"delivery_address" validate:"max=1000"`
	TotalMinor      int64  `json:"total_minor" validate:"gte=0"`
	Currency        string `json:"currency" validate:"omitempty,len=3"`
}

type OrderCreatedResponse struct {
	ID          int64  `json:"id"`
	Message     string `json:"message"`
	OrderNumber string `json:"order_number"`
}

type OrderStatusRequest struct {
	Status    string  `json:"status"`
	PaymentID *string `json:"payment_id" validate:"omitempty,max=255"`
}

// 決済プロバイダからの通知ボディ（フィールド名はプロバイダ仕様）
type PaymentCallbackRequest struct {
	OrderID   int64  `json:"orderId"`
	PaymentID string `json:"paymentId" validate:"max=255"`
	Status    string `json:"status" validate:"max=50"`
}

type PaymentCallbackResponse struct {
	Success bool `json:"success"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	//購入と決済通知、注文確認は公開
	e.POST("/orders", h.create, middleware.SanitizeInput())
	e.GET("/orders/:id", h.detail)
	e.POST("/orders/payment-callback", h.paymentCallback)

	//一覧とステータス変更は管理者のみ
	g := e.Group("/orders")
	g.Use(middleware.AdminJWT(cfg))
	g.GET("", h.list)
	g.PUT("/:id/status", h.setStatus)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreateOrderInput{
		ArtworkID:       req.ArtworkID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		TotalMinor:      req.TotalMinor,
		Currency:        req.Currency,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, OrderCreatedResponse{
		ID:          out.ID,
		Message:     out.Message,
		OrderNumber: out.OrderNumber,
	})
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) setStatus(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	err := h.uc.SetStatus(c.Request().Context(), id, usecase.SetStatusInput{
		Status:    req.Status,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "order status updated"})
}

func (h *OrderHandler) paymentCallback(c echo.Context) error {
	var req PaymentCallbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	err := h.uc.PaymentCallback(c.Request().Context(), usecase.PaymentCallbackInput{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Status:    req.Status,
	})
	if err != nil {
		return writeError(c, err)
	}

	//処理が終われば常にsuccess
	return c.JSON(http.StatusOK, PaymentCallbackResponse{Success: true})
}
