package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	uc *usecase.ContactUsecase
}

func NewContactHandler(uc *usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

type ContactCreateRequest struct {
	Name         string `json:"name" validate:"max=255"`
	Phone        string `json:"phone" validate:"max=50"`
	Message      string `json:"message" validate:"max=2000"`
	ArtworkTitle string `json:"artwork_title" validate:"max=255"`
}

func (h *ContactHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	//フォーム送信は公開
	e.POST("/contacts", h.create, middleware.SanitizeInput())

	//閲覧・削除は管理者のみ
	g := e.Group("/contacts")
	g.Use(middleware.AdminJWT(cfg))
	g.GET("", h.list)
	g.DELETE("/:id", h.delete)
}

func (h *ContactHandler) create(c echo.Context) error {
	var req ContactCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	id, err := h.uc.Create(c.Request().Context(), usecase.CreateContactInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Message:      req.Message,
		ArtworkTitle: req.ArtworkTitle,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: id, Message: "contact submitted"})
}

func (h *ContactHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ContactHandler) delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "contact deleted"})
}
