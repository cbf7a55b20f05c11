package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse は { message: string } 形の応答。
type SuccessResponse struct {
	Message string `json:"message"`
}

// CreatedResponse は登録系の { id, message } 応答。
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// /artworks の公開API＋管理API
type ArtworkHandler struct {
	uc *usecase.ArtworkUsecase
}

// DI
func NewArtworkHandler(uc *usecase.ArtworkUsecase) *ArtworkHandler {
	return &ArtworkHandler{uc: uc}
}

type ArtworkImageRequest struct {
	URL   string  `json:"url" validate:"max=2048"`
	Title *string `json:"title" validate:"omitempty,max=255"`
}

// 作成・更新の共通ボディ
type ArtworkRequest struct {
	Title           string                `json:"title" validate:"max=255"`
	Description     string                `json:"description" validate:"max=1000"`
	FullDescription string                `json:"full_description"`
	PriceMinor      int64                 `json:"price_minor" validate:"gte=0"`
	Currency        string                `json:"currency" validate:"omitempty,len=3"`
	Size            string                `json:"size" validate:"max=100"`
	Technique       string                `json:"technique" validate:"max=255"`
	Year            string                `json:"year" validate:"max=10"`
	Image           string                `json:"image" validate:"max=2048"`
	Status          string                `json:"status" validate:"omitempty,oneof=available sold deleted"`
	Images          []ArtworkImageRequest `json:"images" validate:"dive"`
}

func (h *ArtworkHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/artworks", h.list)
	e.GET("/artworks/:id", h.detail)

	//書き込みは管理者のみ
	g := e.Group("/artworks")
	g.Use(middleware.AdminJWT(cfg))
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.softDelete)
}

func (h *ArtworkHandler) list(c echo.Context) error {
	out, err := h.uc.ListAvailable(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ArtworkHandler) detail(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ArtworkHandler) create(c echo.Context) error {
	var req ArtworkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	id, err := h.uc.Create(c.Request().Context(), toArtworkInput(req))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: id, Message: "artwork created"})
}

func (h *ArtworkHandler) update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ArtworkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	if err := h.uc.Update(c.Request().Context(), id, toArtworkInput(req)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "artwork updated"})
}

func (h *ArtworkHandler) softDelete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.SoftDelete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "artwork deleted"})
}

func toArtworkInput(req ArtworkRequest) usecase.ArtworkInput {
	in := usecase.ArtworkInput{
		Title:           req.Title,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		PriceMinor:      req.PriceMinor,
		Currency:        req.Currency,
		Size:            req.Size,
		Technique:       req.Technique,
		Year:            req.Year,
		Image:           req.Image,
		Status:          req.Status,
	}
	for _, img := range req.Images {
		in.Images = append(in.Images, usecase.ArtworkImageInput{URL: img.URL, Title: img.Title})
	}
	return in
}
