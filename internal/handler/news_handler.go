package handler

import (
	"net/http"
	"time"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type NewsHandler struct {
	uc *usecase.NewsUsecase
}

func NewNewsHandler(uc *usecase.NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

type NewsRequest struct {
	Title       string     `json:"title" validate:"max=255"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt" validate:"max=500"`
	Image       *string    `json:"image" validate:"omitempty,max=2048"`
	PublishedAt *time.Time `json:"published_at"`
}

func (h *NewsHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/news", h.list)
	e.GET("/news/:id", h.detail)

	//書き込みは管理者のみ
	g := e.Group("/news")
	g.Use(middleware.AdminJWT(cfg))
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *NewsHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *NewsHandler) detail(c echo.Context) error {
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

func (h *NewsHandler) create(c echo.Context) error {
	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	id, err := h.uc.Create(c.Request().Context(), toNewsInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id, Message: "news created"})
}

func (h *NewsHandler) update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	if err := h.uc.Update(c.Request().Context(), id, toNewsInput(req)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "news updated"})
}

func (h *NewsHandler) delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "news deleted"})
}

func toNewsInput(req NewsRequest) usecase.NewsInput {
	return usecase.NewsInput{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Image:       req.Image,
		PublishedAt: req.PublishedAt,
	}
}
