package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// 許可する画像拡張子
var allowedImageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".gif":  {},
}

type AdminHandler struct {
	uc  *usecase.AdminUsecase
	cfg config.Config
}

func NewAdminHandler(uc *usecase.AdminUsecase, cfg config.Config) *AdminHandler {
	return &AdminHandler{uc: uc, cfg: cfg}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

type VerifyResponse struct {
	Valid bool `json:"valid"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.POST("/admin/login", h.login)

	g := e.Group("/admin")
	g.Use(middleware.AdminJWT(cfg))
	g.GET("/verify", h.verify)
	g.GET("/stats", h.stats)
	g.POST("/upload", h.upload)
}

func (h *AdminHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	out, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// AdminJWTを通過した時点で有効
func (h *AdminHandler) verify(c echo.Context) error {
	return c.JSON(http.StatusOK, VerifyResponse{Valid: true})
}

func (h *AdminHandler) stats(c echo.Context) error {
	out, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 画像アップロード。uuid名で保存して公開URLを返す
func (h *AdminHandler) upload(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image file is required"})
	}
	if file.Size > h.cfg.MaxUploadSize {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file too large"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported file type"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(h.cfg.UploadDir, name))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusCreated, UploadResponse{URL: "/uploads/" + name})
}
