package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/domain/money"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ArtworkUsecase struct {
	artworkRepo repo.ArtworkRepository
}

// DI
func NewArtworkUsecase(artworkRepo repo.ArtworkRepository) *ArtworkUsecase {
	return &ArtworkUsecase{artworkRepo: artworkRepo}
}

type ArtworkImageInput struct {
	URL   string
	Title *string
}

// 作成・更新の入力DTO
type ArtworkInput struct {
	Title           string
	Description     string
	FullDescription string
	PriceMinor      int64
	Currency        string
	Size            string
	Technique       string
	Year            string
	Image           string
	Status          string
	Images          []ArtworkImageInput
}

type ArtworkOutput struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        string  `json:"price"`
	PriceMinor   int64   `json:"price_minor"`
	Currency     string  `json:"currency"`
	Size         string  `json:"size"`
	Technique    string  `json:"technique"`
	Year         string  `json:"year"`
	Image        string  `json:"image"`
	PrimaryImage *string `json:"primary_image"`
	Status       string  `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type ArtworkImageOutput struct {
	URL   string  `json:"url"`
	Title *string `json:"title"`
}

type ArtworkDetailOutput struct {
	ArtworkOutput
	FullDescription string               `json:"full_description"`
	Images          []ArtworkImageOutput `json:"images"`
}

// 公開カタログ（available のみ、新着順）
func (u *ArtworkUsecase) ListAvailable(ctx context.Context) ([]ArtworkOutput, error) {
	items, err := u.artworkRepo.ListAvailable(ctx)
	if err != nil {
		return []ArtworkOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]ArtworkOutput, 0, len(items))
	for _, a := range items {
		outs = append(outs, toArtworkOutput(a))
	}
	return outs, nil
}

// 公開詳細（available 以外は not found 扱い）
func (u *ArtworkUsecase) GetDetail(ctx context.Context, id int64) (ArtworkDetailOutput, error) {
	if id <= 0 {
		return ArtworkDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	a, err := u.artworkRepo.FindAvailableByID(ctx, id)
	if err == repo.ErrNotFound {
		return ArtworkDetailOutput{}, NewHTTPError(http.StatusNotFound, "artwork not found")
	}
	if err != nil {
		return ArtworkDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	images := make([]ArtworkImageOutput, 0, len(a.Images))
	for _, img := range a.Images {
		images = append(images, ArtworkImageOutput{URL: img.URL, Title: img.Title})
	}

	return ArtworkDetailOutput{
		ArtworkOutput:   toArtworkOutput(a),
		FullDescription: a.FullDescription,
		Images:          images,
	}, nil
}

// 登録。images の先頭がプライマリ、並び順がsort_orderになる
func (u *ArtworkUsecase) Create(ctx context.Context, in ArtworkInput) (int64, error) {
	if strings.TrimSpace(in.Title) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if strings.TrimSpace(in.Image) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "image is required")
	}
	price, err := money.New(in.PriceMinor, in.Currency)
	if err != nil {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	a := model.Artwork{
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		FullDescription: in.FullDescription,
		PriceMinor:      price.Minor,
		Currency:        price.Currency,
		Size:            in.Size,
		Technique:       in.Technique,
		Year:            in.Year,
		Image:           in.Image,
		Status:          model.ArtworkStatusAvailable,
	}

	for i, img := range in.Images {
		if strings.TrimSpace(img.URL) == "" {
			return 0, NewHTTPError(http.StatusBadRequest, "image url is required")
		}
		a.Images = append(a.Images, model.ArtworkImage{
			URL:       img.URL,
			Title:     img.Title,
			IsPrimary: i == 0,
			SortOrder: i,
		})
	}

	id, err := u.artworkRepo.Create(ctx, a)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return id, nil
}

// 可変フィールドの全置換（statusも含む）
func (u *ArtworkUsecase) Update(ctx context.Context, id int64, in ArtworkInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Title) == "" {
		return NewHTTPError(http.StatusBadRequest, "title is required")
	}
	status, err := model.ParseArtworkStatus(in.Status)
	if err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	price, err := money.New(in.PriceMinor, in.Currency)
	if err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	err = u.artworkRepo.Update(ctx, model.Artwork{
		ID:              id,
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		FullDescription: in.FullDescription,
		PriceMinor:      price.Minor,
		Currency:        price.Currency,
		Size:            in.Size,
		Technique:       in.Technique,
		Year:            in.Year,
		Status:          status,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "artwork not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 行は消さずstatus=deletedにする
func (u *ArtworkUsecase) SoftDelete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.artworkRepo.SoftDelete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "artwork not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func toArtworkOutput(a model.Artwork) ArtworkOutput {
	out := ArtworkOutput{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Price:       money.Money{Minor: a.PriceMinor, Currency: a.Currency}.Display(),
		PriceMinor:  a.PriceMinor,
		Currency:    a.Currency,
		Size:        a.Size,
		Technique:   a.Technique,
		Year:        a.Year,
		Image:       a.Image,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}

	//プライマリ画像が無ければ作品本体のimageのまま（nil）
	for _, img := range a.Images {
		if img.IsPrimary {
			url := img.URL
			out.PrimaryImage = &url
			break
		}
	}
	return out
}
