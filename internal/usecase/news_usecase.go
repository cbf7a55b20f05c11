package usecase

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
)

type NewsUsecase struct {
	newsRepo repo.NewsRepository
}

// DI
func NewNewsUsecase(newsRepo repo.NewsRepository) *NewsUsecase {
	return &NewsUsecase{newsRepo: newsRepo}
}

type NewsInput struct {
	Title       string
	Content     string
	Excerpt     string
	Image       *string
	PublishedAt *time.Time
}

type NewsOutput struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	Excerpt     string    `json:"excerpt"`
	Image       *string   `json:"image"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *NewsUsecase) List(ctx context.Context) ([]NewsOutput, error) {
	items, err := u.newsRepo.List(ctx)
	if err != nil {
		return []NewsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]NewsOutput, 0, len(items))
	for _, n := range items {
		outs = append(outs, toNewsOutput(n))
	}
	return outs, nil
}

func (u *NewsUsecase) Get(ctx context.Context, id int64) (NewsOutput, error) {
	if id <= 0 {
		return NewsOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	n, err := u.newsRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewsOutput{}, NewHTTPError(http.StatusNotFound, "news not found")
	}
	if err != nil {
		return NewsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toNewsOutput(n), nil
}

// published_at未指定なら今
func (u *NewsUsecase) Create(ctx context.Context, in NewsInput) (int64, error) {
	if strings.TrimSpace(in.Title) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "content is required")
	}

	publishedAt := time.Now()
	if in.PublishedAt != nil {
		publishedAt = *in.PublishedAt
	}

	id, err := u.newsRepo.Create(ctx, model.News{
		Title:       strings.TrimSpace(in.Title),
		Content:     in.Content,
		Excerpt:     in.Excerpt,
		Image:       in.Image,
		PublishedAt: publishedAt,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return id, nil
}

func (u *NewsUsecase) Update(ctx context.Context, id int64, in NewsInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Title) == "" {
		return NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return NewHTTPError(http.StatusBadRequest, "content is required")
	}

	publishedAt := time.Now()
	if in.PublishedAt != nil {
		publishedAt = *in.PublishedAt
	}

	err := u.newsRepo.Update(ctx, model.News{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Content:     in.Content,
		Excerpt:     in.Excerpt,
		Image:       in.Image,
		PublishedAt: publishedAt,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "news not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *NewsUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.newsRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "news not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// MarkdownをHTMLに変換してサニタイズする。変換に失敗したら素のまま返す
func renderNewsHTML(content string) string {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return htmlSanitizer.Sanitize(content)
	}
	return string(htmlSanitizer.SanitizeBytes(buf.Bytes()))
}

func toNewsOutput(n model.News) NewsOutput {
	return NewsOutput{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		ContentHTML: renderNewsHTML(n.Content),
		Excerpt:     n.Excerpt,
		Image:       n.Image,
		PublishedAt: n.PublishedAt,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}
