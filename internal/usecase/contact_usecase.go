package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ContactUsecase struct {
	contactRepo repo.ContactRepository
}

// DI
func NewContactUsecase(contactRepo repo.ContactRepository) *ContactUsecase {
	return &ContactUsecase{contactRepo: contactRepo}
}

type CreateContactInput struct {
	Name         string
	Phone        string
	Message      string
	ArtworkTitle string
}

type ContactOutput struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Message      *string   `json:"message"`
	ArtworkTitle *string   `json:"artwork_title"`
	CreatedAt    time.Time `json:"created_at"`
}

// 任意項目は空ならNULLで保存する
func (u *ContactUsecase) Create(ctx context.Context, in CreateContactInput) (int64, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "name and phone are required")
	}

	c := model.Contact{
		Name:         name,
		Phone:        phone,
		Message:      optional(in.Message),
		ArtworkTitle: optional(in.ArtworkTitle),
	}

	id, err := u.contactRepo.Create(ctx, c)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return id, nil
}

func (u *ContactUsecase) List(ctx context.Context) ([]ContactOutput, error) {
	items, err := u.contactRepo.List(ctx)
	if err != nil {
		return []ContactOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]ContactOutput, 0, len(items))
	for _, c := range items {
		outs = append(outs, ContactOutput{
			ID:           c.ID,
			Name:         c.Name,
			Phone:        c.Phone,
			Message:      c.Message,
			ArtworkTitle: c.ArtworkTitle,
			CreatedAt:    c.CreatedAt,
		})
	}
	return outs, nil
}

// 削除は冪等（存在しないidでも成功扱い）
func (u *ContactUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.contactRepo.Delete(ctx, id); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
