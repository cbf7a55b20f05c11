package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactRepoFake struct {
	created []model.Contact
	deleted []int64
}

func (f *contactRepoFake) Create(ctx context.Context, c model.Contact) (int64, error) {
	f.created = append(f.created, c)
	return int64(len(f.created)), nil
}

func (f *contactRepoFake) List(ctx context.Context) ([]model.Contact, error) {
	return f.created, nil
}

func (f *contactRepoFake) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newContactServer(repoFake *contactRepoFake) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	uc := usecase.NewContactUsecase(repoFake)
	handler.NewContactHandler(uc).RegisterRoutes(e, config.Config{JWTSecret: "s", AdminEmail: "a@b"})
	return e
}

func TestCreateContactEndpoint(t *testing.T) {
	repoFake := &contactRepoFake{}
	e := newContactServer(repoFake)

	rec := postJSON(e, "/contacts", `{
		"name": "Иван",
		"phone": "+7 900 123-45-67",
		"artwork_title": "Закат над городом"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repoFake.created, 1)

	c := repoFake.created[0]
	assert.Equal(t, "Иван", c.Name)
	assert.Nil(t, c.Message)
	require.NotNil(t, c.ArtworkTitle)
	assert.Equal(t, "Закат над городом", *c.ArtworkTitle)
}

func TestCreateContactEndpoint_SanitizesHTML(t *testing.T) {
	repoFake := &contactRepoFake{}
	e := newContactServer(repoFake)

	rec := postJSON(e, "/contacts", `{
		"name": "<b>Иван</b>",
		"phone": "+7 900 123-45-67"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repoFake.created, 1)
	assert.Equal(t, "Иван", repoFake.created[0].Name)
}

func TestCreateContactEndpoint_MissingPhone(t *testing.T) {
	repoFake := &contactRepoFake{}
	e := newContactServer(repoFake)

	rec := postJSON(e, "/contacts", `{"name": "Иван"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name and phone are required")
	assert.Empty(t, repoFake.created)
}

func TestContactAdminRoutesRequireToken(t *testing.T) {
	e := newContactServer(&contactRepoFake{})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/contacts", nil),
		httptest.NewRequest(http.MethodDelete, "/contacts/1", nil),
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}
