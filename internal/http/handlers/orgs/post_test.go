package orgs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"dochub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockOrgCreator struct{ mock.Mock }

func (m *mockOrgCreator) CreateOrg(ctx context.Context, requester *models.User, name string, slug string) (*models.Organization, error) {
	args := m.Called(ctx, requester, name, slug)
	return args.Get(0).(*models.Organization), args.Error(1)
}

func requestWithUser(method, target string, body []byte, user *models.User) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(context.WithValue(req.Context(), models.UserContextKey, user))
}

func TestAdd_Success(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u1"}
	body := []byte(`{"name":"Acme Corp","slug":"acme"}`)

	req := requestWithUser(http.MethodPost, "/api/orgs", body, user)
	ctx := req.Context()
	w := httptest.NewRecorder()

	org := &models.Organization{ID: "o1", OwnerID: "u1", Name: "Acme Corp", Slug: "acme"}

	creator := new(mockOrgCreator)
	creator.On("CreateOrg", ctx, user, "Acme Corp", "acme").Return(org, nil)

	Add(ctx, slog.Default(), w, req, creator)

	resp := w.Result()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var parsed struct {
		Data struct {
			ID      string `json:"id"`
			OwnerID string `json:"owner_id"`
			Slug    string `json:"slug"`
		} `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "o1", parsed.Data.ID)
	assert.Equal(t, "u1", parsed.Data.OwnerID)
	assert.Equal(t, "acme", parsed.Data.Slug)

	creator.AssertExpectations(t)
}

func TestAdd_Fail_SlugTaken(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u1"}
	body := []byte(`{"name":"Acme Corp","slug":"acme"}`)

	req := requestWithUser(http.MethodPost, "/api/orgs", body, user)
	ctx := req.Context()
	w := httptest.NewRecorder()

	creator := new(mockOrgCreator)
	creator.On("CreateOrg", ctx, user, "Acme Corp", "acme").Return((*models.Organization)(nil), models.ErrOrgExists)

	Add(ctx, slog.Default(), w, req, creator)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
	creator.AssertExpectations(t)
}

func TestAdd_Fail_InvalidParams(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u1"}
	body := []byte(`{"name":"","slug":"!!"}`)

	req := requestWithUser(http.MethodPost, "/api/orgs", body, user)
	ctx := req.Context()
	w := httptest.NewRecorder()

	creator := new(mockOrgCreator)
	creator.On("CreateOrg", ctx, user, "", "!!").Return((*models.Organization)(nil), models.ErrInvalidParams)

	Add(ctx, slog.Default(), w, req, creator)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	creator.AssertExpectations(t)
}

func TestAdd_Fail_NoUser(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/orgs", bytes.NewReader([]byte(`{}`)))
	ctx := req.Context()
	w := httptest.NewRecorder()

	Add(ctx, slog.Default(), w, req, new(mockOrgCreator))

	assert.Equal(t, http.StatusForbidden, w.Result().StatusCode)
}
