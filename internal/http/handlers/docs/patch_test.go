package docs

import (
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

type mockDocUpdater struct{ mock.Mock }

func (m *mockDocUpdater) RenameDocument(ctx context.Context, docID string, requester *models.User, title *string, isPublic *bool) error {
	args := m.Called(ctx, docID, requester, title, isPublic)
	return args.Error(0)
}

func TestPatch_Success_Rename(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u1"}
	body := []byte(`{"title":"Roadmap Q4"}`)

	req := requestWithUser(http.MethodPatch, "/api/docs/doc42", body, user)
	ctx := req.Context()
	w := httptest.NewRecorder()

	title := "Roadmap Q4"
	updater := new(mockDocUpdater)
	updater.On("RenameDocument", ctx, "doc42", user, &title, (*bool)(nil)).Return(nil)

	Patch(ctx, slog.Default(), w, req, "doc42", updater)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed map[string]map[string]bool
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.True(t, parsed["data"]["doc42"])

	updater.AssertExpectations(t)
}

func TestPatch_Success_Visibility(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u1"}
	body := []byte(`{"public":true}`)

	req := requestWithUser(http.MethodPatch, "/api/docs/doc42", body, user)
	ctx := req.Context()
	w := httptest.NewRecorder()

	public := true
	updater := new(mockDocUpdater)
	updater.On("RenameDocument", ctx, "doc42", user, (*string)(nil), &public).Return(nil)

	Patch(ctx, slog.Default(), w, req, "doc42", updater)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	updater.AssertExpectations(t)
}

func TestPatch_Fail_EmptyPatch(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u1"}
	req := requestWithUser(http.MethodPatch, "/api/docs/doc42", []byte(`{}`), user)
	ctx := req.Context()
	w := httptest.NewRecorder()

	updater := new(mockDocUpdater)
	updater.On("RenameDocument", ctx, "doc42", user, (*string)(nil), (*bool)(nil)).Return(models.ErrInvalidParams)

	Patch(ctx, slog.Default(), w, req, "doc42", updater)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	updater.AssertExpectations(t)
}

func TestPatch_Fail_NotFound(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u1"}
	req := requestWithUser(http.MethodPatch, "/api/docs/missing", []byte(`{"title":"x1"}`), user)
	ctx := req.Context()
	w := httptest.NewRecorder()

	updater := new(mockDocUpdater)
	updater.On("RenameDocument", ctx, "missing", user, mock.Anything, mock.Anything).Return(models.ErrDocumentNotFound)

	Patch(ctx, slog.Default(), w, req, "missing", updater)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
	updater.AssertExpectations(t)
}

func TestPatch_Fail_Forbidden(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u2"}
	req := requestWithUser(http.MethodPatch, "/api/docs/doc42", []byte(`{"title":"x1"}`), user)
	ctx := req.Context()
	w := httptest.NewRecorder()

	updater := new(mockDocUpdater)
	updater.On("RenameDocument", ctx, "doc42", user, mock.Anything, mock.Anything).Return(models.ErrForbidden)

	Patch(ctx, slog.Default(), w, req, "doc42", updater)

	assert.Equal(t, http.StatusForbidden, w.Result().StatusCode)
	updater.AssertExpectations(t)
}
