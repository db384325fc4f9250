package perms

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

type mockPermChanger struct{ mock.Mock }

func (m *mockPermChanger) ApplyPermissionDelta(ctx context.Context, docID string, requester *models.User, delta models.PermissionDelta) error {
	args := m.Called(ctx, docID, requester, delta)
	return args.Error(0)
}

func requestWithUser(method, target string, body []byte, user *models.User) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(context.WithValue(req.Context(), models.UserContextKey, user))
}

func TestPost_Success(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u1"}
	body := []byte(`{"add":[{"login":"colleague1","role":"editor"}],"remove":["intern01"]}`)

	req := requestWithUser(http.MethodPost, "/api/docs/d1/permissions", body, user)
	ctx := req.Context()
	w := httptest.NewRecorder()

	delta := models.PermissionDelta{
		Add:    []models.Grant{{Login: "colleague1", Role: models.RoleEditor}},
		Remove: []string{"intern01"},
	}

	changer := new(mockPermChanger)
	changer.On("ApplyPermissionDelta", ctx, "d1", user, delta).Return(nil)

	Post(ctx, slog.Default(), w, req, "d1", changer)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed map[string]map[string]bool
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.True(t, parsed["data"]["d1"])

	changer.AssertExpectations(t)
}

func TestPost_Fail_OwnerImmutable(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u1"}
	body := []byte(`{"remove":["owner01"]}`)

	req := requestWithUser(http.MethodPost, "/api/docs/d1/permissions", body, user)
	ctx := req.Context()
	w := httptest.NewRecorder()

	changer := new(mockPermChanger)
	changer.On("ApplyPermissionDelta", ctx, "d1", user, mock.Anything).Return(models.ErrOwnerImmutable)

	Post(ctx, slog.Default(), w, req, "d1", changer)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	changer.AssertExpectations(t)
}

func TestPost_Fail_InvalidRole(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u1"}
	body := []byte(`{"add":[{"login":"colleague1","role":"superadmin"}]}`)

	req := requestWithUser(http.MethodPost, "/api/docs/d1/permissions", body, user)
	ctx := req.Context()
	w := httptest.NewRecorder()

	changer := new(mockPermChanger)
	changer.On("ApplyPermissionDelta", ctx, "d1", user, mock.Anything).Return(models.ErrInvalidRole)

	Post(ctx, slog.Default(), w, req, "d1", changer)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	changer.AssertExpectations(t)
}

func TestPost_Fail_NotOwner(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u2"}
	body := []byte(`{"add":[{"login":"colleague1","role":"viewer"}]}`)

	req := requestWithUser(http.MethodPost, "/api/docs/d1/permissions", body, user)
	ctx := req.Context()
	w := httptest.NewRecorder()

	changer := new(mockPermChanger)
	changer.On("ApplyPermissionDelta", ctx, "d1", user, mock.Anything).Return(models.ErrForbidden)

	Post(ctx, slog.Default(), w, req, "d1", changer)

	assert.Equal(t, http.StatusForbidden, w.Result().StatusCode)
	changer.AssertExpectations(t)
}

func TestPost_Fail_GranteeNotFound(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u1"}
	body := []byte(`{"add":[{"login":"nobody99","role":"viewer"}]}`)

	req := requestWithUser(http.MethodPost, "/api/docs/d1/permissions", body, user)
	ctx := req.Context()
	w := httptest.NewRecorder()

	changer := new(mockPermChanger)
	changer.On("ApplyPermissionDelta", ctx, "d1", user, mock.Anything).Return(models.ErrUserNotFound)

	Post(ctx, slog.Default(), w, req, "d1", changer)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
	changer.AssertExpectations(t)
}
