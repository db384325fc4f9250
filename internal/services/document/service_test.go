package documentservice

import (
	"context"
	"log/slog"
	"testing"

	"dochub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDocRepo struct {
	mock.Mock
}

func (m *mockDocRepo) CreateDocument(ctx context.Context, doc *models.Document, content string) error {
	args := m.Called(ctx, doc, content)
	return args.Error(0)
}

func (m *mockDocRepo) DocumentByID(ctx context.Context, id string) (*models.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *mockDocRepo) ListByWorkspace(ctx context.Context, workspaceID string, requesterID string, filter models.DocumentFilter) ([]*models.Document, error) {
	args := m.Called(ctx, workspaceID, requesterID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Document), args.Error(1)
}

func (m *mockDocRepo) UpdateDocument(ctx context.Context, id string, title *string, isPublic *bool) error {
	args := m.Called(ctx, id, title, isPublic)
	return args.Error(0)
}

func (m *mockDocRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockDocRepo) SnapshotByDocID(ctx context.Context, docID string) (*models.DocSnapshot, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DocSnapshot), args.Error(1)
}

func (m *mockDocRepo) SaveSnapshot(ctx context.Context, docID string, baseVersion int64, content string) (int64, error) {
	args := m.Called(ctx, docID, baseVersion, content)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDocRepo) PermissionsByDocID(ctx context.Context, docID string) ([]models.Permission, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Permission), args.Error(1)
}

func (m *mockDocRepo) ApplyPermissionDelta(ctx context.Context, docID string, add []models.Permission, removeUserIDs []string) error {
	args := m.Called(ctx, docID, add, removeUserIDs)
	return args.Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, docID string) (string, error) {
	args := m.Called(ctx, docID)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, docID string, value interface{}) error {
	args := m.Called(ctx, docID, value)
	return args.Error(0)
}

func (m *mockCache) Del(ctx context.Context, docIDs ...string) error {
	args := m.Called(ctx, docIDs)
	return args.Error(0)
}

type mockUserProvider struct {
	mock.Mock
}

func (m *mockUserProvider) UserByLogin(ctx context.Context, login string) (*models.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockBroadcaster struct {
	mock.Mock
}

func (m *mockBroadcaster) BroadcastUpdate(update models.DocUpdate) {
	m.Called(update)
}

func TestApplyOps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		ops     []models.Op
		want    string
		wantErr bool
	}{
		{
			name:    "insert into empty document",
			content: "",
			ops:     []models.Op{{Insert: "hello"}},
			want:    "hello",
		},
		{
			name:    "retain then insert keeps tail",
			content: "hello world",
			ops:     []models.Op{{Retain: 5}, {Insert: ","}},
			want:    "hello, world",
		},
		{
			name:    "delete in the middle",
			content: "hello cruel world",
			ops:     []models.Op{{Retain: 6}, {Delete: 6}},
			want:    "hello world",
		},
		{
			name:    "replace",
			content: "draft title",
			ops:     []models.Op{{Delete: 5}, {Insert: "final"}},
			want:    "final title",
		},
		{
			name:    "retain past end fails",
			content: "abc",
			ops:     []models.Op{{Retain: 4}},
			wantErr: true,
		},
		{
			name:    "delete past end fails",
			content: "abc",
			ops:     []models.Op{{Retain: 2}, {Delete: 2}},
			wantErr: true,
		},
		{
			name:    "ambiguous op fails",
			content: "abc",
			ops:     []models.Op{{Retain: 1, Delete: 1}},
			wantErr: true,
		},
		{
			name:    "multibyte runes",
			content: "héllo",
			ops:     []models.Op{{Retain: 2}, {Insert: "ç"}},
			want:    "héçllo",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := applyOps(tt.content, tt.ops)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidOps)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_Success_Broadcasts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := new(mockDocRepo)
	cache := new(mockCache)
	bc := new(mockBroadcaster)
	svc := New(slog.Default(), repo, cache, nil, bc)

	owner := &models.User{ID: "user1", Login: "firstuser"}
	doc := &models.Document{ID: "doc1", OwnerID: "user1", Version: 3}

	repo.On("DocumentByID", ctx, "doc1").Return(doc, nil)
	repo.On("PermissionsByDocID", ctx, "doc1").Return([]models.Permission{}, nil)
	repo.On("SnapshotByDocID", ctx, "doc1").
		Return(&models.DocSnapshot{DocID: "doc1", Version: 3, Content: "hello"}, nil)
	repo.On("SaveSnapshot", ctx, "doc1", int64(3), "hello world").Return(int64(4), nil)
	cache.On("Del", ctx, []string{"doc1"}).Return(nil)
	bc.On("BroadcastUpdate", mock.MatchedBy(func(u models.DocUpdate) bool {
		return u.DocID == "doc1" && u.Version == 4 && u.ActorID == "user1"
	})).Return()

	ops := []models.Op{{Retain: 5}, {Insert: " world"}}

	version, err := svc.Apply(ctx, "doc1", owner, 3, ops)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), version)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
	bc.AssertExpectations(t)
}

func TestApply_StaleBaseVersion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := new(mockDocRepo)
	svc := New(slog.Default(), repo, new(mockCache), nil, nil)

	owner := &models.User{ID: "user1"}
	doc := &models.Document{ID: "doc1", OwnerID: "user1", Version: 5}

	repo.On("DocumentByID", ctx, "doc1").Return(doc, nil)
	repo.On("PermissionsByDocID", ctx, "doc1").Return([]models.Permission{}, nil)
	repo.On("SnapshotByDocID", ctx, "doc1").
		Return(&models.DocSnapshot{DocID: "doc1", Version: 5, Content: "x"}, nil)

	_, err := svc.Apply(ctx, "doc1", owner, 4, []models.Op{{Insert: "y"}})
	assert.ErrorIs(t, err, models.ErrVersionConflict)

	repo.AssertExpectations(t)
}

func TestApply_ViewerForbidden(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := new(mockDocRepo)
	svc := New(slog.Default(), repo, new(mockCache), nil, nil)

	viewer := &models.User{ID: "user2", Login: "seconduser"}
	doc := &models.Document{ID: "doc1", OwnerID: "user1", Version: 1}
	perms := []models.Permission{{UserID: "user2", Login: "seconduser", Role: models.RoleViewer}}

	repo.On("DocumentByID", ctx, "doc1").Return(doc, nil)
	repo.On("PermissionsByDocID", ctx, "doc1").Return(perms, nil)

	_, err := svc.Apply(ctx, "doc1", viewer, 1, []models.Op{{Insert: "y"}})
	assert.ErrorIs(t, err, models.ErrForbidden)

	repo.AssertExpectations(t)
}

func TestSnapshot_CacheHit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := new(mockDocRepo)
	cache := new(mockCache)
	svc := New(slog.Default(), repo, cache, nil, nil)

	owner := &models.User{ID: "user1"}
	doc := &models.Document{ID: "doc1", OwnerID: "user1", Version: 2}

	repo.On("DocumentByID", ctx, "doc1").Return(doc, nil)
	repo.On("PermissionsByDocID", ctx, "doc1").Return([]models.Permission{}, nil)
	cache.On("Get", ctx, "doc1").
		Return(`{"doc_id":"doc1","version":2,"content":"cached"}`, nil)

	snap, err := svc.Snapshot(ctx, "doc1", owner)
	require.NoError(t, err)
	assert.Equal(t, "cached", snap.Content)
	assert.Equal(t, int64(2), snap.Version)

	repo.AssertNotCalled(t, "SnapshotByDocID", mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestSnapshot_CacheMiss_FillsCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := new(mockDocRepo)
	cache := new(mockCache)
	svc := New(slog.Default(), repo, cache, nil, nil)

	owner := &models.User{ID: "user1"}
	doc := &models.Document{ID: "doc1", OwnerID: "user1", Version: 2}
	snap := &models.DocSnapshot{DocID: "doc1", Version: 2, Content: "from db"}

	repo.On("DocumentByID", ctx, "doc1").Return(doc, nil)
	repo.On("PermissionsByDocID", ctx, "doc1").Return([]models.Permission{}, nil)
	cache.On("Get", ctx, "doc1").Return("", nil)
	repo.On("SnapshotByDocID", ctx, "doc1").Return(snap, nil)
	cache.On("Set", ctx, "doc1", mock.AnythingOfType("string")).Return(nil)

	got, err := svc.Snapshot(ctx, "doc1", owner)
	require.NoError(t, err)
	assert.Equal(t, "from db", got.Content)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestApplyPermissionDelta_OwnerImmutable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := new(mockDocRepo)
	up := new(mockUserProvider)
	svc := New(slog.Default(), repo, new(mockCache), up, nil)

	owner := &models.User{ID: "user1", Login: "firstuser"}
	doc := &models.Document{ID: "doc1", OwnerID: "user1"}

	repo.On("DocumentByID", ctx, "doc1").Return(doc, nil)
	up.On("UserByLogin", ctx, "firstuser").Return(owner, nil)

	delta := models.PermissionDelta{Remove: []string{"firstuser"}}

	err := svc.ApplyPermissionDelta(ctx, "doc1", owner, delta)
	assert.ErrorIs(t, err, models.ErrOwnerImmutable)

	repo.AssertNotCalled(t, "ApplyPermissionDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyPermissionDelta_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := new(mockDocRepo)
	up := new(mockUserProvider)
	svc := New(slog.Default(), repo, new(mockCache), up, nil)

	owner := &models.User{ID: "user1", Login: "firstuser"}
	grantee := &models.User{ID: "user2", Login: "seconduser"}
	doc := &models.Document{ID: "doc1", OwnerID: "user1"}

	repo.On("DocumentByID", ctx, "doc1").Return(doc, nil)
	up.On("UserByLogin", ctx, "seconduser").Return(grantee, nil)
	repo.On("ApplyPermissionDelta", ctx, "doc1",
		[]models.Permission{{UserID: "user2", Login: "seconduser", Role: models.RoleEditor}},
		[]string{}).Return(nil)

	delta := models.PermissionDelta{Add: []models.Grant{{Login: "seconduser", Role: models.RoleEditor}}}

	err := svc.ApplyPermissionDelta(ctx, "doc1", owner, delta)
	assert.NoError(t, err)

	repo.AssertExpectations(t)
	up.AssertExpectations(t)
}

func TestApplyPermissionDelta_NotOwner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := new(mockDocRepo)
	svc := New(slog.Default(), repo, new(mockCache), new(mockUserProvider), nil)

	editor := &models.User{ID: "user2"}
	doc := &models.Document{ID: "doc1", OwnerID: "user1"}

	repo.On("DocumentByID", ctx, "doc1").Return(doc, nil)

	delta := models.PermissionDelta{Add: []models.Grant{{Login: "thirduser", Role: models.RoleViewer}}}

	err := svc.ApplyPermissionDelta(ctx, "doc1", editor, delta)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestRenameDocument_InvalidatesCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := new(mockDocRepo)
	cache := new(mockCache)
	svc := New(slog.Default(), repo, cache, nil, nil)

	owner := &models.User{ID: "user1"}
	doc := &models.Document{ID: "doc1", OwnerID: "user1"}
	title := "renamed"

	repo.On("DocumentByID", ctx, "doc1").Return(doc, nil)
	repo.On("PermissionsByDocID", ctx, "doc1").Return([]models.Permission{}, nil)
	repo.On("UpdateDocument", ctx, "doc1", &title, (*bool)(nil)).Return(nil)
	cache.On("Del", ctx, []string{"doc1"}).Return(nil)

	err := svc.RenameDocument(ctx, "doc1", owner, &title, nil)
	assert.NoError(t, err)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}
