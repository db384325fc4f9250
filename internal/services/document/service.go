package documentservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dochub/internal/models"
	"dochub/internal/validator"

	uuid "github.com/satori/go.uuid"
)

const pkg = "documentService/"

type DocumentService struct {
	log          *slog.Logger
	docRepo      DocumentRepository
	cache        SnapshotCache
	userProvider UserProvider
	broadcaster  UpdateBroadcaster
}

func New(
	log *slog.Logger,
	docRepo DocumentRepository,
	cache SnapshotCache,
	userProvider UserProvider,
	broadcaster UpdateBroadcaster,
) *DocumentService {
	return &DocumentService{
		log:          log,
		docRepo:      docRepo,
		cache:        cache,
		userProvider: userProvider,
		broadcaster:  broadcaster,
	}
}

func (ds *DocumentService) CreateDocument(ctx context.Context, requester *models.User, workspaceID string, title string, isPublic bool) (*models.Document, error) {
	op := pkg + "CreateDocument"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to create document", slog.String("workspace_id", workspaceID))

	if !validator.IsValidName(title) {
		log.Warn("invalid document title")
		return nil, models.ErrInvalidParams
	}

	now := time.Now()

	doc := &models.Document{
		ID:          uuid.NewV4().String(),
		WorkspaceID: workspaceID,
		OwnerID:     requester.ID,
		Title:       title,
		IsPublic:    isPublic,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := ds.docRepo.CreateDocument(ctx, doc, ""); err != nil {
		log.Error("failed to create document", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("document created successfully", slog.String("doc_id", doc.ID))

	return doc, nil
}

func (ds *DocumentService) DocumentByID(ctx context.Context, docID string, requester *models.User) (*models.Document, error) {
	op := pkg + "DocumentByID"

	log := ds.log.With(slog.String("op", op))

	doc, perms, err := ds.documentWithPermissions(ctx, docID, log)
	if err != nil {
		return nil, err
	}

	if !hasReadAccess(doc, perms, requester.ID) {
		log.Warn("user doesn't have read access", slog.String("doc_id", docID), slog.String("user_id", requester.ID))
		return nil, models.ErrForbidden
	}

	return doc, nil
}

func (ds *DocumentService) ListByWorkspace(ctx context.Context, workspaceID string, requester *models.User, filter models.DocumentFilter) ([]*models.Document, error) {
	op := pkg + "ListByWorkspace"

	log := ds.log.With(slog.String("op", op))

	if !filter.IsValid() {
		log.Warn("invalid filter format")
		return nil, models.ErrInvalidParams
	}

	docs, err := ds.docRepo.ListByWorkspace(ctx, workspaceID, requester.ID, filter)
	if err != nil {
		log.Error("failed to list documents", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return docs, nil
}

// RenameDocument changes the title and, optionally, visibility. Requires
// edit access.
func (ds *DocumentService) RenameDocument(ctx context.Context, docID string, requester *models.User, title *string, isPublic *bool) error {
	op := pkg + "RenameDocument"

	log := ds.log.With(slog.String("op", op))

	if title == nil && isPublic == nil {
		log.Warn("empty document patch")
		return models.ErrInvalidParams
	}

	if title != nil && !validator.IsValidName(*title) {
		log.Warn("invalid document title")
		return models.ErrInvalidParams
	}

	doc, perms, err := ds.documentWithPermissions(ctx, docID, log)
	if err != nil {
		return err
	}

	if !hasEditAccess(doc, perms, requester.ID) {
		log.Warn("user doesn't have edit access", slog.String("doc_id", docID), slog.String("user_id", requester.ID))
		return models.ErrForbidden
	}

	if err := ds.docRepo.UpdateDocument(ctx, docID, title, isPublic); err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			return models.ErrDocumentNotFound
		}
		log.Error("failed to update document", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	if err := ds.cache.Del(ctx, docID); err != nil {
		log.Error("failed to invalidate snapshot cache", slog.String("error", err.Error()))
	}

	log.Debug("document updated successfully", slog.String("doc_id", docID))

	return nil
}

func (ds *DocumentService) DeleteDocument(ctx context.Context, docID string, requester *models.User) error {
	op := pkg + "DeleteDocument"

	log := ds.log.With(slog.String("op", op))

	doc, err := ds.docRepo.DocumentByID(ctx, docID)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.String("doc_id", docID))
			return models.ErrDocumentNotFound
		}
		log.Error("failed to get document", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	if doc.OwnerID != requester.ID {
		log.Warn("user is not the document owner", slog.String("doc_id", docID), slog.String("user_id", requester.ID))
		return models.ErrForbidden
	}

	if err := ds.docRepo.Delete(ctx, docID); err != nil {
		log.Error("failed to delete document", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	if err := ds.cache.Del(ctx, docID); err != nil {
		log.Error("failed to invalidate snapshot cache", slog.String("error", err.Error()))
	}

	log.Debug("document deleted successfully", slog.String("doc_id", docID))

	return nil
}

// Snapshot returns the versioned content of a document, cache-aside.
func (ds *DocumentService) Snapshot(ctx context.Context, docID string, requester *models.User) (*models.DocSnapshot, error) {
	op := pkg + "Snapshot"

	log := ds.log.With(slog.String("op", op))

	doc, perms, err := ds.documentWithPermissions(ctx, docID, log)
	if err != nil {
		return nil, err
	}

	if !hasReadAccess(doc, perms, requester.ID) {
		log.Warn("user doesn't have read access", slog.String("doc_id", docID), slog.String("user_id", requester.ID))
		return nil, models.ErrForbidden
	}

	snapJSON, err := ds.cache.Get(ctx, docID)
	if err == nil && snapJSON != "" {
		snap, err := jsonToSnapshot(snapJSON)
		if err == nil {
			return snap, nil
		}
		log.Error("failed to parse cached snapshot", slog.String("error", err.Error()))
	}

	snap, err := ds.docRepo.SnapshotByDocID(ctx, docID)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			return nil, models.ErrDocumentNotFound
		}
		log.Error("failed to get snapshot", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if snapJSON, err := snapshotToJSON(snap); err != nil {
		log.Error("failed to marshal snapshot", slog.String("error", err.Error()))
	} else if err := ds.cache.Set(ctx, docID, snapJSON); err != nil {
		log.Warn("failed to cache snapshot", slog.String("error", err.Error()))
	}

	return snap, nil
}

// Apply transforms the document content with the given ops if it is still at
// baseVersion, returning the new version. A stale baseVersion yields
// ErrVersionConflict.
func (ds *DocumentService) Apply(ctx context.Context, docID string, requester *models.User, baseVersion int64, ops []models.Op) (int64, error) {
	op := pkg + "Apply"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to apply ops", slog.String("doc_id", docID), slog.Int("op_count", len(ops)))

	if len(ops) == 0 {
		log.Warn("empty op list")
		return 0, models.ErrInvalidOps
	}

	doc, perms, err := ds.documentWithPermissions(ctx, docID, log)
	if err != nil {
		return 0, err
	}

	if !hasEditAccess(doc, perms, requester.ID) {
		log.Warn("user doesn't have edit access", slog.String("doc_id", docID), slog.String("user_id", requester.ID))
		return 0, models.ErrForbidden
	}

	snap, err := ds.docRepo.SnapshotByDocID(ctx, docID)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			return 0, models.ErrDocumentNotFound
		}
		log.Error("failed to get snapshot", slog.String("error", err.Error()))
		return 0, models.ErrInternal
	}

	if snap.Version != baseVersion {
		log.Warn("stale base version",
			slog.Int64("base_version", baseVersion),
			slog.Int64("current_version", snap.Version))
		return 0, models.ErrVersionConflict
	}

	content, err := applyOps(snap.Content, ops)
	if err != nil {
		log.Warn("invalid ops", slog.String("error", err.Error()))
		return 0, models.ErrInvalidOps
	}

	version, err := ds.docRepo.SaveSnapshot(ctx, docID, baseVersion, content)
	if err != nil {
		if errors.Is(err, models.ErrVersionConflict) {
			log.Warn("concurrent write detected", slog.String("doc_id", docID))
			return 0, models.ErrVersionConflict
		}
		log.Error("failed to save snapshot", slog.String("error", err.Error()))
		return 0, models.ErrInternal
	}

	if err := ds.cache.Del(ctx, docID); err != nil {
		log.Error("failed to invalidate snapshot cache", slog.String("error", err.Error()))
	}

	if ds.broadcaster != nil {
		ds.broadcaster.BroadcastUpdate(models.DocUpdate{
			DocID:   docID,
			Version: version,
			Ops:     ops,
			ActorID: requester.ID,
		})
	}

	log.Debug("ops applied successfully", slog.String("doc_id", docID), slog.Int64("version", version))

	return version, nil
}

func (ds *DocumentService) Permissions(ctx context.Context, docID string, requester *models.User) ([]models.Permission, error) {
	op := pkg + "Permissions"

	log := ds.log.With(slog.String("op", op))

	doc, perms, err := ds.documentWithPermissions(ctx, docID, log)
	if err != nil {
		return nil, err
	}

	if !hasReadAccess(doc, perms, requester.ID) {
		log.Warn("user doesn't have read access", slog.String("doc_id", docID), slog.String("user_id", requester.ID))
		return nil, models.ErrForbidden
	}

	return perms, nil
}

// ApplyPermissionDelta grants and revokes roles in one batch. Only the
// document owner may change permissions, and the owner's own access cannot
// be granted away or revoked.
func (ds *DocumentService) ApplyPermissionDelta(ctx context.Context, docID string, requester *models.User, delta models.PermissionDelta) error {
	op := pkg + "ApplyPermissionDelta"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to apply permission delta", slog.String("doc_id", docID))

	if delta.IsEmpty() {
		log.Warn("empty permission delta")
		return models.ErrInvalidParams
	}

	doc, err := ds.docRepo.DocumentByID(ctx, docID)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.String("doc_id", docID))
			return models.ErrDocumentNotFound
		}
		log.Error("failed to get document", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	if doc.OwnerID != requester.ID {
		log.Warn("user is not the document owner", slog.String("doc_id", docID), slog.String("user_id", requester.ID))
		return models.ErrForbidden
	}

	add := make([]models.Permission, 0, len(delta.Add))

	for _, grant := range delta.Add {
		if !grant.Role.IsValid() {
			log.Warn("invalid role", slog.String("role", string(grant.Role)))
			return models.ErrInvalidRole
		}

		user, err := ds.userProvider.UserByLogin(ctx, grant.Login)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				log.Warn("grantee not found", slog.String("login", grant.Login))
				return models.ErrUserNotFound
			}
			log.Error("failed to resolve grantee", slog.String("error", err.Error()))
			return models.ErrInternal
		}

		if user.ID == doc.OwnerID {
			log.Warn("attempt to change owner permission", slog.String("login", grant.Login))
			return models.ErrOwnerImmutable
		}

		add = append(add, models.Permission{
			UserID: user.ID,
			Login:  user.Login,
			Role:   grant.Role,
		})
	}

	removeIDs := make([]string, 0, len(delta.Remove))

	for _, login := range delta.Remove {
		user, err := ds.userProvider.UserByLogin(ctx, login)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				log.Warn("revokee not found", slog.String("login", login))
				return models.ErrUserNotFound
			}
			log.Error("failed to resolve revokee", slog.String("error", err.Error()))
			return models.ErrInternal
		}

		if user.ID == doc.OwnerID {
			log.Warn("attempt to revoke owner permission", slog.String("login", login))
			return models.ErrOwnerImmutable
		}

		removeIDs = append(removeIDs, user.ID)
	}

	if err := ds.docRepo.ApplyPermissionDelta(ctx, docID, add, removeIDs); err != nil {
		log.Error("failed to apply permission delta", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	log.Debug("permission delta applied successfully", slog.String("doc_id", docID))

	return nil
}

func (ds *DocumentService) documentWithPermissions(ctx context.Context, docID string, log *slog.Logger) (*models.Document, []models.Permission, error) {
	doc, err := ds.docRepo.DocumentByID(ctx, docID)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.String("doc_id", docID))
			return nil, nil, models.ErrDocumentNotFound
		}
		log.Error("failed to get document", slog.String("error", err.Error()))
		return nil, nil, models.ErrInternal
	}

	perms, err := ds.docRepo.PermissionsByDocID(ctx, docID)
	if err != nil {
		log.Error("failed to get permissions", slog.String("error", err.Error()))
		return nil, nil, models.ErrInternal
	}

	return doc, perms, nil
}

// applyOps splices ops into content. Ops walk a cursor left to right;
// anything past the last op is kept as-is.
func applyOps(content string, ops []models.Op) (string, error) {
	src := []rune(content)
	out := make([]rune, 0, len(src))
	cursor := 0

	for _, op := range ops {
		if !op.IsValid() {
			return "", models.ErrInvalidOps
		}

		switch {
		case op.Retain > 0:
			if cursor+op.Retain > len(src) {
				return "", models.ErrInvalidOps
			}
			out = append(out, src[cursor:cursor+op.Retain]...)
			cursor += op.Retain
		case op.Insert != "":
			out = append(out, []rune(op.Insert)...)
		case op.Delete > 0:
			if cursor+op.Delete > len(src) {
				return "", models.ErrInvalidOps
			}
			cursor += op.Delete
		}
	}

	out = append(out, src[cursor:]...)

	return string(out), nil
}

func roleFor(perms []models.Permission, userID string) (models.Role, bool) {
	for _, p := range perms {
		if p.UserID == userID {
			return p.Role, true
		}
	}
	return "", false
}

func hasReadAccess(doc *models.Document, perms []models.Permission, userID string) bool {
	if doc.IsPublic || doc.OwnerID == userID {
		return true
	}
	_, ok := roleFor(perms, userID)
	return ok
}

func hasEditAccess(doc *models.Document, perms []models.Permission, userID string) bool {
	if doc.OwnerID == userID {
		return true
	}
	role, ok := roleFor(perms, userID)
	return ok && role.CanEdit()
}

func snapshotToJSON(snap *models.DocSnapshot) (string, error) {
	res, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}

	return string(res), nil
}

func jsonToSnapshot(s string) (*models.DocSnapshot, error) {
	if len(s) == 0 {
		return nil, errors.New("empty json string")
	}

	var snap models.DocSnapshot
	if err := json.Unmarshal([]byte(s), &snap); err != nil {
		return nil, err
	}

	return &snap, nil
}
