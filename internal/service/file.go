package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"filesmanager/internal/metrics"
	"filesmanager/internal/model"
	"filesmanager/internal/queue"
	"filesmanager/internal/repository"
	"filesmanager/internal/storage"
)

// PageSize is the fixed number of entries returned by List.
const PageSize = 20

const defaultMimeType = "application/octet-stream"

// CreateFileInput is the body of a file creation request. Data is the base64
// encoded content and is required for everything but folders.
type CreateFileInput struct {
	Name     string          `json:"name" validate:"required"`
	Type     model.FileType  `json:"type" validate:"required,oneof=folder file image"`
	ParentID model.ParentRef `json:"parentId"`
	IsPublic bool            `json:"isPublic"`
	Data     string          `json:"data" validate:"required_unless=Type folder"`
}

// FileContent is the blob behind a file together with its media type.
type FileContent struct {
	Data     []byte
	MimeType string
}

// Dispatcher schedules thumbnail jobs without blocking the caller.
type Dispatcher interface {
	Dispatch(job queue.ThumbnailJob) bool
}

// FileService defines the file use cases: upload, browsing, visibility and content.
type FileService interface {
	// Create validates in, stores the blob for non-folders, records the metadata and
	// schedules thumbnails for images. No write happens before validation passes;
	// the blob is removed again if the metadata insert fails.
	Create(ctx context.Context, token string, in CreateFileInput) (*model.File, error)

	// CreateJSON is Create for a raw JSON body. The token is checked before the body
	// is parsed; an unparsable body is ErrInvalidBody.
	CreateJSON(ctx context.Context, token string, body []byte) (*model.File, error)

	// Get returns the caller's file. Files of other users are reported as ErrNotFound.
	Get(ctx context.Context, token, id string) (*model.File, error)

	// List returns one page of the caller's files under parentID ("0" or "" for the root).
	List(ctx context.Context, token, parentID string, page int) ([]model.File, error)

	Publish(ctx context.Context, token, id string) (*model.File, error)
	Unpublish(ctx context.Context, token, id string) (*model.File, error)

	// Content returns the blob of a file, or of one of its thumbnail variants when
	// size names a supported width.
	Content(ctx context.Context, token, id, size string) (*FileContent, error)
}

type fileService struct {
	files      repository.FileRepository
	store      storage.Storage
	auth       *Authorizer
	dispatcher Dispatcher
	validate   *validator.Validate
	metrics    *metrics.Metrics
	timeout    time.Duration
}

// NewFileService constructs a FileService. timeout bounds every call against the
// session and metadata stores; zero disables it.
func NewFileService(
	files repository.FileRepository,
	store storage.Storage,
	auth *Authorizer,
	dispatcher Dispatcher,
	m *metrics.Metrics,
	timeout time.Duration,
) FileService {
	return &fileService{
		files:      files,
		store:      store,
		auth:       auth,
		dispatcher: dispatcher,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		metrics:    m,
		timeout:    timeout,
	}
}

func (s *fileService) Create(ctx context.Context, token string, in CreateFileInput) (*model.File, error) {
	ctx, cancel := bounded(ctx, s.timeout)
	defer cancel()

	userID, err := s.auth.ResolveUser(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, userID, in)
}

func (s *fileService) CreateJSON(ctx context.Context, token string, body []byte) (*model.File, error) {
	ctx, cancel := bounded(ctx, s.timeout)
	defer cancel()

	userID, err := s.auth.ResolveUser(ctx, token)
	if err != nil {
		return nil, err
	}
	var in CreateFileInput
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &in); err != nil {
			return nil, ErrInvalidBody
		}
	}
	return s.create(ctx, userID, in)
}

func (s *fileService) create(ctx context.Context, userID string, in CreateFileInput) (*model.File, error) {
	if err := s.validateCreate(in); err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, in.ParentID); err != nil {
		return nil, err
	}

	var raw []byte
	if in.Type.HasBlob() {
		var err error
		if raw, err = decodeData(in.Data); err != nil {
			return nil, err
		}
	}

	f := &model.File{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     in.Name,
		Type:     in.Type,
		IsPublic: in.IsPublic,
		ParentID: in.ParentID,
	}

	if f.IsFolder() {
		stored, err := s.files.Create(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("db save failed: %w", err)
		}
		s.metrics.FileCreated(string(stored.Type))
		return stored, nil
	}

	key := s.store.Locate(uuid.NewString())
	if _, err := s.store.Put(ctx, key, bytes.NewReader(raw), storage.PutObjectOptions{
		Size:        int64(len(raw)),
		ContentType: mimeTypeOf(in.Name),
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}
	f.LocalPath = key

	stored, err := s.files.Create(ctx, f)
	if err != nil {
		// Rollback: delete the blob
		if delErr := s.store.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	s.metrics.FileCreated(string(stored.Type))

	if stored.Type == model.FileTypeImage {
		s.dispatcher.Dispatch(queue.ThumbnailJob{UserID: userID, FileID: stored.ID})
	}
	return stored, nil
}

// validateCreate reports the first failing field in declaration order.
func (s *fileService) validateCreate(in CreateFileInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch verrs[0].StructField() {
	case "Name":
		return ErrMissingName
	case "Type":
		return ErrMissingType
	case "Data":
		return ErrMissingData
	}
	return err
}

// checkParent makes sure a non-root parent exists and is a folder. The parent's
// owner is not compared with the caller.
func (s *fileService) checkParent(ctx context.Context, parent model.ParentRef) error {
	if parent.IsRoot() {
		return nil
	}
	if _, err := uuid.Parse(parent.ID()); err != nil {
		return ErrParentNotFound
	}
	p, err := s.files.FindByID(ctx, parent.ID())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrParentNotFound
		}
		return err
	}
	if !p.IsFolder() {
		return ErrParentNotAFolder
	}
	return nil
}

func (s *fileService) Get(ctx context.Context, token, id string) (*model.File, error) {
	ctx, cancel := bounded(ctx, s.timeout)
	defer cancel()

	userID, err := s.auth.ResolveUser(ctx, token)
	if err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	f, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !Decide(AccessReadMetadata, userID, f).Allow {
		return nil, ErrNotFound
	}
	return f, nil
}

func (s *fileService) List(ctx context.Context, token, parentID string, page int) ([]model.File, error) {
	ctx, cancel := bounded(ctx, s.timeout)
	defer cancel()

	userID, err := s.auth.ResolveUser(ctx, token)
	if err != nil {
		return nil, err
	}

	parent := model.ParentOf(parentID)
	if !parent.IsRoot() {
		if _, err := uuid.Parse(parent.ID()); err != nil {
			return []model.File{}, nil
		}
	}
	if page < 0 {
		page = 0
	}

	return s.files.ListByParent(ctx, userID, parent, repository.PageQuery{
		Limit:  PageSize,
		Offset: page * PageSize,
	})
}

func (s *fileService) Publish(ctx context.Context, token, id string) (*model.File, error) {
	return s.setPublic(ctx, token, id, true)
}

func (s *fileService) Unpublish(ctx context.Context, token, id string) (*model.File, error) {
	return s.setPublic(ctx, token, id, false)
}

func (s *fileService) setPublic(ctx context.Context, token, id string, public bool) (*model.File, error) {
	ctx, cancel := bounded(ctx, s.timeout)
	defer cancel()

	userID, err := s.auth.ResolveUser(ctx, token)
	if err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	f, err := s.files.SetPublic(ctx, id, userID, public)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *fileService) Content(ctx context.Context, token, id, size string) (*FileContent, error) {
	ctx, cancel := bounded(ctx, s.timeout)
	defer cancel()

	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	f, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.IsFolder() {
		return nil, ErrFolderHasNoContent
	}

	d, err := s.auth.Authorize(ctx, token, f, AccessReadContent)
	if err != nil {
		return nil, err
	}
	if !d.Allow {
		return nil, ErrNotFound
	}

	key := f.LocalPath
	if n, err := strconv.Atoi(size); err == nil && queue.IsThumbnailSize(n) {
		key = queue.VariantKey(f.LocalPath, n)
	}

	rc, _, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, ErrNotFound
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, ErrNotFound
	}
	return &FileContent{Data: data, MimeType: mimeTypeOf(f.Name)}, nil
}

func (s *fileService) find(ctx context.Context, id string) (*model.File, error) {
	f, err := s.files.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// decodeData accepts padded and unpadded standard base64.
func decodeData(data string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err == nil {
		return raw, nil
	}
	raw, err = base64.RawStdEncoding.DecodeString(data)
	if err != nil {
		return nil, ErrInvalidData
	}
	return raw, nil
}

func mimeTypeOf(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return defaultMimeType
}

func bounded(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
