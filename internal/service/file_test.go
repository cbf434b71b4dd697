package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"filesmanager/internal/model"
	"filesmanager/internal/queue"
	queueMocks "filesmanager/internal/queue/mocks"
	"filesmanager/internal/repository"
	repoMocks "filesmanager/internal/repository/mocks"
	"filesmanager/internal/session"
	sessionMocks "filesmanager/internal/session/mocks"
	"filesmanager/internal/storage"
	storeMocks "filesmanager/internal/storage/mocks"
)

const (
	token    = "tok-1"
	userID   = "user-1"
	otherID  = "user-2"
	folderID = "2b1e4d1a-0c5e-4f6a-9a55-1f0f3c1d8a01"
	fileID   = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

type fileDeps struct {
	sessions   *sessionMocks.MockStore
	users      *repoMocks.MockUserRepository
	files      *repoMocks.MockFileRepository
	store      *storeMocks.MockStorage
	dispatcher *queueMocks.MockDispatcher
}

func newFileDeps() *fileDeps {
	return &fileDeps{
		sessions:   new(sessionMocks.MockStore),
		users:      new(repoMocks.MockUserRepository),
		files:      new(repoMocks.MockFileRepository),
		store:      new(storeMocks.MockStorage),
		dispatcher: new(queueMocks.MockDispatcher),
	}
}

func (d *fileDeps) service() FileService {
	return NewFileService(d.files, d.store, NewAuthorizer(d.sessions, d.users), d.dispatcher, nil, 0)
}

func (d *fileDeps) loggedIn(token, id string) {
	d.sessions.On("Get", mock.Anything, token).Return(id, nil)
	d.users.On("FindByID", mock.Anything, id).Return(&model.User{ID: id}, nil)
}

func (d *fileDeps) assertExpectations(t *testing.T) {
	d.sessions.AssertExpectations(t)
	d.users.AssertExpectations(t)
	d.files.AssertExpectations(t)
	d.store.AssertExpectations(t)
	d.dispatcher.AssertExpectations(t)
}

func echoFile(_ context.Context, f *model.File) *model.File {
	out := *f
	return &out
}

func TestFileService_Create(t *testing.T) {
	ctx := context.Background()
	hello := base64.StdEncoding.EncodeToString([]byte("hello"))

	tests := []struct {
		name       string
		in         CreateFileInput
		setupMocks func(d *fileDeps)
		wantErr    error
		wantErrMsg string
		check      func(t *testing.T, d *fileDeps, f *model.File)
	}{
		{
			name: "folder at root",
			in:   CreateFileInput{Name: "docs", Type: model.FileTypeFolder},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
				d.files.On("Create", mock.Anything, mock.MatchedBy(func(f *model.File) bool {
					return f.UserID == userID && f.ParentID.IsRoot() && f.LocalPath == "" && f.ID != ""
				})).Return(func(ctx context.Context, f *model.File) *model.File { return echoFile(ctx, f) }, nil)
			},
			check: func(t *testing.T, _ *fileDeps, f *model.File) {
				assert.Equal(t, "docs", f.Name)
				assert.Empty(t, f.LocalPath)
				assert.True(t, f.ParentID.IsRoot())
			},
		},
		{
			name: "file inside folder",
			in:   CreateFileInput{Name: "a.txt", Type: model.FileTypeFile, ParentID: model.ParentOf(folderID), Data: hello},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
				d.files.On("FindByID", mock.Anything, folderID).
					Return(&model.File{ID: folderID, UserID: userID, Type: model.FileTypeFolder}, nil)
				d.store.On("Locate", mock.AnythingOfType("string")).Return("/tmp/files_manager/blob")
				d.store.On("Put", mock.Anything, "/tmp/files_manager/blob", mock.MatchedBy(func(r *bytes.Reader) bool {
					return r.Len() == 5
				}), storage.PutObjectOptions{Size: 5, ContentType: mimeTypeOf("a.txt")}).
					Return(storage.ObjectInfo{Key: "/tmp/files_manager/blob", Size: 5}, nil)
				d.files.On("Create", mock.Anything, mock.MatchedBy(func(f *model.File) bool {
					return f.LocalPath == "/tmp/files_manager/blob" && f.ParentID.ID() == folderID
				})).Return(func(ctx context.Context, f *model.File) *model.File { return echoFile(ctx, f) }, nil)
			},
			check: func(t *testing.T, _ *fileDeps, f *model.File) {
				assert.Equal(t, "/tmp/files_manager/blob", f.LocalPath)
				assert.Equal(t, folderID, f.ParentID.ID())
			},
		},
		{
			name: "parent owned by another user is accepted",
			in:   CreateFileInput{Name: "shared", Type: model.FileTypeFolder, ParentID: model.ParentOf(folderID)},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
				d.files.On("FindByID", mock.Anything, folderID).
					Return(&model.File{ID: folderID, UserID: otherID, Type: model.FileTypeFolder}, nil)
				d.files.On("Create", mock.Anything, mock.Anything).
					Return(func(ctx context.Context, f *model.File) *model.File { return echoFile(ctx, f) }, nil)
			},
		},
		{
			name: "image dispatches one thumbnail job",
			in:   CreateFileInput{Name: "p.png", Type: model.FileTypeImage, IsPublic: true, Data: hello},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
				d.store.On("Locate", mock.AnythingOfType("string")).Return("/tmp/files_manager/img")
				d.store.On("Put", mock.Anything, "/tmp/files_manager/img", mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{Key: "/tmp/files_manager/img"}, nil)
				d.files.On("Create", mock.Anything, mock.Anything).
					Return(func(ctx context.Context, f *model.File) *model.File { return echoFile(ctx, f) }, nil)
				d.dispatcher.On("Dispatch", mock.MatchedBy(func(j queue.ThumbnailJob) bool {
					return j.UserID == userID && j.FileID != ""
				})).Return(true).Once()
			},
			check: func(t *testing.T, d *fileDeps, f *model.File) {
				assert.True(t, f.IsPublic)
				d.dispatcher.AssertCalled(t, "Dispatch", queue.ThumbnailJob{UserID: userID, FileID: f.ID})
			},
		},
		{
			name: "dropped thumbnail job does not fail upload",
			in:   CreateFileInput{Name: "p.png", Type: model.FileTypeImage, Data: hello},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
				d.store.On("Locate", mock.AnythingOfType("string")).Return("/tmp/files_manager/img")
				d.store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
				d.files.On("Create", mock.Anything, mock.Anything).
					Return(func(ctx context.Context, f *model.File) *model.File { return echoFile(ctx, f) }, nil)
				d.dispatcher.On("Dispatch", mock.Anything).Return(false)
			},
		},
		{
			name: "unauthorized",
			in:   CreateFileInput{Name: "docs", Type: model.FileTypeFolder},
			setupMocks: func(d *fileDeps) {
				d.sessions.On("Get", mock.Anything, token).Return("", session.ErrNotFound)
			},
			wantErr: ErrUnauthorized,
		},
		{
			name: "missing name",
			in:   CreateFileInput{Type: model.FileTypeFolder},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
			},
			wantErr: ErrMissingName,
		},
		{
			name: "missing name reported before missing type",
			in:   CreateFileInput{},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
			},
			wantErr: ErrMissingName,
		},
		{
			name: "missing type",
			in:   CreateFileInput{Name: "x"},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
			},
			wantErr: ErrMissingType,
		},
		{
			name: "unknown type",
			in:   CreateFileInput{Name: "x", Type: "video", Data: hello},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
			},
			wantErr: ErrMissingType,
		},
		{
			name: "missing data",
			in:   CreateFileInput{Name: "x", Type: model.FileTypeFile},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
			},
			wantErr: ErrMissingData,
		},
		{
			name: "parent not found",
			in:   CreateFileInput{Name: "x", Type: model.FileTypeFile, ParentID: model.ParentOf(folderID), Data: hello},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
				d.files.On("FindByID", mock.Anything, folderID).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrParentNotFound,
		},
		{
			name: "malformed parent id",
			in:   CreateFileInput{Name: "x", Type: model.FileTypeFolder, ParentID: model.ParentOf("nope")},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
			},
			wantErr: ErrParentNotFound,
		},
		{
			name: "parent is not a folder",
			in:   CreateFileInput{Name: "x", Type: model.FileTypeFile, ParentID: model.ParentOf(fileID), Data: hello},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
				d.files.On("FindByID", mock.Anything, fileID).
					Return(&model.File{ID: fileID, Type: model.FileTypeFile}, nil)
			},
			wantErr: ErrParentNotAFolder,
		},
		{
			name: "invalid base64",
			in:   CreateFileInput{Name: "x", Type: model.FileTypeFile, Data: "***"},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
			},
			wantErr: ErrInvalidData,
		},
		{
			name: "storage error",
			in:   CreateFileInput{Name: "x", Type: model.FileTypeFile, Data: hello},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
				d.store.On("Locate", mock.Anything).Return("/tmp/files_manager/blob")
				d.store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("disk full"))
			},
			wantErrMsg: "upload to storage: disk full",
		},
		{
			name: "repository error with successful rollback",
			in:   CreateFileInput{Name: "x", Type: model.FileTypeImage, Data: hello},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
				d.store.On("Locate", mock.Anything).Return("/tmp/files_manager/blob")
				d.store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
				d.files.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db fail"))
				d.store.On("Delete", mock.Anything, "/tmp/files_manager/blob").Return(nil)
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name: "repository error with failed rollback",
			in:   CreateFileInput{Name: "x", Type: model.FileTypeFile, Data: hello},
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
				d.store.On("Locate", mock.Anything).Return("/tmp/files_manager/blob")
				d.store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
				d.files.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db fail"))
				d.store.On("Delete", mock.Anything, "/tmp/files_manager/blob").Return(errors.New("delete fail"))
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newFileDeps()
			tt.setupMocks(d)

			f, err := d.service().Create(ctx, token, tt.in)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, f)
			case tt.wantErrMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			default:
				require.NoError(t, err)
				require.NotNil(t, f)
				assert.Equal(t, userID, f.UserID)
				if tt.check != nil {
					tt.check(t, d, f)
				}
			}
			d.assertExpectations(t)
			if tt.wantErr != nil {
				d.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				d.files.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestFileService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("owner sees file", func(t *testing.T) {
		d := newFileDeps()
		d.loggedIn(token, userID)
		d.files.On("FindByID", mock.Anything, fileID).Return(&model.File{ID: fileID, UserID: userID}, nil)

		f, err := d.service().Get(ctx, token, fileID)
		require.NoError(t, err)
		assert.Equal(t, fileID, f.ID)
		d.assertExpectations(t)
	})

	t.Run("other user gets not found", func(t *testing.T) {
		d := newFileDeps()
		d.loggedIn(token, otherID)
		d.files.On("FindByID", mock.Anything, fileID).
			Return(&model.File{ID: fileID, UserID: userID, IsPublic: true}, nil)

		_, err := d.service().Get(ctx, token, fileID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing file", func(t *testing.T) {
		d := newFileDeps()
		d.loggedIn(token, userID)
		d.files.On("FindByID", mock.Anything, fileID).Return(nil, sql.ErrNoRows)

		_, err := d.service().Get(ctx, token, fileID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		d := newFileDeps()
		d.loggedIn(token, userID)

		_, err := d.service().Get(ctx, token, "abc")
		assert.ErrorIs(t, err, ErrNotFound)
		d.files.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("no token", func(t *testing.T) {
		d := newFileDeps()

		_, err := d.service().Get(ctx, "", fileID)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("backend failure surfaces", func(t *testing.T) {
		d := newFileDeps()
		d.sessions.On("Get", mock.Anything, token).Return("", errors.New("badger closed"))

		_, err := d.service().Get(ctx, token, fileID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnauthorized)
	})
}

func TestFileService_List(t *testing.T) {
	ctx := context.Background()
	page := []model.File{{ID: fileID, UserID: userID}}

	tests := []struct {
		name     string
		parentID string
		page     int
		wantCall bool
		parent   model.ParentRef
		pq       repository.PageQuery
	}{
		{name: "root first page", parentID: "0", page: 0, wantCall: true, parent: model.Root(), pq: repository.PageQuery{Limit: 20, Offset: 0}},
		{name: "empty parent is root", parentID: "", page: 2, wantCall: true, parent: model.Root(), pq: repository.PageQuery{Limit: 20, Offset: 40}},
		{name: "folder", parentID: folderID, page: 1, wantCall: true, parent: model.ParentOf(folderID), pq: repository.PageQuery{Limit: 20, Offset: 20}},
		{name: "negative page clamps", parentID: "0", page: -3, wantCall: true, parent: model.Root(), pq: repository.PageQuery{Limit: 20, Offset: 0}},
		{name: "malformed parent gives empty list", parentID: "zzz", page: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newFileDeps()
			d.loggedIn(token, userID)
			if tt.wantCall {
				d.files.On("ListByParent", mock.Anything, userID, tt.parent, tt.pq).Return(page, nil)
			}

			got, err := d.service().List(ctx, token, tt.parentID, tt.page)
			require.NoError(t, err)
			if tt.wantCall {
				assert.Equal(t, page, got)
			} else {
				assert.NotNil(t, got)
				assert.Empty(t, got)
			}
			d.assertExpectations(t)
		})
	}

	t.Run("unauthorized", func(t *testing.T) {
		d := newFileDeps()
		d.sessions.On("Get", mock.Anything, "bad").Return("", session.ErrNotFound)

		_, err := d.service().List(ctx, "bad", "0", 0)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestFileService_PublishUnpublish(t *testing.T) {
	ctx := context.Background()

	t.Run("publish then unpublish", func(t *testing.T) {
		d := newFileDeps()
		d.loggedIn(token, userID)
		d.files.On("SetPublic", mock.Anything, fileID, userID, true).
			Return(&model.File{ID: fileID, UserID: userID, IsPublic: true}, nil)
		d.files.On("SetPublic", mock.Anything, fileID, userID, false).
			Return(&model.File{ID: fileID, UserID: userID, IsPublic: false}, nil).Twice()

		svc := d.service()
		f, err := svc.Publish(ctx, token, fileID)
		require.NoError(t, err)
		assert.True(t, f.IsPublic)

		f, err = svc.Unpublish(ctx, token, fileID)
		require.NoError(t, err)
		assert.False(t, f.IsPublic)

		f, err = svc.Unpublish(ctx, token, fileID)
		require.NoError(t, err)
		assert.False(t, f.IsPublic)
		d.assertExpectations(t)
	})

	t.Run("not owner is not found", func(t *testing.T) {
		d := newFileDeps()
		d.loggedIn(token, otherID)
		d.files.On("SetPublic", mock.Anything, fileID, otherID, true).Return(nil, sql.ErrNoRows)

		_, err := d.service().Publish(ctx, token, fileID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		d := newFileDeps()
		d.loggedIn(token, userID)

		_, err := d.service().Unpublish(ctx, token, "not-an-id")
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("unauthorized before id check", func(t *testing.T) {
		d := newFileDeps()

		_, err := d.service().Publish(ctx, "", "not-an-id")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func blob(s string) io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(s)))
}

func TestFileService_Content(t *testing.T) {
	ctx := context.Background()
	private := &model.File{ID: fileID, UserID: userID, Name: "a.txt", Type: model.FileTypeFile, LocalPath: "/tmp/files_manager/blob"}
	public := &model.File{ID: fileID, UserID: userID, Name: "p.png", Type: model.FileTypeImage, IsPublic: true, LocalPath: "/tmp/files_manager/img"}
	folder := &model.File{ID: fileID, UserID: userID, Name: "docs", Type: model.FileTypeFolder}

	tests := []struct {
		name       string
		token      string
		id         string
		size       string
		setupMocks func(d *fileDeps)
		wantErr    error
		wantData   string
		wantMime   string
	}{
		{
			name:  "owner reads private file",
			token: token, id: fileID,
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, userID)
				d.files.On("FindByID", mock.Anything, fileID).Return(private, nil)
				d.store.On("Get", mock.Anything, "/tmp/files_manager/blob").Return(blob("hello"), storage.ObjectInfo{}, nil)
			},
			wantData: "hello",
			wantMime: mimeTypeOf("a.txt"),
		},
		{
			name: "anonymous reads public image thumbnail",
			id:   fileID, size: "100",
			setupMocks: func(d *fileDeps) {
				d.files.On("FindByID", mock.Anything, fileID).Return(public, nil)
				d.store.On("Get", mock.Anything, "/tmp/files_manager/img_100").Return(blob("thumb"), storage.ObjectInfo{}, nil)
			},
			wantData: "thumb",
			wantMime: "image/png",
		},
		{
			name: "unsupported size serves original",
			id:   fileID, size: "42",
			setupMocks: func(d *fileDeps) {
				d.files.On("FindByID", mock.Anything, fileID).Return(public, nil)
				d.store.On("Get", mock.Anything, "/tmp/files_manager/img").Return(blob("orig"), storage.ObjectInfo{}, nil)
			},
			wantData: "orig",
			wantMime: "image/png",
		},
		{
			name: "thumbnail not generated yet",
			id:   fileID, size: "500",
			setupMocks: func(d *fileDeps) {
				d.files.On("FindByID", mock.Anything, fileID).Return(public, nil)
				d.store.On("Get", mock.Anything, "/tmp/files_manager/img_500").Return(nil, storage.ObjectInfo{}, storage.ErrObjectNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "anonymous on private file",
			id:   fileID,
			setupMocks: func(d *fileDeps) {
				d.files.On("FindByID", mock.Anything, fileID).Return(private, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name:  "other user on private file",
			token: token, id: fileID,
			setupMocks: func(d *fileDeps) {
				d.loggedIn(token, otherID)
				d.files.On("FindByID", mock.Anything, fileID).Return(private, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name:  "expired token on private file",
			token: "old", id: fileID,
			setupMocks: func(d *fileDeps) {
				d.sessions.On("Get", mock.Anything, "old").Return("", session.ErrNotFound)
				d.files.On("FindByID", mock.Anything, fileID).Return(private, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "folder has no content",
			id:   fileID,
			setupMocks: func(d *fileDeps) {
				d.files.On("FindByID", mock.Anything, fileID).Return(folder, nil)
			},
			wantErr: ErrFolderHasNoContent,
		},
		{
			name:       "malformed id",
			id:         "123",
			setupMocks: func(d *fileDeps) {},
			wantErr:    ErrInvalidID,
		},
		{
			name: "missing record",
			id:   fileID,
			setupMocks: func(d *fileDeps) {
				d.files.On("FindByID", mock.Anything, fileID).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "storage read error degrades to not found",
			id:   fileID,
			setupMocks: func(d *fileDeps) {
				d.files.On("FindByID", mock.Anything, fileID).Return(public, nil)
				d.store.On("Get", mock.Anything, "/tmp/files_manager/img").Return(nil, storage.ObjectInfo{}, errors.New("i/o error"))
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newFileDeps()
			tt.setupMocks(d)

			got, err := d.service().Content(ctx, tt.token, tt.id, tt.size)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantData, string(got.Data))
				assert.Equal(t, tt.wantMime, got.MimeType)
			}
			d.assertExpectations(t)
		})
	}
}

func TestDecodeData(t *testing.T) {
	raw, err := decodeData("aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))

	raw, err = decodeData("aGVsbG8")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))

	_, err = decodeData("%%%")
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestMimeTypeOf(t *testing.T) {
	assert.Equal(t, "image/png", mimeTypeOf("x.png"))
	assert.Equal(t, defaultMimeType, mimeTypeOf("noext"))
	assert.Equal(t, defaultMimeType, mimeTypeOf("x.unknownext"))
}

func TestFileService_CreateJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("token is checked before the body is parsed", func(t *testing.T) {
		d := newFileDeps()
		_, err := d.service().CreateJSON(ctx, "", []byte(`{not json`))
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"malformed body", `{not json`, ErrInvalidBody},
		{"wrong field type", `{"name":"x","isPublic":"yes"}`, ErrInvalidBody},
		{"numeric type", `{"name":"x","type":123}`, ErrMissingType},
		{"unknown type", `{"name":"x","type":"link"}`, ErrMissingType},
		{"empty body", ``, ErrMissingName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newFileDeps()
			d.loggedIn(token, userID)

			_, err := d.service().CreateJSON(ctx, token, []byte(tt.body))
			assert.ErrorIs(t, err, tt.wantErr)
			d.files.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("folder from JSON", func(t *testing.T) {
		d := newFileDeps()
		d.loggedIn(token, userID)
		d.files.On("Create", mock.Anything, mock.MatchedBy(func(f *model.File) bool {
			return f.Name == "docs" && f.IsPublic && f.ParentID.IsRoot()
		})).Return(func(ctx context.Context, f *model.File) *model.File { return echoFile(ctx, f) }, nil)

		f, err := d.service().CreateJSON(ctx, token, []byte(`{"name":"docs","type":"folder","parentId":"0","isPublic":true}`))
		require.NoError(t, err)
		assert.Equal(t, model.FileTypeFolder, f.Type)
		d.assertExpectations(t)
	})
}
