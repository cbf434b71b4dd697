package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// localStorage keeps blobs as plain files in a single directory.
type localStorage struct {
	root string
}

// NewLocal returns a Storage writing under root. The directory is created lazily on first Put.
func NewLocal(root string) Storage {
	return &localStorage{root: root}
}

func (l *localStorage) Locate(name string) string {
	return filepath.Join(l.root, name)
}

// Put writes to a temp file next to the target and renames it into place,
// so readers never observe a partially written blob.
func (l *localStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}
	dir := filepath.Dir(key)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return ObjectInfo{}, fmt.Errorf("create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, r)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("write blob: %w", err)
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return ObjectInfo{}, fmt.Errorf("chmod blob: %w", err)
	}
	if err := os.Rename(tmp.Name(), key); err != nil {
		return ObjectInfo{}, fmt.Errorf("rename blob: %w", err)
	}

	st, err := os.Stat(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{
		Key:          key,
		Size:         n,
		ContentType:  opt.ContentType,
		LastModified: st.ModTime(),
		Metadata:     opt.Metadata,
	}, nil
}

func (l *localStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, ObjectInfo{}, err
	}
	f, err := os.Open(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ObjectInfo{}, ErrObjectNotFound
		}
		return nil, ObjectInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}
	if st.IsDir() {
		f.Close()
		return nil, ObjectInfo{}, ErrObjectNotFound
	}
	return f, ObjectInfo{Key: key, Size: st.Size(), LastModified: st.ModTime()}, nil
}

func (l *localStorage) Delete(ctx context.Context, key string) error {
	if err := os.Remove(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
