package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FileType is the kind of entry stored in a user's file tree.
type FileType string

const (
	FileTypeFolder FileType = "folder"
	FileTypeFile   FileType = "file"
	FileTypeImage  FileType = "image"
)

// Valid reports whether t is one of the known file kinds.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeFolder, FileTypeFile, FileTypeImage:
		return true
	}
	return false
}

// UnmarshalJSON accepts any JSON value. Anything but a string decodes to the
// empty type, which validation reports as a missing type.
func (t *FileType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*t = ""
		return nil
	}
	*t = FileType(s)
	return nil
}

// HasBlob reports whether entries of this kind carry stored content.
func (t FileType) HasBlob() bool {
	return t == FileTypeFile || t == FileTypeImage
}

// File is a folder, file or image owned by a user.
// LocalPath is set only for kinds that carry a blob.
type File struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Type      FileType  `json:"type"`
	IsPublic  bool      `json:"isPublic"`
	ParentID  ParentRef `json:"parentId"`
	LocalPath string    `json:"localPath,omitempty"`
}

// IsFolder reports whether the entry is a folder.
func (f *File) IsFolder() bool {
	return f.Type == FileTypeFolder
}

// ParentRef points either at the owner's root or at a folder id.
// The zero value is the root. On the wire the root is encoded as 0.
type ParentRef struct {
	id string
}

// Root returns the reference to a user's root.
func Root() ParentRef {
	return ParentRef{}
}

// ParentOf returns a reference to the folder with the given id.
// An empty id or "0" yields the root.
func ParentOf(id string) ParentRef {
	if id == "0" {
		return ParentRef{}
	}
	return ParentRef{id: id}
}

// IsRoot reports whether the reference is the user's root.
func (p ParentRef) IsRoot() bool {
	return p.id == ""
}

// ID returns the referenced folder id, or "" for the root.
func (p ParentRef) ID() string {
	return p.id
}

func (p ParentRef) String() string {
	if p.IsRoot() {
		return "0"
	}
	return p.id
}

func (p ParentRef) MarshalJSON() ([]byte, error) {
	if p.IsRoot() {
		return []byte("0"), nil
	}
	return json.Marshal(p.id)
}

func (p *ParentRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = Root()
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = ParentOf(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("parentId: %w", err)
	}
	*p = ParentOf(n.String())
	return nil
}

// Value stores the root as NULL.
func (p ParentRef) Value() (driver.Value, error) {
	if p.IsRoot() {
		return nil, nil
	}
	return p.id, nil
}

func (p *ParentRef) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = Root()
	case string:
		*p = ParentOf(v)
	case []byte:
		*p = ParentOf(string(v))
	default:
		return fmt.Errorf("parentId: unsupported type %T", src)
	}
	return nil
}
