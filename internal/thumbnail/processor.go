// Package thumbnail renders the fixed-width variants of uploaded images.
package thumbnail

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"filesmanager/internal/model"
	"filesmanager/internal/queue"
	"filesmanager/internal/repository"
	"filesmanager/internal/storage"
)

// Jobs failing with an error wrapping ErrInvalidJob are not retried.
var (
	ErrInvalidJob    = errors.New("invalid thumbnail job")
	ErrMissingFileID = fmt.Errorf("%w: missing fileId", ErrInvalidJob)
	ErrMissingUserID = fmt.Errorf("%w: missing userId", ErrInvalidJob)
	ErrFileNotFound  = fmt.Errorf("%w: file not found", ErrInvalidJob)
	ErrImageTooLarge = fmt.Errorf("%w: image too large", ErrInvalidJob)
)

// maxPixels caps width*height of an original. Decoding allocates the full bitmap,
// so larger images are refused from their header alone.
const maxPixels = 40_000_000

// Processor renders every size in queue.ThumbnailSizes for one image and stores
// each variant next to the original under queue.VariantKey.
type Processor struct {
	files repository.FileRepository
	store storage.Storage
}

func NewProcessor(files repository.FileRepository, store storage.Storage) *Processor {
	return &Processor{files: files, store: store}
}

func (p *Processor) Process(ctx context.Context, job queue.ThumbnailJob) error {
	if job.FileID == "" {
		return ErrMissingFileID
	}
	if job.UserID == "" {
		return ErrMissingUserID
	}

	f, err := p.files.FindByIDForOwner(ctx, job.FileID, job.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrFileNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup file: %w", err)
	}
	if f.Type != model.FileTypeImage || f.LocalPath == "" {
		return ErrFileNotFound
	}

	rc, _, err := p.store.Get(ctx, f.LocalPath)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return ErrFileNotFound
	}
	if err != nil {
		return fmt.Errorf("read original: %w", err)
	}
	raw, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return fmt.Errorf("read original: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: decode image: %v", ErrInvalidJob, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}
	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: decode image: %v", ErrInvalidJob, err)
	}

	for _, width := range queue.ThumbnailSizes {
		var buf bytes.Buffer
		if err := encode(&buf, Resize(src, width), format); err != nil {
			return fmt.Errorf("encode %d: %w", width, err)
		}
		_, err := p.store.Put(ctx, queue.VariantKey(f.LocalPath, width), &buf, storage.PutObjectOptions{
			Size:        int64(buf.Len()),
			ContentType: contentType(format),
		})
		if err != nil {
			return fmt.Errorf("store %d: %w", width, err)
		}
	}
	return nil
}

// Resize scales src to the given width keeping its aspect ratio.
func Resize(src image.Image, width int) image.Image {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return image.NewRGBA(image.Rect(0, 0, width, 1))
	}
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// encode writes img in its source format. Formats without an encoder fall back to PNG.
func encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 85})
	case "gif":
		return gif.Encode(w, img, nil)
	default:
		return png.Encode(w, img)
	}
}

func contentType(format string) string {
	switch format {
	case "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
