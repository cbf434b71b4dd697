// Package queue carries thumbnail jobs from the upload path to the worker.
package queue

import (
	"context"
	"strconv"
)

// ThumbnailJob asks the worker to render the size variants of one image.
type ThumbnailJob struct {
	UserID string `json:"userId"`
	FileID string `json:"fileId"`
}

// ThumbnailSizes are the widths rendered for every image, largest first.
var ThumbnailSizes = []int{500, 250, 100}

// IsThumbnailSize reports whether size is one of ThumbnailSizes.
func IsThumbnailSize(size int) bool {
	for _, s := range ThumbnailSizes {
		if s == size {
			return true
		}
	}
	return false
}

// VariantKey is the blob location of a size variant: "<localPath>_<size>".
func VariantKey(localPath string, size int) string {
	return localPath + "_" + strconv.Itoa(size)
}

// Enqueuer persists a job so a worker can pick it up later.
type Enqueuer interface {
	Enqueue(ctx context.Context, job ThumbnailJob) error
}

// ClaimedJob is a job leased by a worker.
type ClaimedJob struct {
	ID       int64
	Attempts int
	ThumbnailJob
}

// Consumer is the worker side of the queue.
type Consumer interface {
	Claim(ctx context.Context) (*ClaimedJob, error)
	Complete(ctx context.Context, id int64) error
	Fail(ctx context.Context, id int64, cause error, maxAttempts int) error
}
