package service

import (
	"context"
	"io"
)

type UploadResult struct {
	URL        string
	ObjectName string
	Size       int64
}

// FileUploadService is the blob-storage side of the gateway: store bytes
// under a generated name, hand back a public reference.
type FileUploadService interface {
	UploadFile(ctx context.Context, file io.Reader, contentType, filename, folder string) (*UploadResult, error)
	DeleteFile(ctx context.Context, objectName string) error
}
