package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"cablib/internal/domain/document"
	"cablib/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

const maxDocumentSize = 10 << 20 // 10 MiB

var allowedDocumentExts = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

type DocumentInput struct {
	OriginalFilename string
	FileSize         int64
}

type DocumentUsecase interface {
	Register(ctx context.Context, userID string, in DocumentInput) (document.Document, error)
	List(ctx context.Context, userID string) ([]document.Document, error)
	Delete(ctx context.Context, id, userID string) error
}

type Documents struct {
	documents repository.DocumentRepository
	baseURL   string
}

func NewDocumentUsecase(documents repository.DocumentRepository, baseURL string) *Documents {
	return &Documents{documents: documents, baseURL: strings.TrimRight(baseURL, "/")}
}

// Register records an uploaded file under a collision-free stored name.
func (u *Documents) Register(ctx context.Context, userID string, in DocumentInput) (document.Document, error) {
	if in.OriginalFilename == "" {
		return document.Document{}, ErrInvalidInput
	}
	if in.FileSize <= 0 || in.FileSize > maxDocumentSize {
		return document.Document{}, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(in.OriginalFilename))
	fileType, ok := allowedDocumentExts[ext]
	if !ok {
		return document.Document{}, ErrUnsupportedFileType
	}

	id := uuid.NewString()
	stored := id + ext
	d := document.Document{
		ID:               id,
		UserID:           userID,
		Filename:         stored,
		OriginalFilename: filepath.Base(in.OriginalFilename),
		FileType:         fileType,
		FileSize:         in.FileSize,
		FileURL:          fmt.Sprintf("%s/uploads/%s", u.baseURL, stored),
		UploadedAt:       time.Now().UTC(),
	}
	if err := u.documents.Create(ctx, d); err != nil {
		return document.Document{}, ErrInternal
	}
	return d, nil
}

func (u *Documents) List(ctx context.Context, userID string) ([]document.Document, error) {
	out, err := u.documents.FindByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Documents) Delete(ctx context.Context, id, userID string) error {
	if err := u.documents.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return ErrDocumentNotFound
		}
		return ErrInternal
	}
	return nil
}
