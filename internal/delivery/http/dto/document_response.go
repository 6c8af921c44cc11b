package dto

import (
	"time"

	"cablib/internal/domain/document"
)

type DocumentResponse struct {
	ID               string    `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	FileType         string    `json:"file_type"`
	FileSize         int64     `json:"file_size"`
	FileURL          string    `json:"file_url"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

func FromDocument(d document.Document) DocumentResponse {
	return DocumentResponse{
		ID:               d.ID,
		Filename:         d.Filename,
		OriginalFilename: d.OriginalFilename,
		FileType:         d.FileType,
		FileSize:         d.FileSize,
		FileURL:          d.FileURL,
		UploadedAt:       d.UploadedAt,
	}
}

func FromDocuments(ds []document.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDocument(d))
	}
	return out
}
