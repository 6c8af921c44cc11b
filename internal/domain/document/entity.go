package document

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("document not found")

type Document struct {
	ID               string    `bson:"id"`
	UserID           string    `bson:"user_id"`
	Filename         string    `bson:"filename"`
	OriginalFilename string    `bson:"original_filename"`
	FileType         string    `bson:"file_type"`
	FileSize         int64     `bson:"file_size"`
	FileURL          string    `bson:"file_url"`
	UploadedAt       time.Time `bson:"uploaded_at"`
}
