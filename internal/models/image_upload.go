package models

import "time"

type ImageUpload struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	BucketName string `gorm:"size:50;not null" json:"bucket_name"`
	FilePath   string `gorm:"size:255;uniqueIndex;not null" json:"file_path"`
	FileName   string `gorm:"size:255;not null" json:"file_name"`
	FileSize   int64  `json:"file_size"`
	MimeType   string `gorm:"size:50" json:"mime_type"`

	UploadedBy  string `gorm:"type:uuid" json:"uploaded_by"`
	Category    string `gorm:"size:20" json:"category"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
