// internals/features/media/documents/model/document_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentModel struct {
	DocumentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:document_id" json:"document_id"`

	DocumentChurchID uuid.UUID `gorm:"type:uuid;not null;index;column:document_church_id" json:"document_church_id"`

	DocumentTitle    string  `gorm:"size:150;not null;column:document_title" json:"document_title"`
	DocumentCategory *string `gorm:"size:80;column:document_category" json:"document_category,omitempty"`

	DocumentFileURL   string `gorm:"type:text;not null;column:document_file_url" json:"document_file_url"`
	DocumentObjectKey string `gorm:"type:text;not null;column:document_object_key" json:"-"`
	DocumentMimeType  string `gorm:"size:120;column:document_mime_type" json:"document_mime_type"`
	DocumentSizeBytes int64  `gorm:"column:document_size_bytes" json:"document_size_bytes"`

	DocumentUploadedBy *uuid.UUID `gorm:"type:uuid;column:document_uploaded_by" json:"document_uploaded_by,omitempty"`

	DocumentCreatedAt time.Time      `gorm:"column:document_created_at;autoCreateTime" json:"document_created_at"`
	DocumentUpdatedAt *time.Time     `gorm:"column:document_updated_at;autoUpdateTime" json:"document_updated_at,omitempty"`
	DocumentDeletedAt gorm.DeletedAt `gorm:"column:document_deleted_at;index" json:"document_deleted_at,omitempty"`
}

func (DocumentModel) TableName() string { return "documents" }
