// domain/models/file_upload.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// FileUpload records metadata of a file pushed to the external storage
// provider, keyed by the provider path so it can be deleted later.
type FileUpload struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	FileName    string    `json:"file_name" gorm:"type:varchar(255)"`
	FileFormat  string    `json:"file_format" gorm:"type:varchar(30)"`
	FileType    string    `json:"file_type" gorm:"type:varchar(20);not null"`
	Bytes       int       `json:"bytes" gorm:"default:0"`
	RelativeURL string    `json:"url" gorm:"type:text"`
	StoragePath string    `json:"-" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
}

func (FileUpload) TableName() string {
	return "file_uploads"
}
