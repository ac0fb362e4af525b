package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LiteratureDocument struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Text      string            `gorm:"type:text;not null"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb"` // title, author, subject, uploaded_at
	CreatedAt time.Time         `gorm:"autoCreateTime"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt    `gorm:"index"`
}

func (LiteratureDocument) TableName() string {
	return "literature_documents"
}
