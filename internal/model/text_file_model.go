package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TextFile struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FileName  string         `gorm:"type:varchar(255);not null;index"`
	Path      string         `gorm:"type:text;not null"`
	SizeBytes int64          `gorm:"not null;default:0"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (TextFile) TableName() string {
	return "text_files"
}
