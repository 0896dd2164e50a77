package types

import (
	"time"

	"gorm.io/gorm"
)

// Exercise is a catalog entry: a reusable exercise template, not a concrete
// exercise inside an exam. The generation pipeline resolves model-declared
// type names against this catalog by case-insensitive name match.
type Exercise struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Name               string         `gorm:"column:name;not null;unique" json:"name"`
	ContentDescription string         `gorm:"column:content_description;type:text;not null" json:"content_description"`
	CreatedAt          time.Time      `gorm:"not null" json:"created_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Exercise) TableName() string { return "exercise" }

// ExerciseUpdate is the allow-list of mutable Exercise fields.
type ExerciseUpdate struct {
	Name               *string `json:"name,omitempty"`
	ContentDescription *string `json:"content_description,omitempty"`
}
