package types

import (
	"time"

	"gorm.io/gorm"
)

// Class is a course cohort. SuggestedLevel is the target proficiency label
// used to steer generation; ClassCode scopes vector retrieval to the course.
type Class struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	ClassCode      string         `gorm:"column:class_code;size:16;not null;unique" json:"class_code"`
	Description    string         `gorm:"column:description;not null;unique" json:"description"`
	SuggestedLevel string         `gorm:"column:suggested_level;not null" json:"suggested_level"`
	MaxCapacity    int            `gorm:"column:max_capacity;not null" json:"max_capacity"`
	Exams          []Exam         `gorm:"foreignKey:ClassID;references:ID" json:"exams,omitempty"`
	CreatedAt      time.Time      `gorm:"not null" json:"created_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Class) TableName() string { return "class" }

// ClassUpdate is the allow-list of mutable Class fields. Nil means unchanged.
type ClassUpdate struct {
	Description    *string `json:"description,omitempty"`
	SuggestedLevel *string `json:"suggested_level,omitempty"`
	MaxCapacity    *int    `json:"max_capacity,omitempty"`
}
