package types

import (
	"time"

	"gorm.io/gorm"
)

// Level is a progression tier students can reach. MinXP and Description are
// unique so the ladder stays well defined.
type Level struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	MinXP       int            `gorm:"column:min_xp;not null;unique" json:"min_xp"`
	Description string         `gorm:"column:description;not null;unique" json:"description"`
	Cosmetic    string         `gorm:"column:cosmetic;type:text" json:"cosmetic,omitempty"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Level) TableName() string { return "level" }

// LevelUpdate is the allow-list of mutable Level fields.
type LevelUpdate struct {
	MinXP       *int    `json:"min_xp,omitempty"`
	Description *string `json:"description,omitempty"`
	Cosmetic    *string `json:"cosmetic,omitempty"`
}
