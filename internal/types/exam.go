package types

import (
	"time"

	"gorm.io/gorm"
)

// Exam lifecycle. GENERATING exists only inside the generation transaction;
// a failed run rolls the row back, so it is never observable as a terminal
// state. The transition to GENERATED happens during human review, outside
// the generation pipeline.
const (
	ExamStatusGenerating    = "GENERATING"
	ExamStatusPendingReview = "Pending Review"
	ExamStatusGenerated     = "GENERATED"
)

// Exam is the aggregate root for one generation run. It owns its
// ExamExerciseInstance rows (cascade delete). RequestedExercises records the
// catalog entries named in the generation request, which can differ from the
// types the model actually returned.
type Exam struct {
	ID                 uint                   `gorm:"primaryKey" json:"id"`
	Status             string                 `gorm:"column:status;not null;index" json:"status"`
	Notes              *string                `gorm:"column:notes;type:text" json:"notes,omitempty"`
	ClassID            uint                   `gorm:"column:class_id;not null;index" json:"class_id"`
	Class              *Class                 `gorm:"constraint:OnDelete:CASCADE;foreignKey:ClassID;references:ID" json:"class,omitempty"`
	Context            string                 `gorm:"column:context;type:text;not null" json:"context"`
	GeneratedSnapshot  *string                `gorm:"column:generated_snapshot;type:text" json:"generated_snapshot,omitempty"`
	RequestedExercises []*Exercise            `gorm:"many2many:exam_exercise" json:"requested_exercises,omitempty"`
	GeneratedExercises []ExamExerciseInstance `gorm:"constraint:OnDelete:CASCADE;foreignKey:ExamID;references:ID" json:"generated_exercises,omitempty"`
	CreatedAt          time.Time              `gorm:"not null" json:"created_at"`
	DeletedAt          gorm.DeletedAt         `gorm:"index" json:"deleted_at,omitempty"`
}

func (Exam) TableName() string { return "exam" }

// ExamUpdate is the allow-list of mutable Exam fields. Status is how a
// reviewed exam moves from Pending Review to GENERATED; everything else about
// an exam is written by the generation pipeline only.
type ExamUpdate struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}
