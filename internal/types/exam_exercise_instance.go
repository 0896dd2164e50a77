package types

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ExamExerciseInstance is one concrete exercise produced by a generation run.
// Content holds the ordered items handed to students (answers stripped) and
// AnswerKey the answers in the same order; index i of one corresponds to
// index i of the other. The parser guarantees that alignment at creation
// time and it is never re-validated afterwards.
type ExamExerciseInstance struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	ExamID         uint           `gorm:"column:exam_id;not null;index" json:"exam_id"`
	ExerciseTypeID uint           `gorm:"column:exercise_type_id;not null;index" json:"exercise_type_id"`
	ExerciseType   *Exercise      `gorm:"foreignKey:ExerciseTypeID;references:ID" json:"exercise_type,omitempty"`
	Instructions   string         `gorm:"column:instructions;type:text;not null" json:"instructions"`
	Content        datatypes.JSON `gorm:"column:content;type:jsonb;not null" json:"content"`
	AnswerKey      datatypes.JSON `gorm:"column:answer_key;type:jsonb;not null" json:"answer_key"`
	CreatedAt      time.Time      `gorm:"not null" json:"created_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ExamExerciseInstance) TableName() string { return "exam_exercise_instance" }
