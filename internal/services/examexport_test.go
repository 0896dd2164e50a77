package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"testing"

	"gorm.io/gorm"

	"github.com/aulaflow/academy-backend/internal/repos"
	"github.com/aulaflow/academy-backend/internal/types"
)

func seedGeneratedExam(t *testing.T, db *gorm.DB, status string) *types.Exam {
	t.Helper()
	class, catalog := seedClassAndCatalog(t, db)

	exam := &types.Exam{
		Status:  status,
		ClassID: class.ID,
		Context: "Unit 5",
	}
	if err := db.Create(exam).Error; err != nil {
		t.Fatalf("seed exam: %v", err)
	}

	mustJSON := func(v any) []byte {
		t.Helper()
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return data
	}

	instances := []*types.ExamExerciseInstance{
		{
			ExamID:         exam.ID,
			ExerciseTypeID: catalog[0].ID,
			Instructions:   "Read the passage and answer",
			Content: mustJSON([]types.ContentItem{
				{Question: "Why did she leave?", Options: []string{"a) work", "b) school"}},
				{Question: "Where did she go?"},
			}),
			AnswerKey: mustJSON(types.AnswerKey{Answers: []string{"a) work", "London"}}),
		},
		{
			ExamID:         exam.ID,
			ExerciseTypeID: catalog[1].ID,
			Instructions:   "Fill each gap",
			Content: mustJSON([]types.ContentItem{
				{Question: "He ___ late"},
			}),
			AnswerKey: mustJSON(types.AnswerKey{Answers: []string{"arrived"}}),
		},
	}
	if err := db.Create(&instances).Error; err != nil {
		t.Fatalf("seed instances: %v", err)
	}
	return exam
}

func newExportService(t *testing.T, db *gorm.DB) ExamExportService {
	t.Helper()
	log := testLogger(t)
	return NewExamExportService(log, repos.NewExamRepo(db, log))
}

func TestExportExamNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newExportService(t, db)

	_, err := svc.ExportPDF(context.Background(), 123)
	apiErr := asAPIError(t, err)
	if apiErr.Status != http.StatusNotFound {
		t.Fatalf("status: want=404 got=%d", apiErr.Status)
	}
	if apiErr.Error() != "Exam not found" {
		t.Fatalf("message: got %q", apiErr.Error())
	}
}

func TestExportRejectsUnreviewedExam(t *testing.T) {
	db := newTestDB(t)
	exam := seedGeneratedExam(t, db, types.ExamStatusPendingReview)
	svc := newExportService(t, db)

	for _, export := range []func(context.Context, uint) ([]byte, error){svc.ExportPDF, svc.ExportDOCX} {
		_, err := export(context.Background(), exam.ID)
		apiErr := asAPIError(t, err)
		if apiErr.Status != http.StatusBadRequest {
			t.Fatalf("status: want=400 got=%d", apiErr.Status)
		}
		if apiErr.Error() != "Exam not generated yet" {
			t.Fatalf("message: got %q", apiErr.Error())
		}
	}
}

func TestExportPDF(t *testing.T) {
	db := newTestDB(t)
	exam := seedGeneratedExam(t, db, types.ExamStatusGenerated)
	svc := newExportService(t, db)

	data, err := svc.ExportPDF(context.Background(), exam.ID)
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("not a PDF, first bytes: %q", data[:min(len(data), 8)])
	}
}

func TestExportDOCX(t *testing.T) {
	db := newTestDB(t)
	exam := seedGeneratedExam(t, db, types.ExamStatusGenerated)
	svc := newExportService(t, db)

	data, err := svc.ExportDOCX(context.Background(), exam.ID)
	if err != nil {
		t.Fatalf("ExportDOCX: %v", err)
	}
	// DOCX is a zip container.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("not a zip container, first bytes: %q", data[:min(len(data), 8)])
	}
}

func TestBuildExamLayoutOrderingAndIdempotence(t *testing.T) {
	db := newTestDB(t)
	seeded := seedGeneratedExam(t, db, types.ExamStatusGenerated)
	log := testLogger(t)
	examRepo := repos.NewExamRepo(db, log)

	exam, err := examRepo.GetWithInstances(context.Background(), nil, seeded.ID)
	if err != nil {
		t.Fatalf("GetWithInstances: %v", err)
	}

	first, err := buildExamLayout(exam)
	if err != nil {
		t.Fatalf("buildExamLayout: %v", err)
	}
	second, err := buildExamLayout(exam)
	if err != nil {
		t.Fatalf("buildExamLayout: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("layout is not deterministic")
	}

	if len(first.Sections) != 2 || len(first.Answers) != 2 {
		t.Fatalf("sections/answers: got %d/%d", len(first.Sections), len(first.Answers))
	}
	if first.Sections[0].TypeName != "Reading Comprehension" || first.Sections[1].TypeName != "Cloze" {
		t.Fatalf("section order: %q, %q", first.Sections[0].TypeName, first.Sections[1].TypeName)
	}
	for i := range first.Sections {
		if first.Answers[i].TypeName != first.Sections[i].TypeName {
			t.Fatalf("answer sheet order diverges at %d: %q vs %q", i, first.Answers[i].TypeName, first.Sections[i].TypeName)
		}
		if len(first.Answers[i].Answers) != len(first.Sections[i].Items) {
			t.Fatalf("section %d: %d items vs %d answers", i, len(first.Sections[i].Items), len(first.Answers[i].Answers))
		}
	}
	if first.Answers[0].Answers[1] != "London" {
		t.Fatalf("answer content: got %q", first.Answers[0].Answers[1])
	}
}
