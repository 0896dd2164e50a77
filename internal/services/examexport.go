package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fumiama/go-docx"
	"github.com/go-pdf/fpdf"
	"gorm.io/gorm"

	"github.com/aulaflow/academy-backend/internal/apierr"
	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/repos"
	"github.com/aulaflow/academy-backend/internal/types"
)

// ExamExportService renders a finalized exam into downloadable documents.
// Rendering is read-only: both formats are built from the same layout, a pure
// function of the persisted exam, so exporting twice yields the same section
// ordering and numbering.
type ExamExportService interface {
	ExportPDF(ctx context.Context, examID uint) ([]byte, error)
	ExportDOCX(ctx context.Context, examID uint) ([]byte, error)
}

type examExportService struct {
	log      *logger.Logger
	examRepo repos.ExamRepo
}

func NewExamExportService(log *logger.Logger, examRepo repos.ExamRepo) ExamExportService {
	return &examExportService{
		log:      log.With("service", "ExamExportService"),
		examRepo: examRepo,
	}
}

// examLayout is the logical document structure shared by both formats:
// title, one section per instance in persisted order, a hard page break,
// then the answer sheet mirroring the same ordering.
type examLayout struct {
	ExamID   uint
	ClassID  uint
	Date     string
	Sections []exerciseSection
	Answers  []answerSection
}

type exerciseSection struct {
	TypeName     string
	Instructions string
	Items        []types.ContentItem
}

type answerSection struct {
	TypeName string
	Answers  []string
}

func (s *examExportService) ExportPDF(ctx context.Context, examID uint) ([]byte, error) {
	layout, err := s.loadLayout(ctx, examID)
	if err != nil {
		return nil, err
	}
	return renderPDF(layout)
}

func (s *examExportService) ExportDOCX(ctx context.Context, examID uint) ([]byte, error) {
	layout, err := s.loadLayout(ctx, examID)
	if err != nil {
		return nil, err
	}
	return renderDOCX(layout)
}

func (s *examExportService) loadLayout(ctx context.Context, examID uint) (*examLayout, error) {
	exam, err := s.examRepo.GetWithInstances(ctx, nil, examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.Newf(http.StatusNotFound, "exam_not_found", "Exam not found")
		}
		return nil, dbError(err)
	}
	if exam.Status != types.ExamStatusGenerated {
		return nil, apierr.Newf(http.StatusBadRequest, "exam_not_generated", "Exam not generated yet")
	}
	return buildExamLayout(exam)
}

func buildExamLayout(exam *types.Exam) (*examLayout, error) {
	layout := &examLayout{
		ExamID:   exam.ID,
		ClassID:  exam.ClassID,
		Date:     exam.CreatedAt.Format("2006-01-02"),
		Sections: make([]exerciseSection, 0, len(exam.GeneratedExercises)),
		Answers:  make([]answerSection, 0, len(exam.GeneratedExercises)),
	}
	for _, instance := range exam.GeneratedExercises {
		var items []types.ContentItem
		if err := json.Unmarshal(instance.Content, &items); err != nil {
			return nil, apierr.New(http.StatusInternalServerError, "corrupt_content", fmt.Errorf("decode instance %d content: %w", instance.ID, err))
		}
		var key types.AnswerKey
		if err := json.Unmarshal(instance.AnswerKey, &key); err != nil {
			return nil, apierr.New(http.StatusInternalServerError, "corrupt_answer_key", fmt.Errorf("decode instance %d answer key: %w", instance.ID, err))
		}
		typeName := ""
		if instance.ExerciseType != nil {
			typeName = instance.ExerciseType.Name
		}
		layout.Sections = append(layout.Sections, exerciseSection{
			TypeName:     typeName,
			Instructions: instance.Instructions,
			Items:        items,
		})
		layout.Answers = append(layout.Answers, answerSection{
			TypeName: typeName,
			Answers:  key.Answers,
		})
	}
	return layout, nil
}

func renderPDF(layout *examLayout) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Exam", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Class ID: %d", layout.ClassID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", layout.Date), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, section := range layout.Sections {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, section.TypeName, "", "L", false)
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, section.Instructions, "", "L", false)
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "", 11)
		for i, item := range section.Items {
			pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, item.Question), "", "L", false)
			for _, option := range item.Options {
				pdf.MultiCell(0, 6, "    "+option, "", "L", false)
			}
			pdf.Ln(1)
		}
		pdf.Ln(4)
	}

	// Answer sheet starts on its own page.
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Answer Sheet", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	for _, section := range layout.Answers {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, section.TypeName, "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		for i, answer := range section.Answers {
			pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, answer), "", "L", false)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "pdf_render_failed", err)
	}
	return buf.Bytes(), nil
}

func renderDOCX(layout *examLayout) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().AddText("Exam").Size("36").Bold()
	doc.AddParagraph().AddText(fmt.Sprintf("Class ID: %d", layout.ClassID))
	doc.AddParagraph().AddText(fmt.Sprintf("Date: %s", layout.Date))
	doc.AddParagraph()

	for _, section := range layout.Sections {
		doc.AddParagraph().AddText(section.TypeName).Size("28").Bold()
		doc.AddParagraph().AddText(section.Instructions).Italic()
		for i, item := range section.Items {
			doc.AddParagraph().AddText(fmt.Sprintf("%d. %s", i+1, item.Question))
			for _, option := range item.Options {
				doc.AddParagraph().AddText("    " + option)
			}
		}
		doc.AddParagraph()
	}

	doc.AddParagraph().AddPageBreaks()
	doc.AddParagraph().AddText("Answer Sheet").Size("36").Bold()

	for _, section := range layout.Answers {
		doc.AddParagraph().AddText(section.TypeName).Size("28").Bold()
		for i, answer := range section.Answers {
			doc.AddParagraph().AddText(fmt.Sprintf("%d. %s", i+1, answer))
		}
		doc.AddParagraph()
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "docx_render_failed", err)
	}
	return buf.Bytes(), nil
}
