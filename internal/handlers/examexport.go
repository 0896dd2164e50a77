package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/aulaflow/academy-backend/internal/logger"
	"github.com/aulaflow/academy-backend/internal/services"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type ExamExportHandler struct {
	log       *logger.Logger
	exportSvc services.ExamExportService
}

func NewExamExportHandler(log *logger.Logger, exportSvc services.ExamExportService) *ExamExportHandler {
	return &ExamExportHandler{
		log:       log.With("handler", "ExamExportHandler"),
		exportSvc: exportSvc,
	}
}

// GET /api/exams/:id/export/pdf
func (h *ExamExportHandler) ExportPDF(c *gin.Context) {
	examID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	payload, err := h.exportSvc.ExportPDF(c.Request.Context(), examID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="exam_%d.pdf"`, examID))
	c.Data(200, "application/pdf", payload)
}

// GET /api/exams/:id/export/docx
func (h *ExamExportHandler) ExportDOCX(c *gin.Context) {
	examID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	payload, err := h.exportSvc.ExportDOCX(c.Request.Context(), examID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="exam_%d.docx"`, examID))
	c.Data(200, docxMIME, payload)
}
