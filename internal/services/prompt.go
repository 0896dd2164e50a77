package services

import (
	"fmt"

	"github.com/aulaflow/academy-backend/internal/types"
)

// BuildExamPrompt assembles the single generation prompt. Pure function: same
// inputs, same prompt. The schema section comes from the shared contract in
// types so the parser and the prompt cannot drift apart.
func BuildExamPrompt(level, teacherText, exerciseListText, retrievedContext string) string {
	return fmt.Sprintf(`You are an expert English exam designer.

Level: %s

Teacher source text:
%s

Retrieved historical exams from this course
(use only as structural guidance, never copy content):
%s

Requested exercise types:
%s

Rules:
- Every requested exercise type MUST appear.
- Content must be original.
- Difficulty must strictly match the stated level.
- All content must be in English.
- Output STRICT JSON.
- Do NOT include explanations outside JSON.

Required JSON schema:

%s
`, level, teacherText, retrievedContext, exerciseListText, types.GeneratedExamSchema)
}
