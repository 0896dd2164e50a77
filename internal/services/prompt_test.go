package services

import (
	"strings"
	"testing"

	"github.com/aulaflow/academy-backend/internal/types"
)

func TestBuildExamPromptIsPure(t *testing.T) {
	a := BuildExamPrompt("B1", "source", "- Cloze: gaps", "ctx")
	b := BuildExamPrompt("B1", "source", "- Cloze: gaps", "ctx")
	if a != b {
		t.Fatal("same inputs produced different prompts")
	}
}

func TestBuildExamPromptContent(t *testing.T) {
	prompt := BuildExamPrompt("C1", "teacher notes", "- Essay: write one", "historical exams")

	for _, want := range []string{
		"Level: C1",
		"teacher notes",
		"- Essay: write one",
		"historical exams",
		"Output STRICT JSON",
		types.GeneratedExamSchema,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}
