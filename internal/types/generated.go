package types

// Shared contract between the prompt builder and the output parser. The
// prompt embeds GeneratedExamSchema verbatim and the parser validates model
// output against these structures, so a wording change in one place cannot
// silently drift from the other.

// GeneratedExamSchema is the JSON schema the model is instructed to follow.
const GeneratedExamSchema = `{
  "exercises": [
    {
      "exercise_type": "string",
      "instructions": "string",
      "items": [
        {
          "question": "string",
          "answer": "string"
        }
      ]
    }
  ]
}`

// GeneratedExam is the decoded model output.
type GeneratedExam struct {
	Exercises []GeneratedExercise `json:"exercises"`
}

type GeneratedExercise struct {
	ExerciseType string          `json:"exercise_type"`
	Instructions string          `json:"instructions"`
	Items        []GeneratedItem `json:"items"`
}

type GeneratedItem struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Options  []string `json:"options,omitempty"`
}

// ContentItem is what gets persisted in an instance's content payload:
// the generated item with the answer stripped out.
type ContentItem struct {
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
}

// AnswerKey is the persisted answer payload, index-aligned with the
// instance's content items.
type AnswerKey struct {
	Answers []string `json:"answers"`
}
