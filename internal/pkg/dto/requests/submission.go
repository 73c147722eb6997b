package requests

// ScreenerAnswer carries one answered question. Value is a pointer so a
// missing value can be told apart from a legitimate zero.
type ScreenerAnswer struct {
	QuestionID string `json:"question_id" validate:"required"`
	Value      *int   `json:"value" validate:"required,min=0,max=4"`
}

type CreateScreenerSubmission struct {
	SessionID      string           `json:"session_id" validate:"required"`
	Answers        []ScreenerAnswer `json:"answers" validate:"required,min=1,dive"`
	ClinicianNotes *string          `json:"clinician_notes,omitempty"`
}
