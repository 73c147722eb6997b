package models

import "time"

// Submission is one completed screener attempt. session_id is unique across
// all submissions; a second attempt for the same session is rejected.
type Submission struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"session_id"`
	CreatedAt      time.Time `json:"created_at"`
	ClinicianNotes *string   `json:"clinician_notes,omitempty"`
}

// Answer belongs to exactly one submission and is immutable after the
// submission transaction commits.
type Answer struct {
	ID           int64     `json:"id"`
	SubmissionID string    `json:"submission_id"`
	QuestionID   string    `json:"question_id"`
	Value        int       `json:"value"`
	CreatedAt    time.Time `json:"created_at"`
}
