package queries

const (
	GetSubmissionBySessionID = "SELECT id FROM submissions WHERE session_id = $1"

	InsertSubmission = `
		INSERT INTO submissions (session_id, clinician_notes)
		VALUES ($1, $2)
		RETURNING id
	`

	GetAllAnswers = `
		SELECT id, submission_id, question_id, value, created_at
		FROM answers
		ORDER BY created_at DESC
	`

	InsertAnswer = `
		INSERT INTO answers (submission_id, question_id, value)
		VALUES ($1, $2, $3)
	`
)
