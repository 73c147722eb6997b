package queries

const (
	GetAllQuestions = `
		SELECT q.question_id, q.title, d.name AS domain
		FROM questions q
		JOIN domains d ON q.domain_id = d.id
		ORDER BY q.question_id
	`

	GetDomainsByQuestionIDs = `
		SELECT q.question_id, d.name
		FROM questions q
		JOIN domains d ON q.domain_id = d.id
		WHERE q.question_id = ANY($1)
	`
)
