package models

// Question is a catalog entry with its resolved domain name. The catalog is
// read-only at request time; rows are only written by the migration seed.
type Question struct {
	QuestionID string `json:"question_id"`
	Title      string `json:"title"`
	Domain     string `json:"domain"`
}
