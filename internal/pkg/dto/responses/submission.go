package responses

// ScreenerResult is the outcome of a processed submission: the generated
// submission id plus the deduplicated list of triggered assessments. Results
// is always non-nil; an empty list means no threshold was met.
type ScreenerResult struct {
	SubmissionID string   `json:"submission_id"`
	Results      []string `json:"results"`
}
