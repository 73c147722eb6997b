package models

// Screener is the static display document served to the frontend. It is
// loaded once from disk and never mutated.
type Screener struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Disorder string          `json:"disorder"`
	Content  ScreenerContent `json:"content"`
	FullName string          `json:"full_name"`
}

type ScreenerContent struct {
	Sections    []ScreenerSection `json:"sections"`
	DisplayName string            `json:"display_name"`
}

type ScreenerSection struct {
	Type      string             `json:"type"`
	Title     string             `json:"title"`
	Answers   []ScreenerAnswer   `json:"answers"`
	Questions []ScreenerQuestion `json:"questions"`
}

type ScreenerAnswer struct {
	Title string `json:"title"`
	Value int    `json:"value"`
}

type ScreenerQuestion struct {
	QuestionID string `json:"question_id"`
	Title      string `json:"title"`
}
