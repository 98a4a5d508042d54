package model

// SuggestRequest represents a task suggestion request body.
type SuggestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SuggestResponse wraps the generated suggestion lines.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}
