package entity

// SearchResult groups the questions and answers matching a search term.
type SearchResult struct {
	Questions  []Question
	Answers    []Answer
	SearchTerm string
}
