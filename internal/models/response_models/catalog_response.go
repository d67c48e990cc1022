package response_models

type SearchResults[T any] struct {
	Results []T `json:"results"`
	Count   int `json:"count"`
}

func NewSearchResults[T any](results []T) SearchResults[T] {
	if results == nil {
		results = []T{}
	}
	return SearchResults[T]{Results: results, Count: len(results)}
}
