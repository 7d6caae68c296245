package jsontree

// Strategy is one named way of extracting a value from a document.
type Strategy[T any] struct {
	Name    string
	Extract func(doc Node) (T, bool)
}

// FirstMatch tries strategies in order and stops at the first success.
// It returns the extracted value and the name of the winning strategy.
func FirstMatch[T any](doc Node, strategies []Strategy[T]) (T, string, bool) {
	for _, strategy := range strategies {
		if strategy.Extract == nil {
			continue
		}
		if value, ok := strategy.Extract(doc); ok {
			return value, strategy.Name, true
		}
	}

	var zero T
	return zero, "", false
}
