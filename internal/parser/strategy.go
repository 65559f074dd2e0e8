package parser

// Strategy extracts a single field from ticket text. ok is false when the
// strategy found nothing usable.
type Strategy[T any] func(text string) (value T, ok bool)

// firstMatch runs strategies in order and returns the first successful value.
func firstMatch[T any](text string, strategies ...Strategy[T]) (T, bool) {
	for _, s := range strategies {
		if v, ok := s(text); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// optional converts a strategy result into a nil-able pointer.
func optional[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}
