package vars

// FirstNonZero returns the first value that is not the zero value of T.
// Settings list their sources in precedence order: flag, config file, environment, default.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value == zero {
			continue
		}
		return value
	}
	return zero
}
