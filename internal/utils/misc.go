package utils

func Ptr[T any](v T) *T {
	return &v
}

// ValOr dereferences p, or returns fallback when p is nil.
func ValOr[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
