package pagination

const (
	// DefaultLimit is applied when the caller does not ask for a page size.
	DefaultLimit = 50
	// MaxLimit caps the page size a caller can request.
	MaxLimit = 200
)

// Normalize clamps limit into [1, MaxLimit] (0 or less means DefaultLimit) and offset to >= 0.
func Normalize(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// HasMore reports whether rows remain after a page of pageLen rows starting at offset.
func HasMore(offset, pageLen, total int) bool {
	return offset+pageLen < total
}
