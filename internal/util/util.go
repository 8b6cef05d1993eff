package util

// PageCount returns the number of pages needed to hold total items at size per page.
func PageCount(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}

	return int((total + int64(size) - 1) / int64(size))
}

// PageOffset converts a 1-based page number into a row offset.
func PageOffset(page, size int) int {
	if page < 1 || size < 1 {
		return 0
	}

	return (page - 1) * size
}
