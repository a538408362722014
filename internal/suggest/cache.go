package suggest

// Cache holds the result of one lookup, keyed by the selected span index and
// its text.
type Cache[T any] struct {
	index int
	text  string
	valid bool
	items []T
}

// Refresh returns the cached items, calling fn(text) first when the key
// changed or the cache was invalidated.
func (c *Cache[T]) Refresh(index int, text string, fn func(string) []T) []T {
	if c.valid && c.index == index && c.text == text {
		return c.items
	}
	c.index, c.text, c.valid = index, text, true
	c.items = fn(text)
	return c.items
}

func (c *Cache[T]) Invalidate() {
	c.valid = false
	c.items = nil
}

// Items returns the last computed items without refreshing.
func (c *Cache[T]) Items() []T {
	return c.items
}
