package app

// ErrorCache remembers error texts that were already sent to the chat.
// It is used from the poll loop goroutine only and has no lock.
type ErrorCache struct {
	seen map[string]struct{}
}

func NewErrorCache() *ErrorCache {
	return &ErrorCache{seen: make(map[string]struct{})}
}

func (c *ErrorCache) Contains(message string) bool {
	_, ok := c.seen[message]
	return ok
}

func (c *ErrorCache) Add(message string) {
	c.seen[message] = struct{}{}
}

// Clear forgets every cached text, so the next failure is reported again.
func (c *ErrorCache) Clear() {
	clear(c.seen)
}

func (c *ErrorCache) Len() int {
	return len(c.seen)
}
