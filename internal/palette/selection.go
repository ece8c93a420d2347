package palette

// Cursor tracks the highlighted row over the composed list with
// wrap-around keyboard navigation. While the list is non-empty the
// cursor always points at a valid row; the empty list is rendered as
// an explicit empty state, not a selection.
type Cursor struct {
	index int
}

// Index returns the highlighted row index
func (c *Cursor) Index() int { return c.index }

// Reset moves the cursor back to the first row
func (c *Cursor) Reset() { c.index = 0 }

// Next advances the cursor, wrapping past the last row. No-op when the
// list is empty.
func (c *Cursor) Next(length int) {
	if length <= 0 {
		return
	}
	c.index = (c.index + 1) % length
}

// Prev moves the cursor back, wrapping past the first row
func (c *Cursor) Prev(length int) {
	if length <= 0 {
		return
	}
	c.index = (c.index - 1 + length) % length
}

// Set points the cursor directly at row i (pointer hover). Out-of-range
// targets are ignored.
func (c *Cursor) Set(i, length int) {
	if length <= 0 || i < 0 || i >= length {
		return
	}
	c.index = i
}
