package labelmask

// Chip is a dense label grid of shape (height, width, 1): one uint8 class
// id per pixel, row-major. Value 0 is the don't-care sentinel for pixels
// outside the source extent; the background class fills pixels inside the
// extent covered by no labeled geometry.
//
// Every GetChip call allocates a fresh Chip; chips are never shared or
// cached across calls.
type Chip struct {
	height int
	width  int
	data   []uint8
}

// newChip wraps a row-major grid in a Chip. A nil grid yields an
// all-zero chip of the given dimensions.
func newChip(height, width int, data []uint8) *Chip {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	if data == nil {
		data = make([]uint8, height*width)
	}
	return &Chip{height: height, width: width, data: data}
}

// Height returns the number of rows.
func (c *Chip) Height() int {
	return c.height
}

// Width returns the number of columns.
func (c *Chip) Width() int {
	return c.width
}

// Channels returns the number of channels, always 1.
func (c *Chip) Channels() int {
	return 1
}

// At returns the class id at (row, col). Out-of-range coordinates return
// 0, the don't-care class.
func (c *Chip) At(row, col int) uint8 {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return 0
	}
	return c.data[row*c.width+col]
}

// Bytes returns the raw row-major grid data. The slice is owned by the
// chip; callers must copy it before mutating.
func (c *Chip) Bytes() []uint8 {
	return c.data
}
