package chart

// Each cell is a 2x4 braille dot matrix starting at U+2800.
const brailleBase = '\u2800'

// brailleDots is the bit for each dot, indexed [row][col].
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// noSeries marks a cell nothing has been drawn into.
const noSeries = -1

// canvas is a grid of braille cells addressed in dot coordinates.
// Dot (0, 0) is the top-left corner.
type canvas struct {
	cols, rows int
	bits       []uint8
	owner      []int
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{
		cols:  cols,
		rows:  rows,
		bits:  make([]uint8, cols*rows),
		owner: make([]int, cols*rows),
	}
	for i := range c.owner {
		c.owner[i] = noSeries
	}
	return c
}

// dotsWide and dotsHigh are the canvas resolution in dots.
func (c *canvas) dotsWide() int { return c.cols * 2 }
func (c *canvas) dotsHigh() int { return c.rows * 4 }

// set lights one dot on behalf of series s. Out-of-range dots are ignored.
func (c *canvas) set(x, y, s int) {
	if x < 0 || y < 0 || x >= c.dotsWide() || y >= c.dotsHigh() {
		return
	}
	cell := (y/4)*c.cols + x/2
	c.bits[cell] |= 1 << brailleDots[y%4][x%2]
	c.owner[cell] = s
}

// line draws a straight segment between two dots (Bresenham).
func (c *canvas) line(x0, y0, x1, y1, s int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, s)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// cell returns the rune and owning series of one character cell.
func (c *canvas) cell(col, row int) (rune, int) {
	i := row*c.cols + col
	if c.bits[i] == 0 {
		return ' ', noSeries
	}
	return brailleBase | rune(c.bits[i]), c.owner[i]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
