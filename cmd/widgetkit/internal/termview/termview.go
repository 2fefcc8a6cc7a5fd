// Package termview rasterizes a memscene into terminal cells.
//
// Each cell covers CellWidth by CellHeight scene pixels, the advance and
// line height of memscene's default face, so one rune of scene text maps
// to one terminal column.
package termview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/scene"
	"github.com/go-drift/widgetkit/pkg/scene/memscene"
)

// Cell size in scene pixels.
const (
	CellWidth  = 7
	CellHeight = 13
)

// ToScene returns the scene point at the center of the cell (col, row).
func ToScene(col, row int) graphics.Point {
	return graphics.Pt(float64(col*CellWidth+CellWidth/2), float64(row*CellHeight+CellHeight/2))
}

// FromScene returns the cell containing p.
func FromScene(p graphics.Point) (col, row int) {
	return int(math.Floor(p.X / CellWidth)), int(math.Floor(p.Y / CellHeight))
}

type cell struct {
	r      rune
	fg, bg graphics.Color
	hasFg  bool
	hasBg  bool
}

// Canvas is a fixed grid of styled cells.
type Canvas struct {
	cols, rows int
	cells      []cell
}

// New returns a blank canvas.
func New(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid size and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.cells = make([]cell, c.cols*c.rows)
	c.Clear()
}

// Size returns the grid size in cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
}

func (c *Canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

// Draw paints every visible primitive of s in paint order.
func (c *Canvas) Draw(s *memscene.Scene) {
	s.Walk(func(n *memscene.Node, _ int) {
		switch n.Shape() {
		case scene.ShapeRect:
			c.fill(n, false)
			c.border(n)
		case scene.ShapeCircle:
			c.fill(n, true)
		case scene.ShapeText:
			c.text(n)
		}
	})
}

// span returns the cells whose centers lie inside b.
func span(b graphics.Rect) (c0, r0, c1, r1 int) {
	c0 = int(math.Ceil(b.Min.X/CellWidth - 0.5))
	r0 = int(math.Ceil(b.Min.Y/CellHeight - 0.5))
	c1 = int(math.Ceil(b.Max.X/CellWidth-0.5)) - 1
	r1 = int(math.Ceil(b.Max.Y/CellHeight-0.5)) - 1
	return
}

func (c *Canvas) fill(n *memscene.Node, round bool) {
	col := n.FillColor()
	if col.Alpha() == 0 {
		return
	}
	b := n.Bounds()
	c0, r0, c1, r1 := span(b)
	if c1 < c0 || r1 < r0 {
		// Thinner than a cell: draw a bar in the cell holding the center.
		if b.Dx() <= 0 || b.Dy() <= 0 {
			return
		}
		cc, cr := FromScene(b.Center())
		if p := c.at(cc, cr); p != nil {
			p.r, p.fg, p.hasFg = '│', col, true
		}
		return
	}
	center := b.Center()
	for row := r0; row <= r1; row++ {
		for cl := c0; cl <= c1; cl++ {
			if round {
				q := ToScene(cl, row)
				dx := (q.X - center.X) / (b.Dx() / 2)
				dy := (q.Y - center.Y) / (b.Dy() / 2)
				if dx*dx+dy*dy > 1 {
					continue
				}
			}
			if p := c.at(cl, row); p != nil {
				p.r, p.bg, p.hasBg = ' ', col, true
			}
		}
	}
}

func (c *Canvas) border(n *memscene.Node) {
	w, col := n.StrokeStyle()
	if w <= 0 || col.Alpha() == 0 {
		return
	}
	c0, r0, c1, r1 := span(n.Bounds())
	if c1 <= c0 || r1 <= r0 {
		return
	}
	set := func(cl, row int, r rune) {
		if p := c.at(cl, row); p != nil {
			p.r, p.fg, p.hasFg = r, col, true
		}
	}
	for cl := c0 + 1; cl < c1; cl++ {
		set(cl, r0, '─')
		set(cl, r1, '─')
	}
	for row := r0 + 1; row < r1; row++ {
		set(c0, row, '│')
		set(c1, row, '│')
	}
	set(c0, r0, '┌')
	set(c1, r0, '┐')
	set(c0, r1, '└')
	set(c1, r1, '┘')
}

func (c *Canvas) text(n *memscene.Node) {
	b := n.Bounds()
	col := int(math.Round(b.Min.X / CellWidth))
	_, row := FromScene(b.Center())
	for _, r := range n.Content() {
		if r == '\u00a0' {
			r = ' '
		}
		if p := c.at(col, row); p != nil {
			p.r = r
			if fill := n.FillColor(); fill.Alpha() > 0 {
				p.fg, p.hasFg = fill, true
			}
		}
		col++
	}
}

// Plain returns the grid as unstyled lines.
func (c *Canvas) Plain() string {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, p := range c.cells[row*c.cols : (row+1)*c.cols] {
			sb.WriteRune(p.r)
		}
	}
	return sb.String()
}

// String renders the grid with terminal colors. Runs of equally styled
// cells share one style.
func (c *Canvas) String() string {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		line := c.cells[row*c.cols : (row+1)*c.cols]
		for start := 0; start < len(line); {
			end := start + 1
			for end < len(line) && sameStyle(line[start], line[end]) {
				end++
			}
			var run strings.Builder
			for _, p := range line[start:end] {
				run.WriteRune(p.r)
			}
			sb.WriteString(style(line[start]).Render(run.String()))
			start = end
		}
	}
	return sb.String()
}

func sameStyle(a, b cell) bool {
	return a.hasFg == b.hasFg && a.hasBg == b.hasBg &&
		(!a.hasFg || a.fg == b.fg) && (!a.hasBg || a.bg == b.bg)
}

func style(p cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if p.hasFg {
		s = s.Foreground(lipgloss.Color(p.fg.Hex()))
	}
	if p.hasBg {
		s = s.Background(lipgloss.Color(p.bg.Hex()))
	}
	return s
}
