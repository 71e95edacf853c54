package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/internal/config"
)

const (
	defaultFPS    = 20
	defaultWidth  = 80
	defaultHeight = 24
	chromeRows    = 2 // status line + help line
	edgeRune      = "·"
)

// watchCommand animates the spring layout in the terminal.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		src   graphSource
		fps   int
		steps int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Animate the spring layout in the terminal",
		Long: `Animate the spring layout in the terminal.

Keys: space pauses, r resets positions, + and - change iterations per
frame, q quits. Nodes can be dragged with the mouse; every move rewinds
the layout so it settles again around the new position.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fps <= 0 {
				return fmt.Errorf("--fps must be > 0, got %d", fps)
			}
			g, err := src.build(cmd, c.cfg)
			if err != nil {
				return err
			}
			m := newWatchModel(g, c.cfg.Layout, time.Second/time.Duration(fps), steps)
			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if wm, ok := final.(watchModel); ok && wm.err != nil {
				return wm.err
			}
			loggerFromContext(cmd.Context()).Debug("watch finished", "iterations", g.Layout().Iterations())
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().IntVar(&fps, "fps", defaultFPS, "frames per second")
	cmd.Flags().IntVar(&steps, "steps", 0, "stop after this many frames (0 = run until quit)")

	return cmd
}

// =============================================================================
// Model
// =============================================================================

type tickMsg time.Time

// watchModel is the bubbletea model driving one graph's layout.
type watchModel struct {
	g        *core.Graph
	layout   config.Layout
	interval time.Duration
	maxSteps int

	width, height int
	paused        bool
	steps         int
	err           error
}

func newWatchModel(g *core.Graph, l config.Layout, interval time.Duration, maxSteps int) watchModel {
	return watchModel{
		g:        g,
		layout:   l,
		interval: interval,
		maxSteps: maxSteps,
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m watchModel) Init() tea.Cmd {
	return m.tick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.g.Layout().Reset(m.g)
			m.steps = 0
		case "+", "=":
			m.layout.Iterations++
		case "-":
			if m.layout.Iterations > 1 {
				m.layout.Iterations--
			}
		}
		return m, nil

	case tea.MouseMsg:
		m.drag(msg)
		return m, nil

	case tickMsg:
		if m.paused {
			return m, m.tick()
		}
		if err := m.g.Update(m.layout.Iterations, m.layout.Weight, m.layout.Limit); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.steps++
		if m.maxSteps > 0 && m.steps >= m.maxSteps {
			return m, tea.Quit
		}
		return m, m.tick()
	}

	return m, nil
}

// drag translates terminal mouse events into core.Graph drag gestures.
func (m watchModel) drag(msg tea.MouseMsg) {
	cv := newCanvas(m.g, m.width, m.canvasHeight())
	col, row := msg.X, msg.Y-1 // status line sits above the canvas

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		// Press on the node drawn under the cursor, at its exact position.
		if n := cv.nodeAt(m.g, col, row); n != nil {
			m.g.Drag(pointer{pressed: true, x: n.X, y: n.Y})
		}
	case tea.MouseActionMotion:
		if m.g.Dragged() == nil {
			return
		}
		x, y := cv.point(col, row)
		m.g.Drag(pointer{pressed: true, dragged: true, x: x, y: y})
	case tea.MouseActionRelease:
		m.g.Drag(pointer{})
	}
}

func (m watchModel) canvasHeight() int {
	if h := m.height - chromeRows; h > 0 {
		return h
	}
	return 1
}

func (m watchModel) View() string {
	var b strings.Builder

	status := fmt.Sprintf("%s  frame %d  iterations %d  per frame %d",
		StyleTitle.Render(appName), m.steps, m.g.Layout().Iterations(), m.layout.Iterations)
	if m.paused {
		status += "  " + StyleWarning.Render("paused")
	}
	b.WriteString(status)
	b.WriteByte('\n')
	b.WriteString(renderCanvas(m.g, m.width, m.canvasHeight()))
	b.WriteByte('\n')
	b.WriteString(StyleDim.Render("space pause · r reset · +/- speed · q quit · drag nodes with the mouse"))

	return b.String()
}

// pointer adapts a terminal mouse state to core.Pointer.
type pointer struct {
	pressed, dragged bool
	x, y             float64
}

func (p pointer) Pressed() bool                { return p.pressed }
func (p pointer) Dragged() bool                { return p.dragged }
func (p pointer) Position() (float64, float64) { return p.x, p.y }

var _ core.Pointer = pointer{}

// =============================================================================
// Canvas
// =============================================================================

// canvas maps screen coordinates onto a w×h character grid spanning the
// graph's current bounds.
type canvas struct {
	w, h       int
	minX, minY float64
	sx, sy     float64 // cells per screen unit; 0 when the span is empty
}

func newCanvas(g *core.Graph, w, h int) canvas {
	b := g.Bounds()
	d := g.Distance()
	c := canvas{w: w, h: h, minX: b.Min.X * d, minY: b.Min.Y * d}
	if span := (b.Max.X - b.Min.X) * d; span > 0 && w > 1 {
		c.sx = float64(w-1) / span
	}
	if span := (b.Max.Y - b.Min.Y) * d; span > 0 && h > 1 {
		c.sy = float64(h-1) / span
	}
	return c
}

// cell returns the grid cell of screen point (x, y).
func (c canvas) cell(x, y float64) (col, row int) {
	col, row = c.w/2, c.h/2
	if c.sx != 0 {
		col = int(math.Round((x - c.minX) * c.sx))
	}
	if c.sy != 0 {
		row = int(math.Round((y - c.minY) * c.sy))
	}
	return col, row
}

// point returns the screen point at the centre of a grid cell.
func (c canvas) point(col, row int) (x, y float64) {
	x, y = c.minX, c.minY
	if c.sx != 0 {
		x += float64(col) / c.sx
	}
	if c.sy != 0 {
		y += float64(row) / c.sy
	}
	return x, y
}

// nodeAt returns the last-drawn node occupying (col, row), or nil.
func (c canvas) nodeAt(g *core.Graph, col, row int) *core.Node {
	var hit *core.Node
	for _, n := range g.Nodes() {
		if nc, nr := c.cell(n.X, n.Y); nc == col && nr == row {
			hit = n
		}
	}
	return hit
}

func (c canvas) inside(col, row int) bool {
	return col >= 0 && col < c.w && row >= 0 && row < c.h
}

// renderCanvas draws edges as dotted lines and nodes as the first rune of
// their label (or id). Fixed and dragged nodes are highlighted.
func renderCanvas(g *core.Graph, w, h int) string {
	c := newCanvas(g, w, h)
	cells := make([][]string, h)
	for r := range cells {
		cells[r] = make([]string, w)
		for col := range cells[r] {
			cells[r][col] = " "
		}
	}

	for _, e := range g.Edges() {
		n1, n2 := g.Endpoints(e)
		c1, r1 := c.cell(n1.X, n1.Y)
		c2, r2 := c.cell(n2.X, n2.Y)
		steps := max(abs(c2-c1), abs(r2-r1))
		for s := 1; s < steps; s++ {
			t := float64(s) / float64(steps)
			col := c1 + int(math.Round(t*float64(c2-c1)))
			row := r1 + int(math.Round(t*float64(r2-r1)))
			if c.inside(col, row) {
				cells[row][col] = StyleDim.Render(edgeRune)
			}
		}
	}

	dragged := g.Dragged()
	for _, n := range g.Nodes() {
		col, row := c.cell(n.X, n.Y)
		if !c.inside(col, row) {
			continue
		}
		style := styleNode
		if n.Fixed || n == dragged {
			style = styleFixed
		}
		cells[row][col] = style.Render(glyph(n))
	}

	lines := make([]string, h)
	for r := range cells {
		lines[r] = strings.Join(cells[r], "")
	}
	return strings.Join(lines, "\n")
}

func glyph(n *core.Node) string {
	s := n.Label
	if s == "" {
		s = n.ID
	}
	for _, r := range s {
		return string(r)
	}
	return "?"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
