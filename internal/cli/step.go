package cli

import (
	"fmt"
	"iter"
	"math"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matzehuels/linden/pkg/errors"
	"github.com/matzehuels/linden/pkg/frames"
	"github.com/matzehuels/linden/pkg/turtle"
)

var (
	stepCanvasStyle = lipgloss.NewStyle().Foreground(colorGreen)
	stepBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
)

// stepCommand creates the interactive frame stepper.
func (c *CLI) stepCommand() *cobra.Command {
	var (
		src      sourceFlags
		loops    int
		interval time.Duration
		maxLen   int
	)

	cmd := &cobra.Command{
		Use:   "step [blueprint]",
		Short: "Step through generations interactively in the terminal",
		Long: `Step draws each frame as a character raster and replays the blueprint from
the axiom when a pass ends. Every pass uses fresh random draws.

Keys: space pause/resume, n or → next frame, q quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New(errors.ErrCodeInvalidInput, "step needs an interactive terminal; use 'linden render' instead")
			}
			bp, err := src.load(cmd, args)
			if err != nil {
				return err
			}
			if maxLen == 0 {
				maxLen = c.Config.MaxLength
			}
			looper, err := frames.Loop(bp, frames.Options{MaxLength: maxLen}, loops)
			if err != nil {
				return err
			}

			cols, rows := 80, 24
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				cols, rows = w, h
			}
			m := newStepModel(looper.All(), interval, cols, rows)
			defer m.stop()

			loggerFromContext(cmd.Context()).Debug("stepping", "blueprint", bp.Name, "loops", loops)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	src.register(cmd)
	cmd.Flags().IntVar(&loops, "loops", 0, "number of passes before stopping (0 = forever)")
	cmd.Flags().DurationVar(&interval, "interval", 400*time.Millisecond, "time between frames while playing")
	cmd.Flags().IntVar(&maxLen, "max-length", 0, "stop a pass once a generation exceeds this many runes")

	return cmd
}

// =============================================================================
// stepModel - bubbletea model over a frame iterator
// =============================================================================

type stepTickMsg struct{}

type stepModel struct {
	next     func() (frames.Frame, bool)
	stop     func()
	interval time.Duration

	frame  frames.Frame
	shown  int
	done   bool
	paused bool
	cols   int
	rows   int
}

func newStepModel(seq iter.Seq[frames.Frame], interval time.Duration, cols, rows int) *stepModel {
	next, stop := iter.Pull(seq)
	m := &stepModel{next: next, stop: stop, interval: interval, cols: cols, rows: rows}
	m.advance()
	return m
}

func (m *stepModel) advance() {
	f, ok := m.next()
	if !ok {
		m.done = true
		return
	}
	m.frame = f
	m.shown++
}

func (m *stepModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return stepTickMsg{} })
}

func (m *stepModel) Init() tea.Cmd {
	return m.tick()
}

func (m *stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			if !m.paused {
				return m, m.tick()
			}
		case "n", "right":
			if !m.done {
				m.advance()
			}
		}
	case stepTickMsg:
		if m.paused || m.done {
			return m, nil
		}
		m.advance()
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
	}
	return m, nil
}

func (m *stepModel) View() string {
	var b strings.Builder

	status := "playing"
	switch {
	case m.done:
		status = "finished"
	case m.paused:
		status = "paused"
	}
	label := m.frame.Label
	if m.frame.Repeat > 0 {
		label += fmt.Sprintf(" (hold %d)", m.frame.Repeat)
	}
	b.WriteString(StyleTitle.Render(label))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d runes · %d segments · frame %d · %s",
		utf8.RuneCountInString(m.frame.Text), len(m.frame.Segments), m.shown, status)))
	b.WriteString("\n")

	// Border and header take four rows and two columns.
	canvas := rasterize(m.frame.Segments, max(m.cols-2, 8), max(m.rows-4, 4))
	b.WriteString(stepBorderStyle.Render(stepCanvasStyle.Render(strings.Join(canvas, "\n"))))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("space pause  n next  q quit"))
	return b.String()
}

// =============================================================================
// Raster
// =============================================================================

// rasterize draws segments projected onto x and y into a cols×rows grid of
// characters, scaled uniformly and flipped so +y points up. Terminal cells
// are about twice as tall as wide, so x is stretched by two.
func rasterize(segs []turtle.Segment, cols, rows int) []string {
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", cols))
	}
	if len(segs) == 0 {
		return joinRows(grid)
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range segs {
		for _, p := range [2]turtle.Vec{s.Start, s.End} {
			x, y := p[0], p[1]
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}
	}

	w := (maxX - minX) * 2
	h := maxY - minY
	scale := 1.0
	switch {
	case w > 0 && h > 0:
		scale = math.Min(float64(cols-1)/w, float64(rows-1)/h)
	case w > 0:
		scale = float64(cols-1) / w
	case h > 0:
		scale = float64(rows-1) / h
	}

	plot := func(x, y float64) {
		c := int(math.Round((x - minX) * 2 * scale))
		r := rows - 1 - int(math.Round((y-minY)*scale))
		if c >= 0 && c < cols && r >= 0 && r < rows {
			grid[r][c] = '•'
		}
	}
	for _, s := range segs {
		x0, y0 := s.Start[0], s.Start[1]
		x1, y1 := s.End[0], s.End[1]
		steps := int(math.Max(math.Abs(x1-x0)*2*scale, math.Abs(y1-y0)*scale)) + 1
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			plot(x0+(x1-x0)*t, y0+(y1-y0)*t)
		}
	}
	return joinRows(grid)
}

func joinRows(grid [][]rune) []string {
	out := make([]string, len(grid))
	for i, row := range grid {
		out[i] = string(row)
	}
	return out
}
