package stoolwalk

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	replayTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	replayStatusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	replayFellStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	replayUprightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	replayHelpStyle    = lipgloss.NewStyle().Faint(true)
)

// tickMsg advances an autoplaying replay by one frame.
type tickMsg struct{}

// Replay plays a recorded walk back in the terminal, one half-step at a
// time. Space toggles autoplay, n/right and p/left step through frames,
// r rewinds, q quits.
//
// Replay is a plain bubbletea model; drive it with tea.NewProgram, or call
// Update and View directly in tests.
type Replay struct {
	trace    *Trace
	cursor   int
	playing  bool
	width    int           // columns of floor in the side view
	interval time.Duration // autoplay frame interval
}

// NewReplay builds a replay over a recorded trace, positioned at the
// starting pose.
func NewReplay(trace *Trace) Replay {
	return Replay{
		trace:    trace,
		width:    72,
		interval: 80 * time.Millisecond,
	}
}

// Cursor returns the index of the frame currently shown.
func (r Replay) Cursor() int {
	return r.cursor
}

// CurrentFrame returns the frame currently shown.
func (r Replay) CurrentFrame() Frame {
	if r.trace.Len() == 0 {
		return Frame{}
	}
	return r.trace.Frames()[r.cursor]
}

// Init implements tea.Model.
func (r Replay) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (r Replay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return r, tea.Quit
		case " ":
			r.playing = !r.playing
			if r.playing {
				return r, r.tick()
			}
		case "n", "right":
			if r.cursor < r.trace.Len()-1 {
				r.cursor++
			}
		case "p", "left":
			if r.cursor > 0 {
				r.cursor--
			}
		case "r":
			r.cursor = 0
			r.playing = false
		}
	case tickMsg:
		if !r.playing {
			break
		}
		if r.cursor < r.trace.Len()-1 {
			r.cursor++
			return r, r.tick()
		}
		r.playing = false
	}
	return r, nil
}

// View implements tea.Model.
func (r Replay) View() string {
	var b strings.Builder

	b.WriteString(replayTitleStyle.Render("stoolwalk replay"))
	b.WriteString("\n\n")

	frame := r.CurrentFrame()
	b.WriteString(r.renderStool(frame))
	b.WriteString("\n")

	status := fmt.Sprintf("frame %d/%d  %s  t=%.0f  distance=%.2f  tilt=%.5f",
		r.cursor+1, r.trace.Len(), frame.Phase, frame.Elapsed, frame.Distance, frame.Tilt)
	b.WriteString(replayStatusStyle.Render(status))
	b.WriteString("\n")

	if r.cursor == r.trace.Len()-1 {
		if err := r.trace.Outcome(); err != nil {
			b.WriteString(replayFellStyle.Render(err.Error()))
		} else {
			b.WriteString(replayUprightStyle.Render("the stool is still standing"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(replayHelpStyle.Render("space play/pause · n/p step · r rewind · q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderStool draws the side view: seat bar, the two leg pairs, and the
// floor, with the camera tracking the seat midpoint.
func (r Replay) renderStool(f Frame) string {
	span := (f.SeatFront - f.SeatBack) * 2
	if span <= 0 {
		span = 4
	}
	left := f.SeatMidpoint() - span/2

	col := func(pos float64) int {
		c := int((pos - left) / span * float64(r.width))
		if c < 0 {
			c = 0
		}
		if c >= r.width {
			c = r.width - 1
		}
		return c
	}

	seat := make([]rune, r.width)
	legs := make([]rune, r.width)
	for i := range seat {
		seat[i] = ' '
		legs[i] = ' '
	}
	for i := col(f.SeatBack); i <= col(f.SeatFront); i++ {
		seat[i] = '='
	}
	legs[col(f.BackLeg)] = '|'
	legs[col(f.FrontLeg)] = '|'

	var b strings.Builder
	b.WriteString(string(seat))
	b.WriteString("\n")
	b.WriteString(string(legs))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", r.width))
	b.WriteString("\n")
	return b.String()
}

func (r Replay) tick() tea.Cmd {
	return tea.Tick(r.interval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
