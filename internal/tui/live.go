package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrStopped reports that the user quit the view before the evaluation
// finished.
var ErrStopped = errors.New("stopped before completion")

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Progress reports the state of a chunked evaluation. Sample carries the
// values computed by the latest chunk for the live trace.
type Progress struct {
	Done   int
	Total  int
	Sample []float64
	Err    error
}

type doneMsg struct{}

type model struct {
	title   string
	backend string
	ch      <-chan Progress

	done    int
	total   int
	history []float64
	start   time.Time
	err     error
	stopped bool

	width int
}

func newModel(title, backend string, total int, ch <-chan Progress) model {
	return model{
		title:   title,
		backend: backend,
		ch:      ch,
		total:   total,
		history: make([]float64, 0, 256),
		start:   time.Now(),
		width:   80,
	}
}

func (m model) Init() tea.Cmd { return m.wait() }

func (m model) wait() tea.Cmd {
	return func() tea.Msg {
		p, ok := <-m.ch
		if !ok {
			return doneMsg{}
		}
		return p
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "escape":
			m.stopped = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case Progress:
		m.done = msg.Done
		if msg.Total > 0 {
			m.total = msg.Total
		}
		m.history = append(m.history, msg.Sample...)
		if len(m.history) > 512 {
			m.history = m.history[len(m.history)-512:]
		}
		if msg.Err != nil {
			m.err = msg.Err
			return m, tea.Quit
		}
		return m, m.wait()
	case doneMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("evaluating")
	if m.err != nil {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("failed")
	} else if m.done >= m.total {
		statusText = green.Render("done")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s  %s\n",
		statusIcon, cyan.Render(m.title), dim.Render(m.backend), statusText))

	progress := 0.0
	if m.total > 0 {
		progress = float64(m.done) / float64(m.total)
	}
	if progress > 1 {
		progress = 1
	}
	barWidth := 36
	filled := int(progress * float64(barWidth))
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))

	elapsed := time.Since(m.start).Seconds()
	rate := 0.0
	if elapsed > 0 {
		rate = float64(m.done) / elapsed
	}
	countStr := fmt.Sprintf("%d/%d", m.done, m.total)
	b.WriteString(fmt.Sprintf("   %s %s  %s\n",
		bar, dim.Render(countStr), dim.Render(fmt.Sprintf("%.0f pt/s", rate))))

	if len(m.history) > 1 {
		spark := sparkline(m.history, 48)
		b.WriteString(fmt.Sprintf("\n   %s %s\n", dim.Render("trace"), cyan.Render(spark)))
	}

	if m.err != nil {
		b.WriteString("\n   " + yellow.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n" + dim.Render("   q quit") + "\n")

	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		v := data[i*step]
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

// runErr reports how the view ended. Quitting before the evaluation is done
// counts as a failure so callers never mistake a partial run for a result.
func (m model) runErr() error {
	if m.err != nil {
		return m.err
	}
	if m.stopped && m.done < m.total {
		return ErrStopped
	}
	return nil
}

// RunLive drives the progress view until ch closes or the user quits. The
// producer owns the channel and must close it when the evaluation finishes.
func RunLive(title, backend string, total int, ch <-chan Progress) error {
	p := tea.NewProgram(newModel(title, backend, total, ch))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok {
		return m.runErr()
	}
	return nil
}
