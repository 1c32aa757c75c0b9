package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/fourier/internal/fourier"
	"github.com/san-kum/fourier/internal/viz"
)

const (
	maxTerms  = 64
	minPoints = 8
	maxPoints = 4096
)

var (
	cyan = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	red  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type model struct {
	initial fourier.Config
	cfg     fourier.Config
	result  *fourier.Result
	err     error

	width  int
	height int
}

// NewExplorer returns the explorer model starting from cfg.
func NewExplorer(cfg fourier.Config) model {
	if cfg.Mode == "" {
		cfg.Mode = fourier.ModeNotebook
	}
	m := model{initial: cfg, cfg: cfg, width: 80, height: 24}
	m.recompute()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "+", "=", "right", "l":
		if m.cfg.Terms < maxTerms {
			m.cfg.Terms++
		}
	case "-", "_", "left", "h":
		if m.cfg.Terms > 0 {
			m.cfg.Terms--
		}
	case "up", "k":
		m.cfg.Points = min(max(m.cfg.Points*2, minPoints), maxPoints)
	case "down", "j":
		m.cfg.Points = max(m.cfg.Points/2, minPoints)
	case "m", " ":
		if m.cfg.Mode == fourier.ModeCanonical {
			m.cfg.Mode = fourier.ModeNotebook
		} else {
			m.cfg.Mode = fourier.ModeCanonical
		}
	case "r":
		m.cfg = m.initial
	default:
		return m, nil
	}
	m.recompute()
	return m, nil
}

func (m *model) recompute() {
	m.result, m.err = fourier.Run(context.Background(), m.cfg)
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + cyan.Render("f o u r i e r") + "  " +
		dim.Render(fmt.Sprintf("mode %s   terms %d   points %d", m.cfg.Mode, m.cfg.Terms, m.cfg.Points)) + "\n")
	b.WriteString("  " + viz.Separator(max(m.width-4, 10)) + "\n\n")

	if m.err != nil {
		b.WriteString("  " + red.Render(m.err.Error()) + "\n")
	} else if m.result != nil {
		w := max(m.width-12, 30)
		h := max(m.height-16, 6)
		plot := viz.PlotOverlay(m.result.Target, m.result.Series, viz.PlotOptions{Height: h, Width: w})
		if plot == "" {
			plot = dim.Render("no samples")
		}
		b.WriteString(plot + "\n\n")
		b.WriteString(m.coefficientLine() + "\n")
		b.WriteString(viz.FormatMetrics(m.result.Metrics))
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("  ←→ terms   ↑↓ points   m mode   r reset   q quit") + "\n")

	return b.String()
}

// coefficientLine shows |a_k| as a sparkline.
func (m model) coefficientLine() string {
	a, _, err := m.result.Coefficients.Floats()
	if err != nil || len(a) == 0 {
		return ""
	}
	mags := make([]float64, len(a))
	for k, v := range a {
		mags[k] = math.Abs(v)
	}
	return "  " + viz.MetricLabel.Render("|a_k| ") + viz.SparklineChart(mags, len(mags))
}

func RunExplorer(cfg fourier.Config) error {
	p := tea.NewProgram(NewExplorer(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
