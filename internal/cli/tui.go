package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/referlab/refnet/pkg/growth"
)

// =============================================================================
// SimModel - Live simulation playback
// =============================================================================

// tickMsg advances the playback by one day.
type tickMsg time.Time

// frameInterval is the playback speed: one simulated day per frame.
const frameInterval = 50 * time.Millisecond

// SimModel is the bubbletea model that plays a finished simulation back one
// day at a time. The run itself completes before playback starts, so quitting
// early never loses data.
type SimModel struct {
	Totals   []float64
	Max      float64
	P        float64
	Expected bool

	day  int
	done bool
}

// NewSimModel creates a playback model for a simulated trajectory.
func NewSimModel(totals []float64, max float64, p float64, expected bool) SimModel {
	return SimModel{Totals: totals, Max: max, P: p, Expected: expected}
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m SimModel) Init() tea.Cmd {
	return tick()
}

func (m SimModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		if m.day < len(m.Totals) {
			m.day++
		}
		if m.day >= len(m.Totals) {
			m.done = true
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

func (m SimModel) View() string {
	var b strings.Builder

	mode := "stochastic"
	if m.Expected {
		mode = "expected"
	}
	b.WriteString(StyleTitle.Render("Referral Growth Simulation"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("p=%g · %s · q quit", m.P, mode)))
	b.WriteString("\n\n")

	total := 0.0
	if m.day > 0 {
		total = m.Totals[m.day-1]
	}

	b.WriteString(fmt.Sprintf("Day %s of %s\n",
		StyleNumber.Render(fmt.Sprintf("%d", m.day)),
		StyleValue.Render(fmt.Sprintf("%d", len(m.Totals)))))
	b.WriteString(fmt.Sprintf("Total referrals: %s\n\n", StyleNumber.Render(fmt.Sprintf("%.1f", total))))

	b.WriteString(renderBar(total, m.Max, 50))
	b.WriteString("\n")

	if m.done {
		b.WriteString("\n" + StyleSuccess.Render("Simulation complete") + "\n")
	}
	return b.String()
}

// renderBar draws a fixed-width progress bar for value against max.
func renderBar(value, max float64, width int) string {
	if max <= 0 {
		max = 1
	}
	filled := int(value / max * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return StyleNumber.Render(bar) + StyleDim.Render(fmt.Sprintf(" %.0f%%", value/max*100))
}

// runLiveSimulation runs the simulation, then plays the trajectory back in
// the terminal one day at a time.
func runLiveSimulation(ctx context.Context, sim *growth.Simulator, p float64, days int, expected bool) error {
	_, totals, err := runSimulation(sim, p, days, expected)
	if err != nil {
		return err
	}

	model := NewSimModel(totals, float64(sim.MaxTotal()), p, expected)
	prog := tea.NewProgram(model, tea.WithContext(ctx))
	_, err = prog.Run()
	return err
}
