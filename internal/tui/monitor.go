// Package tui renders the live metrics view. The model polls the shared
// store on a fixed cadence; the capture callback keeps overwriting the
// snapshot between ticks and is never blocked by rendering.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"soundscope/internal/metrics"
)

// updateInterval is the display refresh cadence.
const updateInterval = 100 * time.Millisecond

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#25A065")).
			Bold(true)
)

type tickMsg time.Time

// MonitorModel is the Bubble Tea model for the live metrics view.
type MonitorModel struct {
	store      *metrics.Store
	deviceName string
	sampleRate float64
	snap       metrics.Snapshot
	quitKeys   key.Binding
}

// NewMonitorModel builds the model around the store the capture engine
// publishes into.
func NewMonitorModel(store *metrics.Store, deviceName string, sampleRate float64) MonitorModel {
	return MonitorModel{
		store:      store,
		deviceName: deviceName,
		sampleRate: sampleRate,
		quitKeys:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// Init starts the refresh ticker.
func (m MonitorModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(updateInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update takes the latest snapshot on each tick and handles quit keys.
func (m MonitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.snap = m.store.Snapshot()
		return m, tick()

	case tea.KeyMsg:
		if key.Matches(msg, m.quitKeys) {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the header, the metrics report and the help line.
func (m MonitorModel) View() string {
	header := titleStyle.Render("soundscope")
	source := infoStyle.Render(fmt.Sprintf("%s @ %.0f Hz", m.deviceName, m.sampleRate))
	help := infoStyle.Render("q: Quit")

	return fmt.Sprintf("%s  %s\n\n%s\n%s\n", header, source, renderReport(m.snap), help)
}

// StartMonitor runs the live view in the alternate screen until the
// user quits.
func StartMonitor(store *metrics.Store, deviceName string, sampleRate float64) error {
	p := tea.NewProgram(
		NewMonitorModel(store, deviceName, sampleRate),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
