package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// MonitorVoltage shows a live-updating readout while run streams voltage
// measurements. run is started on its own goroutine and must call sample
// once per measurement, stopping when sample returns false; the display
// ends when run returns or the user quits. On a user quit the sample path
// is released so run can finish and close its connection.
func MonitorVoltage(title string, run func(sample func(string) bool) error) error {
	samples := make(chan string)
	done := make(chan error, 1)
	quit := make(chan struct{})
	go func() {
		done <- run(func(m string) bool {
			select {
			case samples <- m:
				return true
			case <-quit:
				return false
			}
		})
	}()

	m := voltageModel{
		title:   title,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  DefaultStyles(),
		samples: samples,
		done:    done,
	}
	final, err := tea.NewProgram(m).Run()
	close(quit)
	if err != nil {
		return err
	}
	if vm, ok := final.(voltageModel); ok && vm.finished {
		return vm.err
	}
	return nil
}

type voltageSampleMsg string

type voltageDoneMsg struct{ err error }

type voltageModel struct {
	title    string
	spinner  spinner.Model
	styles   Styles
	latest   string
	finished bool
	err      error
	samples  <-chan string
	done     <-chan error
}

func (m voltageModel) nextSample() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-m.samples:
			return voltageSampleMsg(s)
		case err := <-m.done:
			return voltageDoneMsg{err: err}
		}
	}
}

func (m voltageModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.nextSample())
}

func (m voltageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case voltageSampleMsg:
		m.latest = string(msg)
		return m, m.nextSample()
	case voltageDoneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m voltageModel) View() string {
	if m.finished {
		return ""
	}
	value := m.latest
	if value == "" {
		value = "waiting for measurement"
	}
	return fmt.Sprintf("%s\n\n %s %s\n\n%s\n",
		m.styles.Title.Render(m.title),
		m.spinner.View(),
		m.styles.Highlight.Render(value),
		m.styles.Muted.Render("q to quit"),
	)
}
