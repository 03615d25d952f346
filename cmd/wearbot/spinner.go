package main

import (
	"context"
	"fmt"
	"os"

	// Packages
	spinner "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	lipgloss "github.com/charmbracelet/lipgloss"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// spinnerModel shows a single status line until it receives doneMsg
type spinnerModel struct {
	spinner spinner.Model
	text    string
	done    bool
}

type doneMsg struct{}

var (
	boldStyle = lipgloss.NewStyle().Bold(true)
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newSpinnerModel(text string) *spinnerModel {
	return &spinnerModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		text:    text,
	}
}

// startSpinner displays a spinner with the text on w while a request runs,
// and returns a function which clears it. When w is not a terminal the text
// is not shown.
func startSpinner(ctx context.Context, w *os.File, text string) func() {
	if !term.IsTerminal(int(w.Fd())) {
		return func() {}
	}

	p := tea.NewProgram(newSpinnerModel(text),
		tea.WithContext(ctx),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()

	return func() {
		p.Send(doneMsg{})
		<-done
	}
}

///////////////////////////////////////////////////////////////////////////////
// tea.Model IMPLEMENTATION

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.text
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func fetchingText(city string) string {
	return fmt.Sprintf("Fetching weather for %s and generating advice…", boldStyle.Render(city))
}
