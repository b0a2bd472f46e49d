// cli/cli.go

// Package cli implements the interactive statcli browser: choose a file,
// choose an operation, read the result next to the values it was computed
// from.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/statcli/dataset"
	"github.com/mwiater/statcli/report"
	"github.com/mwiater/statcli/stats"
)

// Options configures the browser.
type Options struct {
	// Input is loaded immediately when set; otherwise the user is asked for a path.
	Input string
	// Lang selects labels and messages.
	Lang report.Language
	// Precision is the number of significant digits shown for results.
	Precision int
	// Debug writes bubbletea debug logs to statcli-debug.log.
	Debug bool
}

// viewState represents the current state of the browser's view.
type viewState int

const (
	viewPathInput         viewState = iota // viewPathInput asks for the input file.
	viewLoading                            // viewLoading is shown while the file is read.
	viewOperationSelector                  // viewOperationSelector lists the operations.
	viewResult                             // viewResult shows the computed value and the sample.
)

// model holds all browser state.
type model struct {
	opts      Options
	state     viewState
	isLoading bool
	err       error

	pathInput textarea.Model
	opList    list.Model
	viewport  viewport.Model
	spinner   spinner.Model

	path       string
	sample     stats.Sample
	ingest     dataset.Report
	selectedOp stats.Operation
	result     float64

	width, height    int
	requestStartTime time.Time
}

// item is an operation entry in the selector list.
type item struct {
	op    stats.Operation
	title string
	desc  string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return string(i.op) }

// sampleLoadedMsg is sent when the input file has been read.
type sampleLoadedMsg struct {
	sample stats.Sample
	report dataset.Report
}

// sampleLoadErr is sent when the input file could not be read.
type sampleLoadErr error

// loadSampleCmd reads path off the update loop.
func loadSampleCmd(path string) tea.Cmd {
	return func() tea.Msg {
		sample, rep, err := dataset.Load(path)
		if err != nil {
			return sampleLoadErr(err)
		}
		return sampleLoadedMsg{sample: sample, report: rep}
	}
}

// initialModel builds the browser model. When opts.Input is set the model
// starts in the loading state.
func initialModel(opts Options) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ta := textarea.New()
	ta.Placeholder = "data.txt"
	ta.Prompt = "File: "
	ta.ShowLineNumbers = false
	ta.CharLimit = -1
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	ops := stats.Operations()
	items := make([]list.Item, len(ops))
	for i, op := range ops {
		items[i] = item{op: op, title: report.Label(opts.Lang, op), desc: report.Description(opts.Lang, op)}
	}
	opList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	opList.Title = "Select an operation"

	m := &model{
		opts:      opts,
		state:     viewPathInput,
		spinner:   s,
		pathInput: ta,
		opList:    opList,
		viewport:  viewport.New(80, 5),
	}
	if opts.Input != "" {
		m.path = opts.Input
		m.state = viewLoading
		m.isLoading = true
		m.requestStartTime = time.Now()
	}
	return m
}

// Init starts the spinner and, when a path is already known, the load.
func (m *model) Init() tea.Cmd {
	if m.state == viewLoading {
		return tea.Batch(m.spinner.Tick, loadSampleCmd(m.path))
	}
	return textarea.Blink
}

// Update handles incoming messages and advances the browser state.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.state != viewPathInput || m.err != nil {
				return m, tea.Quit
			}
		case "esc":
			if m.err != nil {
				m.err = nil
				m.state = viewPathInput
				m.pathInput.Focus()
				return m, nil
			}
		case "tab":
			if m.state == viewResult {
				m.state = viewOperationSelector
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.opList.SetSize(msg.Width-2, msg.Height-4)
		m.pathInput.SetWidth(msg.Width - 3)
		headerHeight := 5
		footerHeight := 2
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight

	case sampleLoadedMsg:
		m.isLoading = false
		m.sample = msg.sample
		m.ingest = msg.report
		m.opList.Title = fmt.Sprintf("Select an operation for %s (%d values)", m.path, len(m.sample))
		m.state = viewOperationSelector
		return m, nil

	case sampleLoadErr:
		m.isLoading = false
		m.err = msg
		m.state = viewPathInput
		return m, nil
	}

	switch m.state {
	case viewPathInput:
		m.pathInput, cmd = m.pathInput.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
			if path := strings.TrimSpace(m.pathInput.Value()); path != "" {
				m.path = path
				m.err = nil
				m.state = viewLoading
				m.isLoading = true
				m.requestStartTime = time.Now()
				m.pathInput.Blur()
				cmds = append(cmds, m.spinner.Tick, loadSampleCmd(path))
			}
		}

	case viewOperationSelector:
		m.opList, cmd = m.opList.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
			if selected, ok := m.opList.SelectedItem().(item); ok {
				m.selectedOp = selected.op
				v, err := stats.Compute(selected.op, m.sample)
				if err != nil {
					m.err = err
					return m, nil
				}
				m.result = v
				m.state = viewResult
				m.viewport.SetContent(m.sampleView())
				m.viewport.GotoTop()
			}
		}

	case viewResult:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.isLoading {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the browser based on its current state.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
		help := lipgloss.NewStyle().Faint(true).Render("  (esc to choose another file, q to quit)")
		return errorStyle.Render(fmt.Sprintf("Error: %s", report.Message(m.opts.Lang, m.err))) + "\n" + help
	}

	switch m.state {
	case viewPathInput:
		title := lipgloss.NewStyle().Bold(true).Render("Which file should be read?")
		return lipgloss.NewStyle().Margin(1, 2).Render(title + "\n\n" + m.pathInput.View())

	case viewLoading:
		timer := fmt.Sprintf("%.1f", time.Since(m.requestStartTime).Seconds())
		return fmt.Sprintf("\n  %s Loading %s... %ss\n", m.spinner.View(), m.path, timer)

	case viewOperationSelector:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.opList.View())

	case viewResult:
		return m.resultView()

	default:
		return "Unknown state"
	}
}

// resultView renders the header, the result line and the scrollable sample.
func (m *model) resultView() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	status := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render(fmt.Sprintf("File: %s", m.path)),
		headerStyle.MarginLeft(1).Render(fmt.Sprintf("Values: %d", len(m.sample))),
	)
	help := lipgloss.NewStyle().Faint(true).Render(" (tab to change operation, q to quit)")
	b.WriteString(status + help + "\n\n")

	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")).Render(report.Label(m.opts.Lang, m.selectedOp) + ":")
	b.WriteString(label + " " + report.FormatValue(m.result, m.opts.Precision) + "\n\n")

	b.WriteString(m.viewport.View())
	return b.String()
}

// sampleView lists the sample values one per line, followed by any ingest
// warnings.
func (m *model) sampleView() string {
	var b strings.Builder
	for i, v := range m.sample {
		fmt.Fprintf(&b, "%4d  %s\n", i+1, report.FormatValue(v, m.opts.Precision))
	}

	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	if m.ingest.Truncated {
		b.WriteString(warn.Render(fmt.Sprintf("only the first %d values were kept", dataset.MaxValues)) + "\n")
	}
	if m.ingest.Malformed != "" {
		b.WriteString(warn.Render(fmt.Sprintf("reading stopped at %q", m.ingest.Malformed)) + "\n")
	}
	return b.String()
}

// StartBrowser runs the interactive browser until the user quits.
func StartBrowser(opts Options) error {
	if opts.Debug {
		f, err := tea.LogToFile("statcli-debug.log", "debug")
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer f.Close()
	}

	p := tea.NewProgram(initialModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}
