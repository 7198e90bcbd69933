package main

import (
	"flag"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/scalindent/editor"
	"github.com/iw2rmb/scalindent/indent"
)

const sampleText = `package demo

object Greeter {
  def greet(name: String): String = {
    val message =
      if (name.isEmpty)
        "hello, world"
      else
        "hello, " + name
    message
  }

  def classify(n: Int): String = n match {
    case 0 =>
      "zero"
    case x if x > 0 =>
      "positive"
    case _ =>
      "negative"
  }
}
`

var helpStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1).
	Foreground(lipgloss.Color("250"))

type model struct {
	editor   editor.Model
	showHelp bool
	width    int
	height   int
}

func newModel(opts *indent.Options) model {
	cfg := editor.Config{
		Text:         sampleText,
		ShowLineNums: true,
		ShowStatus:   true,
		Style:        editor.DefaultStyle(),
		Indent:       opts,
	}
	return model{editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Reserve one row for the status line.
		m.editor = m.editor.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+g":
			m.showHelp = !m.showHelp
			return m, nil
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	base := m.editor.View()
	if !m.showHelp {
		return base
	}
	help := helpStyle.Render(helpText())
	x := (m.width - lipgloss.Width(help)) / 2
	y := (m.height - lipgloss.Height(help)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return overlay.Composite(help, base, overlay.Left, overlay.Top, x, y)
}

func helpText() string {
	lines := []string{
		"tab      indent line (repeat toggles strategy)",
		"ctrl+t   rotate run-on strategy",
		"alt+i    reindent whole buffer",
		"ctrl+z   undo",
		"ctrl+y   redo",
		"ctrl+g   toggle this help",
		"ctrl+c   quit",
	}
	return strings.Join(lines, "\n")
}

func main() {
	configPath := flag.String("config", "", "path to a YAML indentation options file")
	flag.Parse()

	var opts *indent.Options
	if *configPath != "" {
		loaded, err := indent.LoadOptionsFile(*configPath)
		if err != nil {
			_, _ = os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(1)
		}
		opts = &loaded
	}

	p := tea.NewProgram(newModel(opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
