package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/docforge/convertd/convert"
	"github.com/docforge/convertd/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2F6F4F")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Convert documents in a TUI session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		return runInteractive(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

type sessionState int

const (
	stateInput sessionState = iota
	stateConverting
	stateDone
)

type convertedMsg struct {
	err     error
	summary string
}

type interactiveModel struct {
	ctx      context.Context
	inputs   []textinput.Model
	focusIdx int
	state    sessionState
	result   string
	err      error
}

func newInteractiveModel(ctx context.Context) *interactiveModel {
	file := textinput.New()
	file.Prompt = "file: "
	file.Placeholder = "path/to/document.docx"
	file.Width = 48
	file.Focus()

	target := textinput.New()
	target.Prompt = "to:   "
	target.Placeholder = "pdf (empty keeps the binary form)"
	target.Width = 48

	return &interactiveModel{
		ctx:    ctx,
		inputs: []textinput.Model{file, target},
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInput || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "tab":
			if m.state == stateInput {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "enter":
			switch m.state {
			case stateInput:
				m.state = stateConverting
				return m, m.runConversion
			case stateDone:
				m.state = stateInput
				m.result = ""
				m.err = nil
			}

		case "esc":
			if m.state == stateDone {
				m.state = stateInput
				m.result = ""
				m.err = nil
			}
		}

	case convertedMsg:
		m.state = stateDone
		m.result = msg.summary
		m.err = msg.err
	}

	if m.state == stateInput {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) runConversion() tea.Msg {
	path := strings.TrimSpace(m.inputs[0].Value())
	target := strings.TrimSpace(m.inputs[1].Value())

	data, err := os.ReadFile(path)
	if err != nil {
		return convertedMsg{err: err}
	}

	outDir := filepath.Dir(path)
	s, err := newSession(m.ctx, outDir)
	if err != nil {
		return convertedMsg{err: err}
	}
	defer s.close(m.ctx)

	name := filepath.Base(path)
	res, err := s.orch.DocumentToBinary(m.ctx, name, data)
	if err != nil {
		return convertedMsg{err: err}
	}

	if target != "" {
		final, err := s.orch.BinaryToDocument(m.ctx, res.Payload, name, target)
		if errors.IsCancelled(err) {
			return convertedMsg{summary: "save cancelled"}
		}
		if err != nil {
			return convertedMsg{err: err}
		}
		return convertedMsg{summary: summarize(outDir, final, res.Media)}
	}

	out := filepath.Join(outDir, res.OutputFileName)
	if err := os.WriteFile(out, res.Payload, 0o644); err != nil {
		return convertedMsg{err: err}
	}
	return convertedMsg{summary: summarize(outDir, res, res.Media)}
}

func summarize(outDir string, res *convert.Result, media map[string][]byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s, %d bytes",
		filepath.Join(outDir, res.OutputFileName), res.Category, len(res.Payload))
	if len(media) > 0 {
		keys := make([]string, 0, len(media))
		for k := range media {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(&b, "\nmedia: %s", strings.Join(keys, ", "))
	}
	return b.String()
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("convertd"))
	b.WriteString("\n\n")

	switch m.state {
	case stateInput:
		b.WriteString(labelStyle.Render("Convert a document"))
		b.WriteString("\n\n")
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter convert • ctrl+c quit"))

	case stateConverting:
		b.WriteString("Converting...")

	case stateDone:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter again • q quit"))
	}

	return b.String()
}

func runInteractive(ctx context.Context) error {
	p := tea.NewProgram(newInteractiveModel(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
