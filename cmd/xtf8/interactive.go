package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/xtf8/hexdump"
	"github.com/wippyai/xtf8/jsonesc"
	"github.com/wippyai/xtf8/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	output   []byte
	input    textinput.Model
	decode   bool
	json     bool
	hexInput bool
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "type text, or hex bytes after ctrl+x"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	m := &interactiveModel{input: ti}
	m.transform()
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.decode = !m.decode
			m.transform()
			return m, nil

		case "ctrl+j":
			m.json = !m.json
			m.transform()
			return m, nil

		case "ctrl+x":
			m.hexInput = !m.hexInput
			m.transform()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.transform()
	return m, cmd
}

// transform recomputes the output for the current input and toggles.
// Everything is synchronous; the codec is cheap enough to rerun per
// keystroke.
func (m *interactiveModel) transform() {
	m.output = nil
	m.err = nil

	src := []byte(m.input.Value())
	if m.hexInput {
		cleaned := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' {
				return -1
			}
			return r
		}, m.input.Value())
		var err error
		src, err = hex.DecodeString(cleaned)
		if err != nil {
			m.err = fmt.Errorf("hex input: %w", err)
			return
		}
	}

	if m.decode {
		if m.json {
			var err error
			src, err = jsonesc.UnescapeBytes(src)
			if err != nil {
				m.err = err
				return
			}
		}
		m.output, m.err = transcoder.DecodeBytes(src, transcoder.Replace)
		return
	}

	out, err := transcoder.EncodeBytes(src, transcoder.Replace)
	if err != nil {
		m.err = err
		return
	}
	if m.json {
		out = jsonesc.EscapeBytes(out)
	}
	m.output = out
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("XTF8 Codec"))
	b.WriteString("  ")
	mode := "encode"
	if m.decode {
		mode = "decode"
	}
	b.WriteString(modeStyle.Render(mode))
	if m.json {
		b.WriteString(modeStyle.Render(" +json"))
	}
	if m.hexInput {
		b.WriteString(labelStyle.Render(" [hex input]"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else {
		b.WriteString(labelStyle.Render(fmt.Sprintf("output (%d bytes):", len(m.output))))
		b.WriteString("\n")
		b.WriteString(resultStyle.Render(fmt.Sprintf("%q", m.output)))
		b.WriteString("\n\n")
		b.WriteString(hexdump.String(m.output))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab encode/decode • ctrl+j json • ctrl+x hex input • esc quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel())
	_, err := p.Run()
	return err
}
