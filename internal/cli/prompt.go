package cli

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sessilelab/dropletgen/pkg/errors"
)

// PromptSelection holds the result of the interactive prompt.
type PromptSelection struct {
	Angle  float64
	Output string
}

// promptField indexes the editable fields of the prompt.
type promptField int

const (
	fieldAngle promptField = iota
	fieldOutput
	fieldCount
)

// promptModel is the bubbletea model for the interactive generate prompt,
// used when generate is invoked without --angle.
type promptModel struct {
	inputs   [fieldCount]string
	focus    promptField
	errMsg   string
	selected *PromptSelection
}

func newPromptModel() promptModel {
	return promptModel{}
}

func (m promptModel) Init() tea.Cmd {
	return nil
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount
	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount

	case "enter":
		if m.focus < fieldCount-1 {
			m.focus++
			return m, nil
		}
		angle, err := parseAngle(m.inputs[fieldAngle])
		if err != nil {
			m.errMsg = errors.UserMessage(err)
			m.focus = fieldAngle
			return m, nil
		}
		m.selected = &PromptSelection{
			Angle:  angle,
			Output: strings.TrimSpace(m.inputs[fieldOutput]),
		}
		return m, tea.Quit

	case "backspace":
		if s := m.inputs[m.focus]; len(s) > 0 {
			m.inputs[m.focus] = s[:len(s)-1]
		}

	default:
		if key.Type == tea.KeyRunes {
			m.inputs[m.focus] += string(key.Runes)
			m.errMsg = ""
		}
	}
	return m, nil
}

func (m promptModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Generate Droplet"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("tab next field  ⏎ confirm  esc quit"))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Contact angle (°)", "Output file (optional)"}
	for i := promptField(0); i < fieldCount; i++ {
		cursor := "  "
		if i == m.focus {
			cursor = "▸ "
		}
		b.WriteString(cursor + StyleValue.Render(labels[i]) + ": " + m.inputs[i])
		if i == m.focus {
			b.WriteString("▏")
		}
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + StyleWarning.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// parseAngle parses and validates an angle entered at the prompt.
func parseAngle(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New(errors.ErrCodeInvalidParameter, "enter a contact angle")
	}
	angle, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidParameter, "%q is not a number", s)
	}
	if err := errors.ValidateAngle(angle); err != nil {
		return 0, err
	}
	return angle, nil
}

// runPrompt runs the interactive prompt and returns the selection, or
// nil when the user cancelled.
func runPrompt() (*PromptSelection, error) {
	final, err := tea.NewProgram(newPromptModel()).Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(promptModel)
	if !ok {
		return nil, nil
	}
	return m.selected, nil
}
