package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/radix"
	rxlog "github.com/msto63/radix/core/log"
)

// Direction selects which way the converter translates input.
type Direction int

const (
	DirectionEncode Direction = iota
	DirectionDecode
)

func (d Direction) String() string {
	if d == DirectionDecode {
		return "dekodieren"
	}
	return "kodieren"
}

// entry is one line of converter history.
type entry struct {
	input  string
	output string
	note   string
	dir    Direction
	err    error
}

// Converter is the interactive conversion model. Input is encoded into
// the target system; input that only reads as a numeral of the target
// system is decoded instead, and Tab pins the direction.
type Converter struct {
	r   *radix.Radix
	dec *radix.Radix
	log *rxlog.Logger

	dir     Direction
	width   int
	height  int
	ready   bool
	history []entry

	textarea textarea.Model
	viewport viewport.Model
}

// NewConverter creates the interactive converter for the given system.
func NewConverter(r *radix.Radix, log *rxlog.Logger) Converter {
	ta := textarea.New()
	ta.Placeholder = "Zahl eingeben..."
	ta.Focus()
	ta.CharLimit = 200
	ta.SetWidth(80)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	log.Debug("Konverter gestartet", rxlog.Int("basis", r.Base()))

	return Converter{
		r:        r,
		dec:      radix.Decimal(),
		log:      log,
		dir:      DirectionEncode,
		textarea: ta,
	}
}

// Init initializes the model
func (c Converter) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (c Converter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			c.log.Debug("Konverter beendet", rxlog.Int("eingaben", len(c.history)))
			return c, tea.Quit

		case "tab":
			c.dir = (c.dir + 1) % 2
			c.updatePlaceholder()
			return c, nil

		case "enter":
			input := strings.TrimSpace(c.textarea.Value())
			if input != "" {
				e := c.convert(input)
				c.history = append(c.history, e)
				c.textarea.Reset()
				c.logEntry(e)
				c.updateContent()
			}
			return c, nil

		case "ctrl+l":
			c.history = nil
			c.updateContent()
			return c, nil
		}

	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height

		if !c.ready {
			c.viewport = viewport.New(msg.Width, msg.Height-10)
			c.viewport.YPosition = 3
			c.ready = true
		} else {
			c.viewport.Width = msg.Width
			c.viewport.Height = msg.Height - 10
		}
		c.textarea.SetWidth(msg.Width - 4)
		c.updateContent()
	}

	// Update components
	c.textarea, cmd = c.textarea.Update(msg)
	cmds = append(cmds, cmd)

	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// convert translates one input according to the pinned direction. In
// encode mode an input the decimal reader rejects gets a second chance
// as a numeral of the target system.
func (c *Converter) convert(input string) entry {
	e := entry{input: input, dir: c.dir}

	if c.dir == DirectionDecode {
		e.output, e.err = c.decode(input)
		return e
	}

	out, err := c.r.Encode(input, "")
	if err == nil {
		e.output = out
		return e
	}

	if out, decErr := c.decode(input); decErr == nil {
		e.output = out
		e.note = "dekodiert"
		e.dir = DirectionDecode
		return e
	}

	e.err = err
	return e
}

func (c *Converter) decode(input string) (string, error) {
	v, err := c.r.Decode(input)
	if err != nil {
		return "", err
	}
	return c.dec.EncodeDecimal(v, "")
}

func (c *Converter) logEntry(e entry) {
	if e.err != nil {
		c.log.Debug("Konvertierung fehlgeschlagen",
			rxlog.String("eingabe", e.input), rxlog.Err(e.err))
		return
	}
	c.log.Audit("Konvertierung",
		rxlog.String("richtung", e.dir.String()),
		rxlog.String("eingabe", e.input),
		rxlog.String("ausgabe", e.output))
}

func (c *Converter) updatePlaceholder() {
	if c.dir == DirectionDecode {
		c.textarea.Placeholder = "Zahl im Zielsystem eingeben..."
	} else {
		c.textarea.Placeholder = "Zahl eingeben..."
	}
}

// View renders the UI
func (c Converter) View() string {
	if !c.ready {
		return "Lade..."
	}

	var s strings.Builder

	s.WriteString(c.renderHeader())
	s.WriteString("\n")
	s.WriteString(c.viewport.View())
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Render(c.textarea.View()))
	s.WriteString("\n")
	s.WriteString(c.renderFooter())

	return s.String()
}

func (c *Converter) renderHeader() string {
	tabs := []string{"Kodieren", "Dekodieren"}
	var renderedTabs []string

	for i, tab := range tabs {
		if Direction(i) == c.dir {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(tab))
		}
	}

	title := TitleStyle.Render("radix Konverter")
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabLine)
}

func (c *Converter) renderFooter() string {
	help := "Enter: Konvertieren • Tab: Richtung • Ctrl+L: Leeren • Ctrl+C: Beenden"
	system := c.r.String()

	gap := c.width - lipgloss.Width(help) - lipgloss.Width(system) - 4
	return StatusBarStyle.Width(c.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, gap)),
			system,
		),
	)
}

func (c *Converter) updateContent() {
	var content strings.Builder

	if len(c.history) == 0 {
		content.WriteString(HintStyle.Render("Zahl eingeben und Enter drücken."))
		content.WriteString("\n")
	}

	for _, e := range c.history {
		content.WriteString(InputStyle.Render(e.input))
		content.WriteString("  →  ")
		if e.err != nil {
			content.WriteString(ErrorStyle.Render("Fehler: " + e.err.Error()))
		} else {
			content.WriteString(ResultStyle.Render(e.output))
			if e.note != "" {
				content.WriteString(HintStyle.Render("  (" + e.note + ")"))
			}
		}
		content.WriteString("\n")
	}

	c.viewport.SetContent(content.String())
	c.viewport.GotoBottom()
}
