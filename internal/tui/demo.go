package tui

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/radix"
	rxlog "github.com/msto63/radix/core/log"
	"github.com/msto63/radix/numeral"
	rxstringx "github.com/msto63/radix/utils/stringx"
)

// demoView enumerates the demo tabs
type demoView int

const (
	viewTable demoView = iota
	viewConstants
	viewFractions
	viewClock
	demoViewCount
)

// Demo is the showcase model: multiplication table, constants, unit
// fractions and a running clock, all rendered in the target system.
type Demo struct {
	r   *radix.Radix
	log *rxlog.Logger

	view     demoView
	width    int
	height   int
	ready    bool
	building bool
	now      time.Time

	table     string
	constants string
	fractions string

	spinner  spinner.Model
	viewport viewport.Model
}

// NewDemo creates the demo model for the given system.
func NewDemo(r *radix.Radix, log *rxlog.Logger) Demo {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	log.Debug("Demo gestartet", rxlog.Int("basis", r.Base()))

	return Demo{
		r:         r,
		log:       log,
		view:      viewTable,
		building:  true,
		now:       time.Now(),
		constants: renderConstants(r),
		fractions: renderFractions(r),
		spinner:   sp,
	}
}

// Init initializes the model
func (m Demo) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.buildTable(),
		tickClock(),
	)
}

// Update handles messages
func (m Demo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.log.Debug("Demo beendet")
			return m, tea.Quit

		case "tab":
			m.view = (m.view + 1) % demoViewCount
			m.setContent()
			return m, nil

		case "shift+tab":
			m.view = (m.view + demoViewCount - 1) % demoViewCount
			m.setContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-7)
			m.viewport.YPosition = 3
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 7
		}
		m.setContent()

	case tableBuiltMsg:
		m.building = false
		if msg.err != nil {
			m.table = ErrorStyle.Render("Fehler: " + msg.err.Error())
		} else {
			m.table = msg.content
		}
		m.setContent()

	case clockTickMsg:
		m.now = time.Time(msg)
		if m.view == viewClock {
			m.setContent()
		}
		return m, tickClock()

	case spinner.TickMsg:
		if m.building {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Demo) View() string {
	if !m.ready {
		return "Lade..."
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")

	if m.building && m.view == viewTable {
		s.WriteString(m.spinner.View())
		s.WriteString(" Berechne Tabelle...\n")
	} else {
		s.WriteString(m.viewport.View())
		s.WriteString("\n")
	}

	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Demo) renderHeader() string {
	tabs := []string{"Multiplikation", "Konstanten", "Brüche", "Uhr"}
	var renderedTabs []string

	for i, tab := range tabs {
		if demoView(i) == m.view {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(tab))
		}
	}

	title := TitleStyle.Render("radix Demo")
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabLine)
}

func (m *Demo) renderFooter() string {
	help := "Tab: Wechseln • Pfeiltasten: Scrollen • Ctrl+C: Beenden"
	system := m.r.String()

	gap := m.width - lipgloss.Width(help) - lipgloss.Width(system) - 4
	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, gap)),
			system,
		),
	)
}

func (m *Demo) setContent() {
	switch m.view {
	case viewConstants:
		m.viewport.SetContent(m.constants)
	case viewFractions:
		m.viewport.SetContent(m.fractions)
	case viewClock:
		m.viewport.SetContent(renderClock(m.r, m.now))
	default:
		m.viewport.SetContent(m.table)
	}
	m.viewport.GotoTop()
}

// Async messages
type tableBuiltMsg struct {
	content string
	err     error
}

type clockTickMsg time.Time

func (m Demo) buildTable() tea.Cmd {
	r := m.r
	return func() tea.Msg {
		content, err := renderTable(r)
		return tableBuiltMsg{content: content, err: err}
	}
}

func tickClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// renderTable builds the multiplication table 1..base squared with
// divisibility coloring: multiples of the base, then of its half or
// quarter, then odd products.
func renderTable(r *radix.Radix) (string, error) {
	base := r.Base()

	width := 2
	if corner, err := r.EncodeInt64(int64(base*base), "d"); err == nil {
		if n := utf8.RuneCountInString(corner); n > width {
			width = n
		}
	}

	var s strings.Builder

	s.WriteString(HeaderCellStyle.Render(rxstringx.PadLeft("×", width, ' ')))
	for j := 1; j <= base; j++ {
		cell, err := r.EncodeInt64(int64(j), "d")
		if err != nil {
			return "", err
		}
		s.WriteString(" ")
		s.WriteString(HeaderCellStyle.Render(rxstringx.PadLeft(cell, width, ' ')))
	}
	s.WriteString("\n")

	for i := 1; i <= base; i++ {
		head, err := r.EncodeInt64(int64(i), "d")
		if err != nil {
			return "", err
		}
		s.WriteString(HeaderCellStyle.Render(rxstringx.PadLeft(head, width, ' ')))

		for j := 1; j <= base; j++ {
			product := i * j
			cell, err := r.EncodeInt64(int64(product), "d")
			if err != nil {
				return "", err
			}
			s.WriteString(" ")
			s.WriteString(cellStyle(product, base).Render(rxstringx.PadLeft(cell, width, ' ')))
		}
		s.WriteString("\n")
	}

	return s.String(), nil
}

// cellStyle picks the divisibility color of a product
func cellStyle(product, base int) lipgloss.Style {
	switch {
	case product%base == 0:
		return CellBaseStyle
	case base%2 == 0 && product%(base/2) == 0:
		return CellHalfStyle
	case base%4 == 0 && product%(base/4) == 0:
		return CellHalfStyle
	case product%2 == 1:
		return CellOddStyle
	default:
		return CellStyle
	}
}

type constantRow struct {
	name  string
	value numeral.Decimal
	spec  string
}

func mathConstants() []constantRow {
	pi, _ := numeral.FromFloat64(math.Pi)
	tau, _ := numeral.FromFloat64(2 * math.Pi)
	e, _ := numeral.FromFloat64(math.E)

	sqrt2, _ := numeral.FromInt64(2).Sqrt()
	sqrt5, _ := numeral.FromInt64(5).Sqrt()
	phi := numeral.One().Add(sqrt5).MustDivide(numeral.FromInt64(2))

	return []constantRow{
		{"π  (Pi)", pi, ".14f"},
		{"τ  (Tau)", tau, ".13f"},
		{"e  (Euler)", e, ".12f"},
		{"√2", sqrt2, ".11f"},
		{"ϕ  (Goldener Schnitt)", phi, ".10f"},
	}
}

func physicsConstants() []constantRow {
	g, _ := numeral.FromFloat64(6.6743e-11)
	h, _ := numeral.FromFloat64(6.62607015e-34)
	q, _ := numeral.FromFloat64(1.602176634e-19)

	return []constantRow{
		{"c  (Lichtgeschwindigkeit)", numeral.FromInt64(299792458), ",d"},
		{"c", numeral.FromInt64(299792458), ".2e"},
		{"G  (Gravitationskonstante)", g, ".8e"},
		{"h  (Planck)", h, ".8e"},
		{"e⁻ (Elementarladung)", q, ".8e"},
	}
}

func renderConstants(r *radix.Radix) string {
	var s strings.Builder

	s.WriteString(SubtitleStyle.Render("Mathematische Konstanten"))
	s.WriteString("\n\n")
	for _, row := range mathConstants() {
		s.WriteString(constantLine(r, row))
	}

	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Physikalische Konstanten"))
	s.WriteString("\n\n")
	for _, row := range physicsConstants() {
		s.WriteString(constantLine(r, row))
	}

	return s.String()
}

func constantLine(r *radix.Radix, row constantRow) string {
	out, err := r.EncodeDecimal(row.value, row.spec)
	if err != nil {
		out = ErrorStyle.Render("Fehler: " + err.Error())
	} else {
		out = ResultStyle.Render(out)
	}

	return fmt.Sprintf("  %s %s  %s\n",
		HeaderCellStyle.Render(rxstringx.PadRight(row.name, 26, ' ')),
		HintStyle.Render(rxstringx.PadLeft(row.spec, 5, ' ')),
		out)
}

func renderFractions(r *radix.Radix) string {
	var s strings.Builder

	s.WriteString(SubtitleStyle.Render("Stammbrüche"))
	s.WriteString("\n\n")

	base := int64(r.Base())
	for d := int64(2); d <= base; d++ {
		label, err := r.EncodeInt64(d, "d")
		if err != nil {
			label = "?"
		}

		out, err := r.EncodeDecimal(numeral.One().MustDivide(numeral.FromInt64(d)), "")
		if err != nil {
			out = ErrorStyle.Render("Fehler: " + err.Error())
		} else {
			out = ResultStyle.Render(out)
		}

		s.WriteString(fmt.Sprintf("  1/%s = %s\n",
			HeaderCellStyle.Render(rxstringx.PadLeft(label, 2, ' ')), out))
	}

	return s.String()
}

func renderClock(r *radix.Radix, now time.Time) string {
	var s strings.Builder

	s.WriteString(SubtitleStyle.Render("Uhr"))
	s.WriteString("\n\n")
	s.WriteString(clockLine(r, "Lokal", now))
	s.WriteString(clockLine(r, "UTC", now.UTC()))
	s.WriteString("\n")
	s.WriteString(HintStyle.Render("  dezimal: " + now.Format("2006-01-02 15:04:05")))
	s.WriteString("\n")

	return s.String()
}

func clockLine(r *radix.Radix, label string, t time.Time) string {
	parts := []int64{
		int64(t.Year()), int64(t.Month()), int64(t.Day()),
		int64(t.Hour()), int64(t.Minute()), int64(t.Second()),
	}

	enc := make([]string, len(parts))
	for i, p := range parts {
		spec := "02d"
		if i == 0 {
			spec = "d"
		}
		out, err := r.EncodeInt64(p, spec)
		if err != nil {
			out = "?"
		}
		enc[i] = out
	}

	return fmt.Sprintf("  %s %s-%s-%s  %s:%s:%s\n",
		HeaderCellStyle.Render(rxstringx.PadRight(label, 6, ' ')),
		enc[0], enc[1], enc[2], enc[3], enc[4], enc[5])
}
