package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/drawerkit/pkg/animation"
	"github.com/go-drift/drawerkit/pkg/drawer"
	"github.com/go-drift/drawerkit/pkg/geometry"
	"github.com/go-drift/drawerkit/pkg/gestures"
)

// frameMsg drives one animation frame.
type frameMsg time.Time

func frameTick(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type model struct {
	drawer     *drawer.Drawer
	controller *drawer.Controller
	slots      drawer.Slots[string]
	theme      drawer.Theme
	fps        int

	width    int
	height   int
	selected int
	status   string
}

func newModel(d *drawer.Drawer, fps int) *model {
	m := &model{
		drawer:     d,
		controller: drawer.NewController(),
		theme:      drawer.DefaultTheme(),
		fps:        fps,
	}
	d.AttachController(m.controller)

	items := []drawer.MenuItem{
		{Title: "Home", Icon: "⌂", OnSelect: func() { m.status = "selected Home" }},
		{Title: "Library", Icon: "▤", OnSelect: func() { m.status = "selected Library" }},
		{Title: "Settings", Icon: "⚙", OnSelect: func() { m.status = "selected Settings" }},
		{Title: "About", Icon: "?", OnSelect: func() { m.status = "selected About" }},
	}
	m.slots = drawer.Slots[string]{
		Items:    items,
		Fallback: m.renderMenu,
	}
	return m
}

func (m *model) Init() tea.Cmd {
	return frameTick(m.fps)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.drawer.SetViewport(float64(msg.Width))
		return m, nil

	case frameMsg:
		animation.StepTickers()
		return m, frameTick(m.fps)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		// The drawer consumes back while open; otherwise the demo exits.
		if !m.drawer.HandleBack() {
			return m, tea.Quit
		}
	case " ", "t":
		m.controller.Toggle()
	case "o":
		m.controller.Open()
	case "c":
		m.controller.Close()
	case "r":
		m.drawer.Reset()
		m.status = "reset"
	case "[":
		m.simulateEdgeDrag(true)
	case "]":
		m.simulateEdgeDrag(false)
	case "j", "down":
		if m.drawer.IsOpen() && m.selected < len(m.slots.Items)-1 {
			m.selected++
		}
	case "k", "up":
		if m.drawer.IsOpen() && m.selected > 0 {
			m.selected--
		}
	case "enter":
		if m.drawer.IsOpen() {
			if item := m.slots.Items[m.selected]; item.OnSelect != nil {
				item.OnSelect()
			}
		}
	}
	return m, nil
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return "measuring terminal..."
	}

	t := m.drawer.Transform()
	bodyRows := m.height - 1
	panelCols := int(t.TranslationX + 0.5)
	if panelCols > m.width {
		panelCols = m.width
	}

	body := m.renderBody(t, panelCols, bodyRows)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar(t))
}

func (m *model) renderBody(t drawer.RenderTransform, panelCols, rows int) string {
	content := m.renderContent(t, m.width-panelCols, rows)
	if panelCols <= 0 {
		return content
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderPanel(panelCols, rows), content)
}

// renderPanel paints the revealed panel area row by row so gradient
// backgrounds show as vertical bands.
func (m *model) renderPanel(cols, rows int) string {
	fill := m.drawer.ResolveBackground(m.theme)
	menu, _ := m.slots.Resolve()
	menuLines := strings.Split(menu, "\n")

	fg := lipgloss.Color("#ECEFF1")
	if m.drawer.Options().Brightness == drawer.BrightnessLight {
		fg = lipgloss.Color("#263238")
	}

	top := 1
	if m.drawer.Options().Alignment == drawer.AlignCenter {
		top = (rows - len(menuLines)) / 2
		if top < 0 {
			top = 0
		}
	}

	var sb strings.Builder
	for row := range rows {
		line := ""
		if row >= top && row-top < len(menuLines) {
			line = " " + menuLines[row-top]
		}
		style := lipgloss.NewStyle().
			Width(cols).
			MaxWidth(cols).
			Foreground(fg).
			Background(rowColor(fill, row, rows))
		sb.WriteString(style.Render(line))
		if row < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (m *model) renderContent(t drawer.RenderTransform, cols, rows int) string {
	if cols <= 0 {
		return ""
	}

	// The terminal cannot scale or tilt, so the content box shrinks
	// vertically with Scale and reports the tilt it would apply.
	boxRows := int(float64(rows)*t.Scale + 0.5)
	if boxRows < 3 {
		boxRows = 3
	}

	border := lipgloss.NormalBorder()
	if m.drawer.ShouldClipContent() {
		border = lipgloss.RoundedBorder()
	}

	lines := []string{
		"drawerkit demo",
		"",
		fmt.Sprintf("progress  %.3f", m.drawer.Value()),
		fmt.Sprintf("status    %s", m.drawer.Status()),
		fmt.Sprintf("tilt      %.1f°", t.RotationY*180/math.Pi),
	}
	if m.drawer.BlocksContentPointer() {
		lines = append(lines, "", "content input blocked")
	}

	box := lipgloss.NewStyle().
		Border(border).
		Width(cols-2).
		Height(boxRows-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(cols, rows, lipgloss.Left, lipgloss.Center, box)
}

// pointerSeq numbers the demo's synthetic pointers.
var pointerSeq int64

// simulateEdgeDrag plays a scripted pointer drag from the relevant edge
// through HandlePointer, the same entry point a real host would use. The
// travel is long enough to land past the snap threshold, so the drawer
// settles even when event timestamps are too close for a fling.
func (m *model) simulateEdgeDrag(open bool) {
	slide := m.drawer.MaxSlide()
	if slide <= 0 {
		return
	}
	step := slide / 8
	if step < 6 {
		// Keep each stroke past the touch slop on narrow terminals.
		step = 6
	}
	start := 5.0
	if !open {
		start = float64(m.width) - 10
		step = -step
	}

	pointerSeq++
	id := pointerSeq
	pos := geometry.Offset{X: start, Y: 10}
	m.drawer.HandlePointer(gestures.PointerEvent{
		PointerID: id, Position: pos, Phase: gestures.PointerPhaseDown,
	})
	for range 6 {
		pos.X += step
		m.drawer.HandlePointer(gestures.PointerEvent{
			PointerID: id, Position: pos,
			Delta: geometry.Offset{X: step},
			Phase: gestures.PointerPhaseMove,
		})
	}
	m.drawer.HandlePointer(gestures.PointerEvent{
		PointerID: id, Position: pos, Phase: gestures.PointerPhaseUp,
	})
}

func (m *model) renderMenu(items []drawer.MenuItem) string {
	lines := make([]string, len(items))
	for i, item := range items {
		marker := "  "
		if i == m.selected {
			marker = "> "
		}
		lines[i] = fmt.Sprintf("%s%s %s", marker, item.Icon, item.Title)
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderStatusBar(t drawer.RenderTransform) string {
	left := fmt.Sprintf(" %s  x=%.0f", m.drawer.Status(), t.TranslationX)
	if m.status != "" {
		left += "  " + m.status
	}
	help := "space toggle · [/] drag · j/k select · enter pick · esc back · q quit "

	bar := lipgloss.NewStyle().
		Width(m.width).
		Background(lipgloss.Color("#37474F")).
		Foreground(lipgloss.Color("#B0BEC5"))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 1 {
		return bar.Render(left)
	}
	return bar.Render(left + strings.Repeat(" ", gap) + help)
}

// rowColor samples the panel fill for one terminal row.
func rowColor(fill drawer.Fill, row, rows int) lipgloss.Color {
	if fill.Gradient != nil {
		pos := 0.0
		if rows > 1 {
			pos = float64(row) / float64(rows-1)
		}
		return lipglossColor(fill.Gradient.ColorAt(pos))
	}
	return lipglossColor(fill.Color)
}

func lipglossColor(c geometry.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF))
}
