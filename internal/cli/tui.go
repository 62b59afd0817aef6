package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/myreality/pkg/animation"
	"github.com/matzehuels/myreality/pkg/scene"
	"github.com/matzehuels/myreality/pkg/spatial/camera"
	"github.com/matzehuels/myreality/pkg/spatial/geom"
	"github.com/matzehuels/myreality/pkg/spatial/placement"
)

// Explorer styles
var (
	physicalStyle = lipgloss.NewStyle().Foreground(colorCyan)
	mindStyle     = lipgloss.NewStyle().Foreground(colorYellow)
	otherStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	fadedStyle    = lipgloss.NewStyle().Foreground(colorDim)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	panelStyle    = lipgloss.NewStyle().Foreground(colorWhite).Background(lipgloss.Color("236"))
	panelDimStyle = lipgloss.NewStyle().Foreground(colorGray).Background(lipgloss.Color("236"))
	statusStyle   = lipgloss.NewStyle().Foreground(colorGray)
	helpStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	frameInterval = 16 * time.Millisecond
	panelFadeIn   = 200 * time.Millisecond

	// panStep is the drag distance of one arrow key, in viewport pixels.
	panStep = 40.0

	// zoomStep is the wheel delta of one zoom key or wheel notch.
	zoomStep = 250.0

	// statusRows is the number of terminal rows below the map.
	statusRows = 2
)

// frameMsg drives in-flight animations.
type frameMsg time.Time

// =============================================================================
// exploreModel - Interactive camera explorer
// =============================================================================

// exploreModel draws a layout into the terminal and lets the user pan, zoom
// and select somethings. The layout viewport is scaled onto the terminal
// grid, so every transform runs in the layout's pixel space.
type exploreModel struct {
	layout  scene.Layout
	points  []geom.Something2D
	cam     camera.Camera
	home    camera.Camera
	minZoom float64
	maxZoom float64

	cols int
	rows int

	cursor   int
	selected string

	flight      *animation.Flight
	flightStart time.Time
	homing      bool
	panel       animation.Fade
	panelStart  time.Time

	// glow is the opacity of the selection marker, sampled from the flight.
	glow float64

	now func() time.Time
}

// newExploreModel creates an explorer starting at the layout's fitted camera.
func newExploreModel(l scene.Layout, minZoom, maxZoom float64) exploreModel {
	cam := l.Camera
	if cam.Zoom == 0 {
		cam = camera.Default()
	}
	return exploreModel{
		layout:  l,
		points:  l.Somethings(),
		cam:     cam,
		home:    cam,
		minZoom: minZoom,
		maxZoom: maxZoom,
		cols:    80,
		rows:    22,
		cursor:  -1,
		panel:   animation.Fade{Duration: panelFadeIn, From: 0, To: 1},
		glow:    1,
		now:     time.Now,
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = max(10, msg.Width)
		m.rows = max(5, msg.Height-statusRows)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case frameMsg:
		return m.step()
	}
	return m, nil
}

func (m exploreModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m = m.drag(panStep, 0)
	case "right", "l":
		m = m.drag(-panStep, 0)
	case "up", "k":
		m = m.drag(0, panStep)
	case "down", "j":
		m = m.drag(0, -panStep)
	case "+", "=":
		m.cam = camera.ZoomWithin(m.cam, zoomStep, m.minZoom, m.maxZoom)
	case "-", "_":
		m.cam = camera.ZoomWithin(m.cam, -zoomStep, m.minZoom, m.maxZoom)
	case "tab":
		if len(m.layout.Points) == 0 {
			return m, nil
		}
		m.cursor = (m.cursor + 1) % len(m.layout.Points)
		return m.selectID(m.layout.Points[m.cursor].ID)
	case "enter":
		vp := m.layout.Viewport
		if id, ok := camera.DetectClick(vp.Width/2, vp.Height/2, m.points, m.cam, vp, m.hitRadius()); ok {
			return m.selectID(id)
		}
	case "0":
		m.cam.Zoom = m.home.Zoom
		m.homing = m.selected != ""
		return m.flyTo(m.home.Focus(), 0, panelFadeIn)
	case "esc":
		m.selected = ""
		m.flight = nil
		m.homing = false
		m.glow = 1
	}
	return m, nil
}

func (m exploreModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := m.cellToPixel(msg.X, msg.Y)
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.cam = camera.ZoomAt(m.cam, zoomStep, x, y, m.layout.Viewport, m.minZoom, m.maxZoom)
	case tea.MouseButtonWheelDown:
		m.cam = camera.ZoomAt(m.cam, -zoomStep, x, y, m.layout.Viewport, m.minZoom, m.maxZoom)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		if id, ok := camera.DetectClick(x, y, m.points, m.cam, m.layout.Viewport, m.hitRadius()); ok {
			return m.selectID(id)
		}
		m.selected = ""
	}
	return m, nil
}

// drag pans the view as a mouse drag of (dx, dy) would and cancels any
// flight in progress.
func (m exploreModel) drag(dx, dy float64) exploreModel {
	m.flight = nil
	m.homing = false
	m.glow = 1
	m.cam = camera.Pan(m.cam, dx, dy)
	return m
}

func (m exploreModel) selectID(id string) (tea.Model, tea.Cmd) {
	p, ok := m.layout.Find(id)
	if !ok {
		return m, nil
	}
	for i := range m.layout.Points {
		if m.layout.Points[i].ID == id {
			m.cursor = i
		}
	}
	m.selected = id
	m.homing = false
	m.panelStart = m.now()
	return m.flyTo(p.Position(), panelFadeIn, 0)
}

// flyTo starts a camera flight. The selection marker fades in over fadeIn
// and out over fadeOut.
func (m exploreModel) flyTo(target geom.Position2D, fadeIn, fadeOut time.Duration) (tea.Model, tea.Cmd) {
	m.flight = &animation.Flight{
		From:     m.cam.Focus(),
		To:       target,
		Duration: animation.DefaultFlight,
		FadeIn:   fadeIn,
		FadeOut:  fadeOut,
	}
	m.flightStart = m.now()
	return m, tick()
}

// step advances the flight by one frame. A selection flight opens the
// content panel on landing and keeps ticking until the panel has faded in;
// a home flight drops the selection on landing.
func (m exploreModel) step() (tea.Model, tea.Cmd) {
	now := m.now()
	if m.flight == nil {
		if m.selected != "" && !m.panel.Done(now.Sub(m.panelStart)) {
			return m, tick()
		}
		return m, nil
	}

	st := m.flight.Sample(now.Sub(m.flightStart))
	m.cam.X, m.cam.Y = st.Position.X, st.Position.Y
	m.glow = st.Opacity
	if !st.Done {
		return m, tick()
	}

	m.flight = nil
	m.glow = 1
	if m.homing {
		m.homing = false
		m.selected = ""
		return m, nil
	}
	if m.selected == "" {
		return m, nil
	}
	m.panelStart = now
	return m, tick()
}

// panelOpacity is the fade-in progress of the content panel. The panel is
// closed while the camera is flying.
func (m exploreModel) panelOpacity() float64 {
	if m.flight != nil || m.selected == "" {
		return 0
	}
	return m.panel.Sample(m.now().Sub(m.panelStart))
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// cellToPixel maps the center of a terminal cell to viewport pixels.
func (m exploreModel) cellToPixel(col, row int) (float64, float64) {
	vp := m.layout.Viewport
	return (float64(col) + 0.5) * vp.Width / float64(m.cols),
		(float64(row) + 0.5) * vp.Height / float64(m.rows)
}

// pixelToCell maps viewport pixels to a terminal cell.
func (m exploreModel) pixelToCell(x, y float64) (int, int) {
	vp := m.layout.Viewport
	return int(x * float64(m.cols) / vp.Width), int(y * float64(m.rows) / vp.Height)
}

// hitRadius is never smaller than one terminal cell.
func (m exploreModel) hitRadius() float64 {
	return max(camera.DefaultHitRadius, m.layout.Viewport.Width/float64(m.cols))
}

// =============================================================================
// View
// =============================================================================

func (m exploreModel) View() string {
	grid := make([][]string, m.rows)
	for r := range grid {
		grid[r] = make([]string, m.cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	vp := m.layout.Viewport
	var anchor *geom.Position2D
	for _, p := range m.layout.Points {
		if !camera.Visible(p.Position(), m.cam, vp, 0) {
			continue
		}
		sp := camera.WorldToScreen(p.Position(), m.cam, vp)
		col, row := m.pixelToCell(sp.X, sp.Y)
		if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
			continue
		}
		grid[row][col] = pointGlyph(p, p.ID == m.selected, m.glow)
		if p.ID == m.selected {
			anchor = &sp
		}
	}

	if anchor != nil && m.flight == nil {
		m.drawPanel(grid, *anchor)
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}
	b.WriteString(m.status())
	return b.String()
}

// drawPanel writes the selected something's details where the content
// panel would open in the app.
func (m exploreModel) drawPanel(grid [][]string, anchor geom.Position2D) {
	p, ok := m.layout.Find(m.selected)
	if !ok {
		return
	}
	vp := m.layout.Viewport
	pos := placement.Calculate(anchor.X/vp.Width*100, anchor.Y/vp.Height*100, 2*camera.DefaultHitRadius, vp, nil)

	left, top := m.pixelToCell(pos.Left, pos.Top)
	width, _ := m.pixelToCell(pos.MaxWidth, 0)
	width = max(8, min(width, m.cols-left))

	lines := []string{" " + p.ID, fmt.Sprintf(" depth %d", p.Depth)}
	if p.Content != "" {
		lines = append(lines, " "+p.Content)
	}

	style := panelStyle
	if m.panelOpacity() < 1 {
		style = panelDimStyle
	}
	for i, line := range lines {
		row := top + i
		if row < 0 || row >= m.rows {
			continue
		}
		runes := []rune(line)
		for c := 0; c < width && left+c < m.cols; c++ {
			ch := " "
			if c < len(runes) {
				ch = string(runes[c])
			}
			if left+c >= 0 {
				grid[row][left+c] = style.Render(ch)
			}
		}
	}
}

func (m exploreModel) status() string {
	sel := "none"
	if m.selected != "" {
		sel = m.selected
	}
	line := fmt.Sprintf("%.0f, %.0f @ %.2fx · selected: %s", m.cam.X, m.cam.Y, m.cam.Zoom, sel)
	return statusStyle.Render(line) + "\n" +
		helpStyle.Render("arrows pan  +/- zoom  tab next  enter center  0 home  esc clear  q quit")
}

// pointGlyph draws p. The selection marker is dimmed while glow is below
// one half.
func pointGlyph(p scene.Point, selected bool, glow float64) string {
	if selected {
		if glow < 0.5 {
			return fadedStyle.Render("◉")
		}
		return selectedStyle.Render("◉")
	}
	glyph := "●"
	switch p.Kind {
	case scene.KindText:
		glyph = "■"
	case scene.KindPhoto:
		glyph = "▲"
	case scene.KindVideo:
		glyph = "▶"
	case scene.KindLink:
		glyph = "◆"
	}
	if p.Opacity < 0.5 {
		return fadedStyle.Render(glyph)
	}
	switch p.Realm {
	case scene.RealmPhysical:
		return physicalStyle.Render(glyph)
	case scene.RealmMind:
		return mindStyle.Render(glyph)
	}
	return otherStyle.Render(glyph)
}
