// Package gallery is a bubbletea program showing select fields on a
// scrollable page.
package gallery

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/dropdown/internal/config"
	"github.com/marcus/dropdown/pkg/ui/env"
	"github.com/marcus/dropdown/pkg/ui/layout"
	"github.com/marcus/dropdown/pkg/ui/mouse"
	"github.com/marcus/dropdown/pkg/ui/outside"
	"github.com/marcus/dropdown/pkg/ui/placement"
	"github.com/marcus/dropdown/pkg/ui/portal"
	"github.com/marcus/dropdown/pkg/ui/selectbox"
	"github.com/marcus/dropdown/pkg/ui/viewmon"
)

const (
	headerHeight = 1
	footerHeight = 1
	pagePadding  = 2
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(selectbox.Primary)
	labelStyle  = lipgloss.NewStyle().Foreground(selectbox.Muted)
	footerStyle = lipgloss.NewStyle().Foreground(selectbox.Muted)
)

type field struct {
	cfg config.Field
	sel *selectbox.Select
	// first page line of the anchor box
	row    int
	chosen *selectbox.Option
}

// Model is the gallery program state.
type Model struct {
	cfg    *config.Config
	logger *slog.Logger

	screen  *layout.Screen
	root    *portal.Layer
	page    *portal.Layer
	broker  *outside.Broker
	monitor *viewmon.Monitor
	mouse   *mouse.Handler

	vp     viewport.Model
	intro  string
	fields []*field
	status string
}

// Option configures a Model.
type Option func(*options)

type options struct {
	logger *slog.Logger
	probe  env.Probe
	keys   portal.KeyFunc
}

// WithLogger sets the logger for the model and its widgets.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithEnv sets the rendering context probe.
func WithEnv(p env.Probe) Option {
	return func(o *options) { o.probe = p }
}

// WithKeys sets the portal mount key generator.
func WithKeys(k portal.KeyFunc) Option {
	return func(o *options) { o.keys = k }
}

// New builds the gallery for cfg and mounts its fields.
func New(cfg *config.Config, opts ...Option) *Model {
	o := options{logger: slog.Default(), probe: env.Static(false)}
	for _, opt := range opts {
		opt(&o)
	}

	screen := layout.NewScreen(0, 0)
	m := &Model{
		cfg:     cfg,
		logger:  o.logger,
		screen:  screen,
		root:    portal.NewLayer(),
		page:    portal.NewLayer(),
		broker:  outside.NewBroker(outside.WithLogger(o.logger)),
		monitor: viewmon.New(screen, viewmon.WithGuardBand(cfg.GuardBand), viewmon.WithLogger(o.logger)),
		mouse:   mouse.NewHandler(),
		vp:      viewport.New(0, 0),
	}

	deps := selectbox.Deps{
		Broker:   m.broker,
		Monitor:  m.monitor,
		Placer:   placement.New(screen),
		Root:     m.root,
		Viewport: screen,
		Env:      o.probe,
		Keys:     o.keys,
		Logger:   o.logger,
	}
	for _, fc := range cfg.Fields {
		f := &field{cfg: fc}
		f.sel = selectbox.New(m.props(f), deps)
		f.sel.Mount()
		m.fields = append(m.fields, f)
	}
	return m
}

func (m *Model) props(f *field) selectbox.Props {
	p := selectbox.Props{
		Placeholder: f.cfg.Placeholder,
		Size:        f.cfg.Size,
		View:        f.cfg.View,
		Disabled:    f.cfg.Disabled,
		Opened:      f.cfg.Opened,
		Fixed:       f.cfg.Fixed || m.cfg.Fixed,
		Options:     f.cfg.Options,
		OnChangeOpened: func(opened bool) {
			m.logger.Debug("field toggled", "field", f.cfg.Name, "opened", opened)
		},
		OnChange: func(value string, opt selectbox.Option) {
			m.choose(f, opt)
		},
	}
	if m.cfg.Portal == config.PortalPage {
		p.Portal = m.page
	}
	if f.chosen != nil {
		p.Placeholder = f.chosen.Title
	}
	return p
}

func (m *Model) choose(f *field, opt selectbox.Option) {
	if f.cfg.Disabled {
		return
	}
	f.chosen = &opt
	f.sel.SetProps(m.props(f))
	m.status = fmt.Sprintf("%s = %s", f.cfg.Name, opt.Value)
	m.logger.Info("option chosen", "field", f.cfg.Name, "value", opt.Value)
	if m.cfg.CloseOnChoose {
		f.sel.Close()
	}
}

// Close unmounts every field.
func (m *Model) Close() {
	for _, f := range m.fields {
		f.sel.Unmount()
	}
}

// Values returns the chosen value of each field that has one.
func (m *Model) Values() map[string]string {
	out := make(map[string]string)
	for _, f := range m.fields {
		if f.chosen != nil {
			out[f.cfg.Name] = f.chosen.Value
		}
	}
	return out
}

// Select returns the widget for the named field.
func (m *Model) Select(name string) (*selectbox.Select, bool) {
	for _, f := range m.fields {
		if f.cfg.Name == name {
			return f.sel, true
		}
	}
	return nil, false
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Close()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.relayout()
		m.monitor.Update(msg)

	case viewmon.ScrollMsg:
		m.monitor.Update(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}

	m.relayout()
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	action := m.mouse.HandleMouse(msg)
	switch action.Type {
	case mouse.ActionScrollDown:
		return m.scroll(m.cfg.ScrollStep)
	case mouse.ActionScrollUp:
		return m.scroll(-m.cfg.ScrollStep)
	case mouse.ActionClick:
		if r := action.Region; r != nil {
			if hit, ok := r.Data.(selectbox.Hit); !ok || !hit.Select.Props().Disabled {
				selectbox.Dispatch(r)
			}
		}
	}
	m.broker.HandleMouse(msg)
	return nil
}

// scroll moves the page and announces the change to the monitor.
func (m *Model) scroll(delta int) tea.Cmd {
	before := m.vp.YOffset
	if delta > 0 {
		m.vp.ScrollDown(delta)
	} else {
		m.vp.ScrollUp(-delta)
	}
	if m.vp.YOffset == before {
		return nil
	}
	m.screen.SetScroll(0, m.vp.YOffset)
	m.relayout()
	return func() tea.Msg { return viewmon.ScrollMsg{} }
}

func (m *Model) resize(width, height int) {
	m.screen.SetSize(width, height)
	m.vp.Width = width
	m.vp.Height = max(0, height-headerHeight-footerHeight)
	m.intro = m.renderIntro(width - 2*pagePadding)
}

func (m *Model) renderIntro(width int) string {
	if m.cfg.Intro == "" {
		return ""
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.DarkStyle),
		glamour.WithWordWrap(max(20, width)),
	)
	if err != nil {
		m.logger.Warn("intro renderer", "err", err)
		return m.cfg.Intro
	}
	out, err := r.Render(m.cfg.Intro)
	if err != nil {
		m.logger.Warn("render intro", "err", err)
		return m.cfg.Intro
	}
	return strings.Trim(out, "\n")
}

// relayout renders the page, resolves every anchor at its screen position
// and rebuilds the hit map.
func (m *Model) relayout() {
	m.root.Reset()
	m.page.Reset()

	var lines []string
	if m.intro != "" {
		lines = append(lines, strings.Split(m.intro, "\n")...)
		lines = append(lines, "")
	}

	pad := strings.Repeat(" ", pagePadding)
	for _, f := range m.fields {
		lines = append(lines, pad+labelStyle.Render(f.cfg.Name))
		f.row = len(lines)
		for _, l := range strings.Split(f.sel.Render(), "\n") {
			lines = append(lines, pad+l)
		}
		lines = append(lines, "")
	}
	m.vp.SetContent(strings.Join(lines, "\n"))
	m.screen.SetScroll(0, m.vp.YOffset)

	for _, f := range m.fields {
		f.sel.Place(pagePadding, headerHeight+f.row-m.vp.YOffset)
	}

	// Anchors first so open lists take priority.
	m.mouse.Clear()
	for _, f := range m.fields {
		if m.onPage(f.sel) {
			f.sel.Regions(m.mouse.HitMap)
		}
	}
	for _, f := range m.fields {
		f.sel.OverlayRegions(m.mouse.HitMap)
	}
}

// onPage reports whether the anchor is inside the scrolled page area.
func (m *Model) onPage(s *selectbox.Select) bool {
	r, ok := s.AnchorBounds()
	if !ok {
		return false
	}
	return r.Y >= headerHeight && r.Bottom() <= headerHeight+m.vp.Height
}

// View implements tea.Model.
func (m *Model) View() string {
	header := headerStyle.Render("dropdown gallery")
	if m.status != "" {
		header += "  " + m.status
	}
	footer := footerStyle.Render("wheel: scroll  click: open/choose  q: quit")

	base := strings.Join([]string{header, m.vp.View(), footer}, "\n")
	base = m.page.Composite(base, m.screen)
	return m.root.Composite(base, m.screen)
}

// Frame renders a single frame at the given size with the named fields
// opened, for non-interactive output.
func (m *Model) Frame(width, height int, open ...string) (string, error) {
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	for _, name := range open {
		s, ok := m.Select(name)
		if !ok {
			return "", fmt.Errorf("unknown field %q", name)
		}
		s.SetOpened(true)
	}
	m.relayout()
	return m.View(), nil
}
