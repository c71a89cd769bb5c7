package selectbox

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/dropdown/pkg/ui/bem"
	"github.com/marcus/dropdown/pkg/ui/env"
	"github.com/marcus/dropdown/pkg/ui/icon"
	"github.com/marcus/dropdown/pkg/ui/layout"
	"github.com/marcus/dropdown/pkg/ui/mouse"
	"github.com/marcus/dropdown/pkg/ui/outside"
	"github.com/marcus/dropdown/pkg/ui/placement"
	"github.com/marcus/dropdown/pkg/ui/portal"
	"github.com/marcus/dropdown/pkg/ui/viewmon"
)

const block = "select"

// Hit region IDs registered by Regions.
const (
	RegionBox    = "select.box"
	RegionOption = "select.option"
)

// Option is one selectable entry.
type Option struct {
	Title string `yaml:"title" koanf:"title"`
	Value string `yaml:"value" koanf:"value"`
}

// Props configures a Select.
type Props struct {
	Placeholder string
	// Size is a named size ("s", "m", "l") or a width in cells.
	Size     string
	View     string
	Disabled bool
	// Opened forces the list open. It is OR-ed with the internal state.
	Opened bool
	// Fixed places the list in screen coordinates instead of document
	// coordinates.
	Fixed bool
	// Portal is the layer the list is drawn into. Nil uses Deps.Root.
	Portal  *portal.Layer
	Options []Option

	OnChangeOpened func(opened bool)
	OnChange       func(value string, option Option)
}

// Deps are the shared services a Select is wired to.
type Deps struct {
	Broker   *outside.Broker
	Monitor  *viewmon.Monitor
	Placer   *placement.Service
	Root     *portal.Layer
	Viewport layout.Viewport

	Env    env.Probe
	Keys   portal.KeyFunc
	Icons  icon.Renderer
	Theme  Theme
	Logger *slog.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Viewport == nil {
		d.Viewport = layout.NewScreen(0, 0)
	}
	if d.Env == nil {
		d.Env = env.Static(false)
	}
	if d.Keys == nil {
		d.Keys = portal.DefaultKeyFunc
	}
	if d.Icons == nil {
		d.Icons = icon.DefaultGlyphs
	}
	if d.Theme == nil {
		d.Theme = DefaultTheme
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return d
}

// Hit is the payload of regions registered by Regions. Index is -1 for the
// anchor box.
type Hit struct {
	Select *Select
	Index  int
}

// Select is a dropdown control.
type Select struct {
	props  Props
	opened bool
	deps   Deps

	anchor  layout.Element
	overlay layout.Element
	// anchor size from the last Render, used by Place
	boxW, boxH int

	mounted  bool
	clickSub outside.Subscription
	viewSub  viewmon.Subscription

	// bound once so Unmount removes exactly what Mount added
	onClose func()
}

// New creates a Select. Call Mount before the first render.
func New(props Props, deps Deps) *Select {
	s := &Select{
		props: props,
		deps:  deps.withDefaults(),
	}
	s.onClose = s.Close
	return s
}

// Props returns the current configuration.
func (s *Select) Props() Props { return s.props }

// SetProps replaces the configuration. Internal open state is kept.
func (s *Select) SetProps(p Props) { s.props = p }

// Mount subscribes to outside clicks and viewport changes.
func (s *Select) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	if s.deps.Broker != nil {
		s.clickSub = s.deps.Broker.On(s, s.onClose)
	}
	if s.deps.Monitor != nil {
		s.viewSub = s.deps.Monitor.Register(s)
	}
}

// Unmount removes every subscription made by Mount.
func (s *Select) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	if s.deps.Broker != nil {
		s.deps.Broker.Off(s.clickSub)
	}
	if s.deps.Monitor != nil {
		s.deps.Monitor.Unregister(s.viewSub)
	}
	s.anchor.Detach()
	s.overlay.Detach()
}

// Mounted reports whether the Select is subscribed.
func (s *Select) Mounted() bool { return s.mounted }

// IsOpened reports whether the list is shown.
func (s *Select) IsOpened() bool {
	return s.props.Opened || s.opened
}

// SetOpened sets the internal open state and always notifies
// OnChangeOpened, even when the value is unchanged.
func (s *Select) SetOpened(opened bool) {
	s.opened = opened
	s.deps.Logger.Debug("select opened changed", "placeholder", s.props.Placeholder, "opened", opened)
	if s.props.OnChangeOpened != nil {
		s.props.OnChangeOpened(opened)
	}
}

// Click toggles the list, as activating the anchor does.
func (s *Select) Click() {
	s.SetOpened(!s.IsOpened())
}

// Close hides the list.
func (s *Select) Close() {
	s.SetOpened(false)
}

// Choose reports option i through OnChange. The list stays open.
func (s *Select) Choose(i int) {
	if i < 0 || i >= len(s.props.Options) || s.props.OnChange == nil {
		return
	}
	opt := s.props.Options[i]
	s.props.OnChange(opt.Value, opt)
}

// Reposition places the list under the anchor. It does nothing until both
// have been rendered.
func (s *Select) Reposition() {
	if s.deps.Placer == nil {
		return
	}
	s.deps.Placer.Update(&s.overlay, &s.anchor, s.props.Fixed)
}

// AnchorBounds returns the anchor's screen bounds.
func (s *Select) AnchorBounds() (mouse.Rect, bool) {
	return s.anchor.Bounds()
}

// OverlayBounds returns where the list is drawn on screen.
func (s *Select) OverlayBounds() (mouse.Rect, bool) {
	return s.overlay.ScreenRect(s.deps.Viewport)
}

// Contains reports whether (x, y) is on the anchor or the open list.
func (s *Select) Contains(x, y int) bool {
	if r, ok := s.AnchorBounds(); ok && r.Contains(x, y) {
		return true
	}
	if r, ok := s.OverlayBounds(); ok && r.Contains(x, y) {
		return true
	}
	return false
}

// Anchor returns the anchor element.
func (s *Select) Anchor() *layout.Element { return &s.anchor }

// Overlay returns the list element.
func (s *Select) Overlay() *layout.Element { return &s.overlay }

// Place resolves the anchor at (x, y) with the size of the last Render.
func (s *Select) Place(x, y int) {
	s.anchor.Resolve(mouse.Rect{X: x, Y: y, W: s.boxW, H: s.boxH})
}

func (s *Select) modifiers() bem.Modifiers {
	return bem.Modifiers{
		"size":     s.props.Size,
		"view":     s.props.View,
		"disabled": s.props.Disabled,
		"opened":   s.IsOpened(),
	}
}

func (s *Select) contentWidth() int {
	if w, ok := sizeWidths[s.props.Size]; ok {
		return w
	}
	if n, err := strconv.Atoi(s.props.Size); err == nil && n > 4 {
		return n
	}
	return defaultWidth
}

// Render draws the anchor box and, while open, mounts the option list into
// the portal layer. The returned string is the anchor box only.
func (s *Select) Render() string {
	opened := s.IsOpened()
	width := s.contentWidth()
	classes := bem.Element(block, "box") + " " + bem.Block(block, s.modifiers())

	rotate := 0
	if opened {
		rotate = 180
	}
	text := ansi.Truncate(s.props.Placeholder, width-4, "…")
	gap := max(0, width-4-ansi.StringWidth(text))
	line := " " + text + strings.Repeat(" ", gap) + " " + s.deps.Icons.Render(1, rotate, "dropDown") + " "

	box := s.deps.Theme.Style(classes).Render(line)
	s.boxW, s.boxH = ansi.StringWidth(strings.SplitN(box, "\n", 2)[0]), strings.Count(box, "\n")+1

	target := s.props.Portal
	if target == nil {
		target = s.deps.Root
	}
	p := portal.Portal{
		Show:   opened,
		Target: target,
		Key:    portal.MountKey(s.deps.Env, s.deps.Keys),
	}
	stale := p.Render(&s.overlay, s.renderOptions())
	if _, placed := s.overlay.Placement(); stale || (opened && !placed) {
		s.Reposition()
	}
	return box
}

func (s *Select) dropDownStyle() (frame, row lipgloss.Style) {
	classes := bem.Block(block, s.modifiers())
	frame = s.deps.Theme.Style(bem.Element(block, "drop-down") + " " + classes)
	row = s.deps.Theme.Style(bem.Element(block, "option"))
	return frame, row
}

func (s *Select) renderOptions() string {
	frame, rowStyle := s.dropDownStyle()
	inner := max(1, s.boxW-frame.GetHorizontalFrameSize())

	rows := make([]string, len(s.props.Options))
	for i, opt := range s.props.Options {
		title := ansi.Truncate(opt.Title, inner-2, "…")
		rows[i] = rowStyle.Width(inner).Render(" " + title)
	}
	return frame.Width(inner).Render(strings.Join(rows, "\n"))
}

// Regions registers the anchor and each visible option row on hm. Call it
// after Place; anchors should be registered before overlays so lists win.
func (s *Select) Regions(hm *mouse.HitMap) {
	if r, ok := s.AnchorBounds(); ok {
		hm.Add(RegionBox, r, Hit{Select: s, Index: -1})
	}
}

// OverlayRegions registers one region per option row of the open list.
func (s *Select) OverlayRegions(hm *mouse.HitMap) {
	r, ok := s.OverlayBounds()
	if !ok {
		return
	}
	frame, _ := s.dropDownStyle()
	x := r.X + frame.GetBorderLeftSize()
	y := r.Y + frame.GetBorderTopSize()
	w := r.W - frame.GetHorizontalBorderSize()
	for i := range s.props.Options {
		hm.Add(RegionOption, mouse.Rect{X: x, Y: y + i, W: w, H: 1}, Hit{Select: s, Index: i})
	}
}

// Dispatch routes a click on a region registered by Regions or
// OverlayRegions. It reports whether the region belonged to a Select.
func Dispatch(r *mouse.Region) bool {
	if r == nil {
		return false
	}
	hit, ok := r.Data.(Hit)
	if !ok || hit.Select == nil {
		return false
	}
	if hit.Index < 0 {
		hit.Select.Click()
	} else {
		hit.Select.Choose(hit.Index)
	}
	return true
}
