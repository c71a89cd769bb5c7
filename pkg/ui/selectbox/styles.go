package selectbox

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/dropdown/pkg/ui/bem"
)

// Colors shared by the default theme.
var (
	Primary     = lipgloss.Color("212")
	Muted       = lipgloss.Color("241")
	Border      = lipgloss.Color("240")
	BgSecondary = lipgloss.Color("235")
	Text        = lipgloss.Color("252")
)

// Theme maps class names to styles.
type Theme map[string]lipgloss.Style

// Style merges the styles of every class in classes. Later classes win, so
// modifiers override their block.
func (t Theme) Style(classes string) lipgloss.Style {
	names := bem.Split(classes)
	s := lipgloss.NewStyle()
	for i := len(names) - 1; i >= 0; i-- {
		if cs, ok := t[names[i]]; ok {
			s = s.Inherit(cs)
		}
	}
	return s
}

// Width of the anchor box content for the named size modifiers.
var sizeWidths = map[string]int{
	"s": 16,
	"m": 24,
	"l": 32,
}

const defaultWidth = 24

// DefaultTheme styles the select block.
var DefaultTheme = Theme{
	"select__box": lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Foreground(Text),

	"select_opened": lipgloss.NewStyle().
		BorderForeground(Primary),

	"select_view_primary": lipgloss.NewStyle().
		BorderForeground(Primary).
		Bold(true),

	"select_view_ghost": lipgloss.NewStyle().
		BorderForeground(BgSecondary),

	"select_disabled": lipgloss.NewStyle().
		Foreground(Muted).
		BorderForeground(Muted),

	"select__drop-down": lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Border).
		Background(BgSecondary),

	"select__option": lipgloss.NewStyle().
		Foreground(Text).
		Background(BgSecondary),
}
