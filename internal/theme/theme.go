package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/loandesk/internal/domain"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading               *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	ActiveSection         *lipgloss.Style
	ColumnHeader          *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Header                *lipgloss.Style
	Title                 *lipgloss.Style
	Subtitle              *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Category              *lipgloss.Style
	ActiveCategory        *lipgloss.Style
	Cursor                *lipgloss.Style
	StatCard              *lipgloss.Style
	StatLabel             *lipgloss.Style
	StatValue             *lipgloss.Style
	PreviewTitle          *lipgloss.Style
	PreviewBody           *lipgloss.Style
	PreviewError          *lipgloss.Style
	DialogTitle           *lipgloss.Style
	DialogLabel           *lipgloss.Style
	DialogFocus           *lipgloss.Style
	DialogChoice          *lipgloss.Style
	DialogHelp            *lipgloss.Style

	tones map[domain.Tone]*lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	ActiveSection: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	ColumnHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Underline(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Subtitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Category: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	ActiveCategory: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	StatCard: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	StatLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	StatValue: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	PreviewTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	PreviewBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	PreviewError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	DialogTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	DialogLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	DialogFocus: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	DialogChoice: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	DialogHelp: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	tones: map[domain.Tone]*lipgloss.Style{
		domain.ToneGood:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("34"))),
		domain.ToneBad:    ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("196"))),
		domain.ToneWarn:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("214"))),
		domain.ToneNotice: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("208"))),
		domain.ToneInfo:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
	},
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Tone returns the row style for a status tone; neutral rows use Item.
func (s *Styles) Tone(tone domain.Tone) *lipgloss.Style {
	if style, ok := s.tones[tone]; ok {
		return style
	}
	return s.Item
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
