package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Violet     = lipgloss.Color("#7C6AEF")
	SoftViolet = lipgloss.Color("#9D8DF1")
	DimViolet  = lipgloss.Color("#3B3366")
	Teal       = lipgloss.Color("#2DD4BF")
	Amber      = lipgloss.Color("#FBBF24")
	Rose       = lipgloss.Color("#FB7185")
	MidGray    = lipgloss.Color("#6b7280")
	LightGray  = lipgloss.Color("#aaaaaa")
	White      = lipgloss.Color("#e0e0e0")

	TitleStyle = lipgloss.NewStyle().
			Foreground(Violet).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(MidGray)

	// Proposal list
	ItemTitleStyle = lipgloss.NewStyle().
			Foreground(White)

	ItemSelectedStyle = lipgloss.NewStyle().
				Foreground(Violet).
				Bold(true)

	SavedMarkStyle = lipgloss.NewStyle().
			Foreground(Amber)

	DifficultyStyle = lipgloss.NewStyle().
			Foreground(Teal)

	TagStyle = lipgloss.NewStyle().
			Foreground(MidGray).
			Italic(true)

	// Detail tabs
	TabStyle = lipgloss.NewStyle().
			Foreground(MidGray).
			Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Violet).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	// Chat
	StudentLabelStyle = lipgloss.NewStyle().
				Foreground(Teal).
				Bold(true)

	MentorLabelStyle = lipgloss.NewStyle().
				Foreground(Violet).
				Bold(true)

	// Input
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimViolet).
			Padding(0, 1)

	ViewportStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimViolet).
			Padding(0, 1)

	MenuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Violet).
			Padding(0, 1)

	// Spinner
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(SoftViolet)

	// Status line feedback
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Rose).
			Bold(true)

	SystemMsgStyle = lipgloss.NewStyle().
			Foreground(MidGray).
			Italic(true)

	SourceStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Underline(true)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(DimViolet)

	BannerStyle = lipgloss.NewStyle().
			Foreground(Violet).
			Bold(true)
)

const Banner = `
  ┳┳┓┓ ┳┳┓┳┳┏┓┏┓
  ┃┃┃┃ ┃┃┃┃┃┗┓┣
  ┛ ┗┗┛┛ ┗┗┛┗┛┗┛
`
