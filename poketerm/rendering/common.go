package rendering

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pallet/golurk"
	"github.com/nathanieltooley/pallet/poketerm/global"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	HighlightedColor = lipgloss.Color("33")
	BlackTextColor   = lipgloss.Color("0")

	ButtonStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Width(30).Padding(1, 3).Align(lipgloss.Center)
	HighlightedButtonStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Width(30).Padding(1, 3).Align(lipgloss.Center).Foreground(HighlightedColor)

	HighlightedItemStyle = lipgloss.NewStyle().PaddingLeft(4).Foreground(HighlightedColor)
	ItemStyle            = lipgloss.NewStyle().PaddingLeft(4)
	DisabledItemStyle    = lipgloss.NewStyle().PaddingLeft(4).Foreground(DisabledColor)

	DisabledColor = lipgloss.Color("240")
	ErrorStyle    = lipgloss.NewStyle().Border(lipgloss.BlockBorder(), true).Foreground(lipgloss.Color("#E33D3D")).Padding(0, 2)

	titleCaser = cases.Title(language.English)
)

var StatusColors = map[int]lipgloss.Color{
	golurk.STATUS_BURN:   lipgloss.Color("#E36D1C"),
	golurk.STATUS_PARA:   lipgloss.Color("#FFD400"),
	golurk.STATUS_POISON: lipgloss.Color("#A61AE5"),
	golurk.STATUS_FROZEN: lipgloss.Color("#31BBCE"),
	golurk.STATUS_SLEEP:  lipgloss.Color("#BCE9EF"),
}

var StatusText = map[int]string{
	golurk.STATUS_BURN:   "BRN",
	golurk.STATUS_PARA:   "PAR",
	golurk.STATUS_FROZEN: "FRZ",
	golurk.STATUS_POISON: "PSN",
	golurk.STATUS_SLEEP:  "SLP",
}

var TypeColors = map[string]lipgloss.Color{
	golurk.TYPENAME_NORMAL:   lipgloss.Color("#A8A878"),
	golurk.TYPENAME_FIRE:     lipgloss.Color("#F08030"),
	golurk.TYPENAME_WATER:    lipgloss.Color("#6890F0"),
	golurk.TYPENAME_ELECTRIC: lipgloss.Color("#F8D030"),
	golurk.TYPENAME_GRASS:    lipgloss.Color("#78C850"),
	golurk.TYPENAME_ICE:      lipgloss.Color("#98D8D8"),
	golurk.TYPENAME_FIGHTING: lipgloss.Color("#C03028"),
	golurk.TYPENAME_POISON:   lipgloss.Color("#A040A0"),
	golurk.TYPENAME_GROUND:   lipgloss.Color("#E0C068"),
	golurk.TYPENAME_FLYING:   lipgloss.Color("#A890F0"),
	golurk.TYPENAME_PSYCHIC:  lipgloss.Color("#F85888"),
	golurk.TYPENAME_BUG:      lipgloss.Color("#A8B820"),
	golurk.TYPENAME_ROCK:     lipgloss.Color("#B8A038"),
	golurk.TYPENAME_GHOST:    lipgloss.Color("#705898"),
	golurk.TYPENAME_DRAGON:   lipgloss.Color("#7038F8"),
}

// TitleCase turns data names like "THUNDER SHOCK" or "viridian_forest" into "Thunder Shock" and "Viridian Forest"
func TitleCase(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

// RenderType renders a type name as a colored tag
func RenderType(typeName string) string {
	color, ok := TypeColors[typeName]
	if !ok {
		return TitleCase(typeName)
	}

	return lipgloss.NewStyle().Background(color).Foreground(BestTextColor(color)).Padding(0, 1).Render(TitleCase(typeName))
}

// RenderStatus renders the short status tag for a pokemon, or nothing if it's healthy
func RenderStatus(status int) string {
	if status == golurk.STATUS_NONE {
		return ""
	}

	return lipgloss.NewStyle().Background(StatusColors[status]).Foreground(BlackTextColor).Render(StatusText[status])
}

func Center(width int, height int, text string) string {
	return lipgloss.PlaceVertical(height, lipgloss.Center, lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
}

func GlobalCenter(text string) string {
	return Center(global.TERM_WIDTH, global.TERM_HEIGHT, text)
}

func CenterBlock(block string, text string) string {
	w, h := lipgloss.Size(block)
	return Center(w, h, text)
}

func BestTextColor(backgroundColor lipgloss.Color) lipgloss.Color {
	// thanks https://andrisignorell.github.io/DescTools/reference/TextContrastColor.html
	// RGBA is 16 bits per channel
	r, g, b, _ := backgroundColor.RGBA()
	mean := (r + g + b) / 3

	if mean < 0x7FFF {
		return lipgloss.Color("#FFFFFF")
	} else {
		return lipgloss.Color("#000000")
	}
}
