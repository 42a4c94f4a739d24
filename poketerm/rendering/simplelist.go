package rendering

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DisableableItem is a list item that can be shown but not picked
type DisableableItem interface {
	list.Item
	Disabled() bool
}

// IsDisabled reports whether item is a DisableableItem that's currently disabled
func IsDisabled(item list.Item) bool {
	d, ok := item.(DisableableItem)
	return ok && d.Disabled()
}

// simpleDelegate draws one line per item from its FilterValue
type simpleDelegate struct {
	HighlightedItemStyle lipgloss.Style
	ItemStyle            lipgloss.Style
	DisabledItemStyle    lipgloss.Style

	spacing int
}

func (d simpleDelegate) Height() int {
	return max(1, min(d.ItemStyle.GetHeight(), d.HighlightedItemStyle.GetHeight()))
}
func (d simpleDelegate) Spacing() int                            { return d.spacing }
func (d simpleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d simpleDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	style := d.ItemStyle
	prefix := "  "

	if IsDisabled(listItem) {
		style = d.DisabledItemStyle
	}
	if index == m.Index() {
		style = d.HighlightedItemStyle
		prefix = "> "
	}

	fmt.Fprint(w, style.Render(prefix+listItem.FilterValue()))
}

func (d *simpleDelegate) SetSpacing(spacing int) {
	d.spacing = spacing
}

func NewSimpleListDelegate() simpleDelegate {
	return simpleDelegate{
		HighlightedItemStyle: HighlightedItemStyle,
		ItemStyle:            ItemStyle,
		DisabledItemStyle:    DisabledItemStyle,
	}
}
