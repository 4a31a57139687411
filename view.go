package filedialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// CenteredRect returns a rectangle percentX wide and percentY high, in
// percent of area, centered within area. Percentages are clamped to
// [0, 100].
func CenteredRect(percentX, percentY int, area Rect) Rect {
	percentX, percentY = clampPercent(percentX), clampPercent(percentY)

	return Rect{
		X:      area.X + area.Width*((100-percentX)/2)/100,
		Y:      area.Y + area.Height*((100-percentY)/2)/100,
		Width:  area.Width * percentX / 100,
		Height: area.Height * percentY / 100,
	}
}

const (
	checkedGlyph   = "☑ "
	uncheckedGlyph = "☐ "
)

var (
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
	titleStyle     = lipgloss.NewStyle().Bold(true)
	highlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("10"))
)

// View renders the dialog as a bordered panel centered in an area
// of width by height cells. A closed dialog renders as the empty
// string, as does a panel too small to hold its own border.
func (d *Dialog) View(width, height int) string {
	if !d.open {
		return ""
	}

	r := CenteredRect(d.width, d.height, Rect{Width: width, Height: height})

	// The hint line sits below the panel, inside the same
	// rectangle.
	panelHeight := r.Height
	if d.showHints {
		panelHeight--
	}

	// Border on each side, plus the title row.
	innerWidth, rows := r.Width-2, panelHeight-3
	if innerWidth < 1 || rows < 1 {
		return ""
	}

	title := lipgloss.NewStyle().MaxWidth(innerWidth).Render(titleStyle.Render(d.currentDir))

	lines := make([]string, 0, rows+1)
	lines = append(lines, title)

	first, last := d.window(rows)
	for i := first; i < last; i++ {
		lines = append(lines, d.row(i, innerWidth))
	}

	panel := borderStyle.
		Width(innerWidth).
		Height(rows + 1).
		Render(strings.Join(lines, "\n"))

	if d.showHints {
		h := help.New()
		h.Width = r.Width
		hint := lipgloss.PlaceHorizontal(r.Width, lipgloss.Right, h.ShortHelpView(d.keys.hintKeys(d.multi)))
		panel = lipgloss.JoinVertical(lipgloss.Left, panel, hint)
	}

	return lipgloss.NewStyle().MarginTop(r.Y).MarginLeft(r.X).Render(panel)
}

// window returns the half-open range of rows that fit into a panel
// with room for n of them, scrolled so the cursor stays in view.
func (d *Dialog) window(n int) (first, last int) {
	cursor := max(d.sel.cursor, 0)
	first = max(0, cursor-n+1)
	last = min(len(d.items), first+n)

	return first, last
}

func (d *Dialog) row(i, width int) string {
	text := d.items[i]
	if d.multi {
		if d.sel.isChosen(i) {
			text = checkedGlyph + text
		} else {
			text = uncheckedGlyph + text
		}
	}

	// Truncate before highlighting; a fixed width would wrap long
	// names instead.
	text = lipgloss.NewStyle().MaxWidth(width).Render(text)

	if i == d.sel.cursor {
		return highlightStyle.Width(width).Render(text)
	}

	return text
}
