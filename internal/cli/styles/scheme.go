package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/schemer/internal/domain/entity"
)

// Radio glyphs for the exclusive scheme choice.
const (
	RadioOn  = "●"
	RadioOff = "○"
)

// SchemeRow is one rendered line of the scheme list.
type SchemeRow struct {
	Label   string
	Checked bool
	Cursor  bool
}

// RenderSchemeRow renders a radio button, the label and the cursor highlight.
func (t *Theme) RenderSchemeRow(row SchemeRow) string {
	radio := t.Subtle.Render(RadioOff)
	if row.Checked {
		radio = t.CheckMark.Render(RadioOn)
	}

	line := fmt.Sprintf("%s %s", radio, row.Label)
	if row.Cursor {
		return t.ListItemSelected.Render(line)
	}
	return t.ListItem.Render(line)
}

// RenderSchemeList renders all rows, one per line.
func (t *Theme) RenderSchemeList(rows []SchemeRow) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(t.RenderSchemeRow(row))
	}
	return b.String()
}

// EffectiveBadge renders the palette actually in use and where it came from.
func (t *Theme) EffectiveBadge(effective entity.EffectiveScheme) string {
	return t.Badge.Render(effective.Name()) + " " + t.BadgeMuted.Render(effective.Source)
}
