package affix

import (
	"strings"

	"github.com/fatih/color"

	"conjugal/options"
)

var (
	stemColor     = color.New(color.FgCyan)
	morphemeColor = color.New(color.FgYellow, color.Bold)
	joinerColor   = color.New(color.FgHiBlack)
)

func partColor(part options.PartEnum) *color.Color {
	switch part {
	case options.PartStem:
		return stemColor
	case options.PartMorpheme:
		return morphemeColor
	default:
		return joinerColor
	}
}

// Highlight renders the affixation with ANSI colors on the selected parts.
// The text is the same as Render; colors follow color.NoColor.
func (a Affixation) Highlight(parts options.PartEnum) (string, error) {
	paint := func(sb *strings.Builder, text string, part options.PartEnum) {
		if parts.Has(part) {
			sb.WriteString(partColor(part).Sprint(text))
			return
		}

		sb.WriteString(text)
	}

	var sb strings.Builder

	switch a.state() {
	case stateNoStem:
		return "", nil
	case stateNoMorpheme:
		paint(&sb, a.stem, options.PartStem)
		return sb.String(), nil
	}

	f, _, err := a.compose()
	if err != nil {
		return "", err
	}

	f.each(a.joiner, func(text string, part options.PartEnum) { paint(&sb, text, part) })

	return sb.String(), nil
}
