package description

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// DefaultFontSize is the size rows render at unless their content is long
const DefaultFontSize = 19

// Row is one formatted line of derived display information
// Content is the full plain text; Prefix, when set, is the leading part of Content
type Row struct {
	Label   string
	Content string
	Prefix  string
	Detail  Detail
	Order   int
	Color   tcell.Color
	Size    int
}

// newRow builds a row and shrinks its font one step for each length threshold the body reaches
func newRow(label, body string, detail Detail, order int, color tcell.Color) Row {
	size := DefaultFontSize
	for _, limit := range [...]int{20, 25, 30} {
		if len(body) >= limit {
			size--
		}
	}
	return Row{
		Label:   label,
		Content: body,
		Detail:  detail,
		Order:   order,
		Color:   color,
		Size:    size,
	}
}

// withPrefix returns a copy with prefix prepended to the content
func (r Row) withPrefix(prefix string) Row {
	r.Prefix = prefix
	r.Content = prefix + r.Content
	return r
}

// Body returns the content without its prefix
func (r Row) Body() string {
	return strings.TrimPrefix(r.Content, r.Prefix)
}

// Markup renders the content as host rich text: colored, sized when not default,
// with the prefix in silver
func (r Row) Markup() string {
	var sb strings.Builder
	if r.Prefix != "" {
		sb.WriteString("<color=#")
		sb.WriteString(hexRGBA(ColorChance))
		sb.WriteString(">")
		sb.WriteString(strings.TrimSuffix(r.Prefix, " "))
		sb.WriteString("</color> ")
	}
	sb.WriteString(r.Body())

	text := sb.String()
	if r.Size != DefaultFontSize {
		text = "<size=" + strconv.Itoa(r.Size) + ">" + text + "</size>"
	}
	return "<color=#" + hexRGBA(r.Color) + ">" + text + "</color>"
}
