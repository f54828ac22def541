package docmap

import (
	"fmt"
	"strings"
)

// FormatTOC renders table-of-contents nodes as an indented text tree for
// display. Each line is "path  title"; nesting is two spaces per level.
func FormatTOC(nodes []*TOCNode) string {
	var sb strings.Builder
	formatTOCLevel(&sb, nodes, 0)
	return sb.String()
}

func formatTOCLevel(sb *strings.Builder, nodes []*TOCNode, indent int) {
	for _, node := range nodes {
		title := node.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(sb, "%s%s  %s\n", strings.Repeat("  ", indent), node.Path, title)
		formatTOCLevel(sb, node.Children, indent+1)
	}
}

// FormatSections renders sections as a flat listing for display, one line
// per section, in the order given.
func FormatSections(secs []*Section) string {
	if len(secs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(secs))
	for _, sec := range secs {
		title := sec.Title
		if title == "" {
			title = "(untitled)"
		}
		parts = append(parts, fmt.Sprintf("%s  %s (depth %d)", sec.Path, title, sec.Depth))
	}
	return strings.Join(parts, "\n")
}
