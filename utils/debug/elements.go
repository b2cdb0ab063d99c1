package debug

import (
	"strings"

	"github.com/beevik/etree"
)

// DumpElement renders an element tree in indented one-line-per-node form
// for debug logging, attributes inline and text quoted.
func DumpElement(el *etree.Element) string {
	tw := NewTreeWriter()
	dumpElement(tw, 0, el)
	return tw.String()
}

func dumpElement(tw *TreeWriter, depth int, el *etree.Element) {
	var sb strings.Builder
	sb.WriteString(el.FullTag())
	for _, a := range el.Attr {
		sb.WriteByte(' ')
		sb.WriteString(a.FullKey())
		sb.WriteString("=")
		sb.WriteString(encodeText(a.Value))
	}
	tw.Line(depth, "%s", sb.String())

	if text := strings.TrimSpace(el.Text()); len(text) != 0 {
		tw.TextBlock(depth+1, "text", text)
	}
	for _, child := range el.ChildElements() {
		dumpElement(tw, depth+1, child)
	}
}
