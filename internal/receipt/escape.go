package receipt

import "strings"

// Location strings and model names come from external data; every
// interpolated field is escaped so the output document stays well-formed.
var (
	xmlReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	htmlReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)
)

// EscapeXML escapes text for embedding in SVG markup.
func EscapeXML(s string) string { return xmlReplacer.Replace(s) }

// EscapeHTML escapes text for embedding in HTML markup.
func EscapeHTML(s string) string { return htmlReplacer.Replace(s) }
