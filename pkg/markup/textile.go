package markup

import (
	"html"
	"regexp"
	"strings"
)

var (
	textileHeading = regexp.MustCompile(`^h([1-6])\.\s+(.*)$`)
	textileBlock   = regexp.MustCompile(`^(p|bq|bc)\.\s+(.*)$`)
	textileBullet  = regexp.MustCompile(`^\*\s+(.*)$`)
	textileNumber  = regexp.MustCompile(`^#\s+(.*)$`)

	textileRules []inlineRule
)

func init() {
	textileRules = []inlineRule{
		{
			re: regexp.MustCompile(`@([^@\n]+)@`),
			render: func(m []string) string {
				return "<code>" + html.EscapeString(m[1]) + "</code>"
			},
		},
		{
			re: regexp.MustCompile(`"([^"\n]+)":([^\s<>"]*[^\s<>".,;:!?])`),
			render: func(m []string) string {
				href, tail := m[2], ""
				// "(bkz. "Go":https://go.dev)" gibi parantez içindeki bağlantılarda
				// kapanış parantezi adrese dahil değildir.
				if strings.HasSuffix(href, ")") && strings.Count(href, "(") < strings.Count(href, ")") {
					href, tail = href[:len(href)-1], ")"
				}
				return anchor(href, textileInline(m[1])) + tail
			},
		},
		{
			re: regexp.MustCompile(`(^|[\s(>])\*([^*\s](?:[^*\n]*[^*\s])?)\*`),
			render: func(m []string) string {
				return html.EscapeString(m[1]) + "<strong>" + textileInline(m[2]) + "</strong>"
			},
		},
		{
			re: regexp.MustCompile(`(^|[\s(>])_([^_\s](?:[^_\n]*[^_\s])?)_`),
			render: func(m []string) string {
				return html.EscapeString(m[1]) + "<em>" + textileInline(m[2]) + "</em>"
			},
		},
	}
}

func textileInline(s string) string {
	return renderInline(s, textileRules)
}

// Textile sık kullanılan Textile alt kümesini HTML'e çevirir: hN., p., bq.,
// bc. blokları, * ve # listeleri, *kalın*, _italik_, @kod@ ve "metin":url.
func Textile(src string) string {
	var out []string
	for _, block := range splitBlocks(src) {
		out = append(out, textileBlockHTML(block))
	}
	return strings.Join(out, "\n")
}

func textileBlockHTML(lines []string) string {
	first := lines[0]

	if m := textileHeading.FindStringSubmatch(first); m != nil {
		text := strings.Join(append([]string{m[2]}, lines[1:]...), " ")
		return "<h" + m[1] + ">" + textileInline(text) + "</h" + m[1] + ">"
	}

	if m := textileBlock.FindStringSubmatch(first); m != nil {
		rest := append([]string{m[2]}, lines[1:]...)
		switch m[1] {
		case "bq":
			return "<blockquote><p>" + textileLines(rest) + "</p></blockquote>"
		case "bc":
			return "<pre><code>" + html.EscapeString(strings.Join(rest, "\n")) + "</code></pre>"
		default:
			return "<p>" + textileLines(rest) + "</p>"
		}
	}

	if items, ok := textileList(lines, textileBullet); ok {
		return "<ul>\n" + items + "</ul>"
	}
	if items, ok := textileList(lines, textileNumber); ok {
		return "<ol>\n" + items + "</ol>"
	}

	return "<p>" + textileLines(lines) + "</p>"
}

// textileLines blok içindeki satır sonlarını <br /> olarak korur.
func textileLines(lines []string) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = textileInline(strings.TrimSpace(l))
	}
	return strings.Join(parts, "<br />\n")
}

func textileList(lines []string, item *regexp.Regexp) (string, bool) {
	var b strings.Builder
	for _, l := range lines {
		m := item.FindStringSubmatch(l)
		if m == nil {
			return "", false
		}
		b.WriteString("\t<li>" + textileInline(m[1]) + "</li>\n")
	}
	return b.String(), true
}
