package markup

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const rstAdornmentChars = "=-~^\"'`#*+:._"

var (
	rstBullet = regexp.MustCompile(`^([-*+])\s+(.*)$`)
	rstEnum   = regexp.MustCompile(`^(?:\d+|#)[.)]\s+(.*)$`)

	rstRules []inlineRule
)

func init() {
	rstRules = []inlineRule{
		{
			re: regexp.MustCompile("``([^`\n]+)``"),
			render: func(m []string) string {
				return "<code>" + html.EscapeString(m[1]) + "</code>"
			},
		},
		{
			re: regexp.MustCompile("`([^`<\n]+?)\\s*<([^>\n]+)>`__?"),
			render: func(m []string) string {
				return anchor(m[2], html.EscapeString(m[1]))
			},
		},
		{
			re: regexp.MustCompile(`\*\*([^*\s](?:[^*\n]*[^*\s])?)\*\*`),
			render: func(m []string) string {
				return "<strong>" + html.EscapeString(m[1]) + "</strong>"
			},
		},
		{
			re: regexp.MustCompile(`\*([^*\s](?:[^*\n]*[^*\s])?)\*`),
			render: func(m []string) string {
				return "<em>" + html.EscapeString(m[1]) + "</em>"
			},
		},
		{
			re: regexp.MustCompile("`([^`\n]+)`"),
			render: func(m []string) string {
				return "<cite>" + html.EscapeString(m[1]) + "</cite>"
			},
		},
	}
}

func rstInline(s string) string {
	return renderInline(s, rstRules)
}

// rstWriter başlık seviyelerini, süslemenin ilk görüldüğü sıraya göre atar.
type rstWriter struct {
	levels map[string]int
	out    []string
}

func (w *rstWriter) heading(adornment byte, overline bool, title string) {
	key := string(adornment)
	if overline {
		key += "/"
	}
	level, ok := w.levels[key]
	if !ok {
		level = len(w.levels) + 1
		w.levels[key] = level
	}
	if level > 6 {
		level = 6
	}
	tag := "h" + strconv.Itoa(level)
	w.out = append(w.out, "<"+tag+">"+rstInline(title)+"</"+tag+">")
}

// RestructuredText sık kullanılan reStructuredText alt kümesini HTML'e
// çevirir: bölüm başlıkları, paragraflar, madde ve numaralı listeler,
// "::" ile başlayan literal bloklar, geçiş çizgileri ve satır içi
// **kalın**, *italik*, ``literal``, `metin <url>`_ bağlantıları.
func RestructuredText(src string) string {
	lines := splitLines(src)
	w := &rstWriter{levels: map[string]int{}}

	for i := 0; i < len(lines); {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			i++
			continue
		}

		// üst ve alt çizgili başlık
		if isAdornment(line) && i+2 < len(lines) && strings.TrimSpace(lines[i+1]) != "" &&
			isAdornment(lines[i+2]) && lines[i+2][0] == line[0] {
			w.heading(line[0], true, strings.TrimSpace(lines[i+1]))
			i += 3
			continue
		}

		// alt çizgili başlık
		if !isAdornment(line) && i+1 < len(lines) && isAdornment(lines[i+1]) &&
			utf8.RuneCountInString(lines[i+1]) >= utf8.RuneCountInString(strings.TrimSpace(line)) {
			w.heading(lines[i+1][0], false, strings.TrimSpace(line))
			i += 2
			continue
		}

		if isAdornment(line) && len(line) >= 4 {
			w.out = append(w.out, "<hr />")
			i++
			continue
		}

		if rstBullet.MatchString(line) {
			items, next := rstListItems(lines, i, rstBullet)
			w.out = append(w.out, "<ul>\n"+items+"</ul>")
			i = next
			continue
		}
		if rstEnum.MatchString(line) {
			items, next := rstListItems(lines, i, rstEnum)
			w.out = append(w.out, "<ol>\n"+items+"</ol>")
			i = next
			continue
		}

		var para []string
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			para = append(para, strings.TrimSpace(lines[i]))
			i++
		}
		text := strings.Join(para, " ")

		if strings.HasSuffix(text, "::") {
			switch {
			case text == "::":
				text = ""
			case strings.HasSuffix(text, " ::"):
				text = strings.TrimSuffix(text, " ::")
			default:
				text = strings.TrimSuffix(text, ":")
			}
			if text != "" {
				w.out = append(w.out, "<p>"+rstInline(text)+"</p>")
			}
			var literal string
			literal, i = rstLiteralBlock(lines, i)
			if literal != "" {
				w.out = append(w.out, "<pre>"+html.EscapeString(literal)+"</pre>")
			}
			continue
		}

		w.out = append(w.out, "<p>"+rstInline(text)+"</p>")
	}
	return strings.Join(w.out, "\n")
}

func isAdornment(line string) bool {
	line = strings.TrimRight(line, " ")
	if len(line) < 2 || !strings.ContainsRune(rstAdornmentChars, rune(line[0])) {
		return false
	}
	return strings.Count(line, line[:1]) == len(line)
}

// rstListItems ardışık liste öğelerini ve girintili devam satırlarını toplar.
func rstListItems(lines []string, i int, item *regexp.Regexp) (string, int) {
	var b strings.Builder
	for i < len(lines) {
		m := item.FindStringSubmatch(lines[i])
		if m == nil {
			break
		}
		text := []string{m[len(m)-1]}
		i++
		for i < len(lines) && lines[i] != "" && (lines[i][0] == ' ' || lines[i][0] == '\t') {
			text = append(text, strings.TrimSpace(lines[i]))
			i++
		}
		b.WriteString("\t<li>" + rstInline(strings.Join(text, " ")) + "</li>\n")
		for i < len(lines) && strings.TrimSpace(lines[i]) == "" && i+1 < len(lines) && item.MatchString(lines[i+1]) {
			i++
		}
	}
	return b.String(), i
}

// rstLiteralBlock "::" sonrasındaki girintili bloğu girintisi alınmış olarak döndürür.
func rstLiteralBlock(lines []string, i int) (string, int) {
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	var block []string
	indent := -1
	for i < len(lines) {
		l := lines[i]
		if strings.TrimSpace(l) == "" {
			block = append(block, "")
			i++
			continue
		}
		lead := len(l) - len(strings.TrimLeft(l, " \t"))
		if lead == 0 {
			break
		}
		if indent == -1 || lead < indent {
			indent = lead
		}
		block = append(block, l)
		i++
	}
	for len(block) > 0 && block[len(block)-1] == "" {
		block = block[:len(block)-1]
	}
	for j, l := range block {
		if len(l) >= indent && indent > 0 {
			block[j] = l[indent:]
		}
	}
	return strings.Join(block, "\n"), i
}
