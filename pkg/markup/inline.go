package markup

import (
	"html"
	"net/url"
	"regexp"
	"strings"
)

type inlineRule struct {
	re     *regexp.Regexp
	render func(m []string) string
}

// renderInline metni soldan sağa tarar; her adımda en erken eşleşen kuralı
// uygular, eşleşmeyen parçaları escape eder. Eşitlikte listede önce gelen
// kural kazanır.
func renderInline(s string, rules []inlineRule) string {
	var b strings.Builder
	for len(s) > 0 {
		best := -1
		var bestLoc []int
		for i, rule := range rules {
			loc := rule.re.FindStringSubmatchIndex(s)
			if loc == nil || loc[1] == loc[0] {
				continue
			}
			if best == -1 || loc[0] < bestLoc[0] {
				best, bestLoc = i, loc
			}
		}
		if best == -1 {
			b.WriteString(html.EscapeString(s))
			break
		}
		b.WriteString(html.EscapeString(s[:bestLoc[0]]))
		b.WriteString(rules[best].render(submatches(s, bestLoc)))
		s = s[bestLoc[1]:]
	}
	return b.String()
}

func submatches(s string, loc []int) []string {
	m := make([]string, len(loc)/2)
	for i := range m {
		if loc[2*i] >= 0 {
			m[i] = s[loc[2*i]:loc[2*i+1]]
		}
	}
	return m
}

// anchor yalnızca http, https, mailto ve göreli adresler için bağlantı
// üretir; diğer şemalarda (javascript:, data: ...) sadece metin kalır.
func anchor(href, inner string) string {
	if !safeHref(href) {
		return inner
	}
	return `<a href="` + html.EscapeString(href) + `">` + inner + `</a>`
}

func safeHref(href string) bool {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return true
	}
	return false
}

// splitBlocks metni boş satırlarla ayrılmış bloklara böler.
func splitBlocks(src string) [][]string {
	var blocks [][]string
	var cur []string
	for _, line := range splitLines(src) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return lines
}
