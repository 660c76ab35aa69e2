package service

import (
	"fmt"
	"html"
	"regexp"
	"sort"
	"strings"
)

// ResponseRenderer はボットの応答をHTMLに変換する
// 観光地名と金額（₹数字）をそれぞれクリック可能なspanで囲む
type ResponseRenderer struct {
	pattern *regexp.Regexp
	terms   map[string]string // 表記 -> 観光地ID
}

// NewResponseRenderer はリンク化する観光地名の一覧からレンダラーを作成
func NewResponseRenderer(terms map[string]string) *ResponseRenderer {
	names := make([]string, 0, len(terms))
	for name := range terms {
		names = append(names, name)
	}
	// 長い表記を優先（"Hundru Falls" を "Hundru" より先に一致させる）
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	alternatives := make([]string, 0, len(names)+1)
	for _, name := range names {
		alternatives = append(alternatives, regexp.QuoteMeta(html.EscapeString(name)))
	}
	alternatives = append(alternatives, `₹\d+`)

	escapedTerms := make(map[string]string, len(terms))
	for name, id := range terms {
		escapedTerms[html.EscapeString(name)] = id
	}

	return &ResponseRenderer{
		pattern: regexp.MustCompile(strings.Join(alternatives, "|")),
		terms:   escapedTerms,
	}
}

// Render はテキストをエスケープしたうえで観光地名と金額をspanで囲む
// 置換は1回の走査で行うため、span同士が入れ子になることはない
func (r *ResponseRenderer) Render(text string) string {
	escaped := html.EscapeString(text)
	return r.pattern.ReplaceAllStringFunc(escaped, func(m string) string {
		if id, ok := r.terms[m]; ok {
			return fmt.Sprintf(`<span class="place-link" data-place-id="%s">%s</span>`, id, m)
		}
		return fmt.Sprintf(`<span class="price-tag">%s</span>`, m)
	})
}
