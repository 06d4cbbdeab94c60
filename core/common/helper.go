package common

import (
	"net/url"
	"unicode/utf8"
)

func IsURL(str string) bool {
	u, err := url.Parse(str)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Summarize 截取前 limit 个字符作为摘要，超长时追加省略号
func Summarize(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit]) + "..."
}
