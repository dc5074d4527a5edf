package bot

import (
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Button labels have to fit Telegram's size limit, so noisy title
// suffixes ("(From "...")", "feat. X") get stripped before truncation.
// Track titles themselves are never modified.

const maxLabelRunes = 48

var guffWords = []string{
	"remix", "remastered", "remaster", "version", "ver", "edit", "mix",
	"live", "acoustic", "instrumental", "karaoke", "cover", "from",
	"original", "official", "soundtrack", "radio", "single", "extended",
	"unplugged", "reprise", "feat", "ft",
}

type labelCleaner struct {
	enclosedExpr *regexp2.Regexp
	featExpr     *regexp2.Regexp
	yearExpr     *regexp2.Regexp
}

func newLabelCleaner() *labelCleaner {
	return &labelCleaner{
		enclosedExpr: regexp2.MustCompile(`(?i)(?<title>.+?)\s+(?<enclosed>\(.+\)|\[.+\])$`, 0),
		featExpr:     regexp2.MustCompile(`(?i)(?<title>.+?)\s+?[\[\(]?(?:feat(?:uring)?|ft)\b\.?\s*?.+`, 0),
		yearExpr:     regexp2.MustCompile(`(20[0-9]{2}|19[0-9]{2})`, 0),
	}
}

func (c *labelCleaner) Clean(text string) string {
	text = strings.TrimSpace(text)

	if match, _ := c.featExpr.FindStringMatch(text); match != nil {
		if title := strings.TrimSpace(match.GroupByName("title").String()); title != "" {
			text = title
		}
	}

	if match, _ := c.enclosedExpr.FindStringMatch(text); match != nil {
		enclosed := match.GroupByName("enclosed").String()
		title := strings.TrimSpace(match.GroupByName("title").String())
		if title != "" && c.isLikelyGuff(enclosed) {
			text = title
		}
	}

	return truncateLabel(text, maxLabelRunes)
}

func (c *labelCleaner) isLikelyGuff(enclosed string) bool {
	pt := strings.ToLower(strings.Trim(enclosed, "()[] "))
	for _, w := range guffWords {
		if strings.Contains(pt, w) {
			return true
		}
	}
	if match, _ := c.yearExpr.FindStringMatch(pt); match != nil {
		return true
	}
	return false
}

func truncateLabel(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}
