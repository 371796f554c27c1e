package partner

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	codePattern   = regexp.MustCompile(`^[A-Z0-9_]+$`)
	legalSuffixes = regexp.MustCompile(`(?i)\b(LLC|Inc|Corp|Corporation|Company|Co|Ltd|Limited)\b`)
)

// FallbackBase is used when nothing of the company name survives cleaning.
const FallbackBase = "PRTN"

func ValidCode(code string) bool { return codePattern.MatchString(code) }

// NormalizeCode trims and upper-cases a user supplied code.
func NormalizeCode(code string) string { return strings.ToUpper(strings.TrimSpace(code)) }

// GenerateCode derives a partner code from a company name: legal suffixes are
// dropped, then a single word yields its first four letters and several words
// yield an acronym of at most four letters. A two digit suffix from intn(100) is appended.
func GenerateCode(companyName string, intn func(n int) int) string {
	words := codeWords(legalSuffixes.ReplaceAllString(companyName, " "))

	var base string
	switch len(words) {
	case 0:
		base = FallbackBase
	case 1:
		base = words[0]
		if len(base) > 4 {
			base = base[:4]
		}
	default:
		var b strings.Builder
		for _, w := range words {
			if b.Len() == 4 {
				break
			}
			b.WriteByte(w[0])
		}
		base = b.String()
	}
	return fmt.Sprintf("%s%02d", base, intn(100)%100)
}

// codeWords splits on whitespace and keeps only code-safe characters of each word.
func codeWords(s string) []string {
	var out []string
	for _, f := range strings.Fields(s) {
		w := strings.Map(func(r rune) rune {
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				return unicode.ToUpper(r)
			}
			return -1
		}, f)
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
