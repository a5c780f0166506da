// Package text holds stateless string transforms and predicates.
package text

import (
	"crypto/rand"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

var (
	wordStart   = regexp.MustCompile(`\b\w`)
	emailRe     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	hashtagRe   = regexp.MustCompile(`#[a-zA-Z0-9_]+`)
	mentionRe   = regexp.MustCompile(`@[a-zA-Z0-9_]+`)
	nonSlugRe   = regexp.MustCompile(`[^a-z0-9]`)
	dashRunRe   = regexp.MustCompile(`-+`)
	htmlEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")
)

// Schemes that need a host to form a usable URL.
var hostSchemes = map[string]bool{
	"http": true, "https": true, "ws": true, "wss": true, "ftp": true,
}

const randomAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Truncate shortens s to at most max runes, replacing the tail with "...".
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	keep := max - len(ellipsis)
	if keep < 0 {
		keep = 0
	}
	runes := []rune(s)
	return string(runes[:keep]) + ellipsis
}

// SanitizeHTML escapes angle brackets so markup renders as text.
func SanitizeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// CapitalizeWords upper-cases the first character of every word.
func CapitalizeWords(s string) string {
	return wordStart.ReplaceAllStringFunc(s, strings.ToUpper)
}

// NormalizeWhitespace collapses whitespace runs to one space and trims.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// WordCount counts whitespace-separated words. Blank text has zero words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ExtractHashtags returns every #tag in order of appearance.
func ExtractHashtags(s string) []string {
	return findAll(hashtagRe, s)
}

// ExtractMentions returns every @handle in order of appearance.
func ExtractMentions(s string) []string {
	return findAll(mentionRe, s)
}

func findAll(re *regexp.Regexp, s string) []string {
	matches := re.FindAllString(s, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}

// ToSlug lower-cases s and joins its alphanumeric runs with single dashes.
func ToSlug(s string) string {
	slug := nonSlugRe.ReplaceAllString(strings.ToLower(s), "-")
	slug = dashRunRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// IsValidURL reports whether s is an absolute URL. Web schemes must also
// carry a host.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	if hostSchemes[strings.ToLower(u.Scheme)] {
		return u.Host != ""
	}
	return u.Opaque != "" || u.Host != "" || u.Path != ""
}

// RandomString returns n characters drawn uniformly from [A-Za-z0-9].
func RandomString(n int) string {
	if n <= 0 {
		return ""
	}
	// 248 is the largest multiple of 62 below 256; higher bytes are
	// rejected to keep the distribution uniform.
	const limit = 256 - 256%len(randomAlphabet)

	out := make([]byte, 0, n)
	buf := make([]byte, n+n/4+1)
	for len(out) < n {
		rand.Read(buf)
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, randomAlphabet[int(b)%len(randomAlphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out)
}
