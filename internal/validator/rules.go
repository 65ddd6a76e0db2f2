package validator

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Alpha3Rgx matches an ISO 3166-1 alpha-3 code in either case.
var Alpha3Rgx = regexp.MustCompile(`^[A-Za-z]{3}$`)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MinRunes counts characters, not bytes, so "Åland" has five.
func MinRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) >= n
}

// In reports whether value is one of list.
func In[T comparable](value T, list ...T) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

func IsAlpha3(value string) bool {
	return Alpha3Rgx.MatchString(value)
}

// IsURL accepts absolute URLs with a scheme and host.
func IsURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
