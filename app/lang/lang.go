package lang

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// All is the target token requesting every supported language
const All = "all"

// Supported holds languages available on the translation site, in menu order
var Supported = []string{
	"Arabic", "German", "English", "Spanish", "French", "Hebrew", "Japanese",
	"Dutch", "Polish", "Portuguese", "Romanian", "Russian", "Turkish",
}

// Normalize returns language name with the first letter upper-cased and the rest lower-cased
func Normalize(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + strings.ToLower(name[size:])
}

// IsSupported checks language name against Supported ignoring case
func IsSupported(name string) bool {
	normalized := Normalize(name)
	for _, l := range Supported {
		if l == normalized {
			return true
		}
	}
	return false
}

// Menu returns numbered list of supported languages
func Menu() string {
	var b strings.Builder
	for i, l := range Supported {
		fmt.Fprintf(&b, "%d. %s\n", i+1, l)
	}
	return b.String()
}
