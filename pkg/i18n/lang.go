package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language code seeded first when no catalogs exist.
const DefaultLanguage = "en"

// maxLangCodeLength limits candidate codes from external sources.
// RFC 5646 recommends 35 characters as the longest reasonable tag.
const maxLangCodeLength = 35

// normalizeLang validates a detected language candidate and reduces it to its
// lowercase base form ("en-US" becomes "en"). Candidates the tag parser
// rejects fall back to a plain lowercase alphabetic check, so nonstandard
// catalog codes still pass through. Returns "" for unusable input.
func normalizeLang(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > maxLangCodeLength {
		return ""
	}

	if tag, err := language.Parse(code); err == nil {
		if base, confidence := tag.Base(); confidence > language.No {
			return base.String()
		}
	}

	code = strings.ToLower(code)
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return ""
		}
	}
	return code
}
