package i18n

import (
	"regexp"
	"strings"
)

// Arguments is the classified form of a raw "locale" argument list. A fresh
// value is built for every invocation and discarded after interpolation.
//
// When both Named and Positional end up non-empty, Named drives
// interpolation.
type Arguments struct {
	// Lang is an explicit language request embedded in the arguments,
	// bypassing detection. Valid only when Override is true.
	Lang string

	// Override marks that Lang was set by the caller.
	Override bool

	// OptionalDefault marks the "lang?|default" syntax, where the language
	// part may be empty and the part after the pipe supplies a default.
	OptionalDefault bool

	// Named holds "key:value" parameters with lowercase-normalized keys.
	// Values keep their original case.
	Named map[string]string

	// Positional holds plain parameters in input order. Positionals are
	// indexed independently of named parameters.
	Positional []string
}

// langToken matches a bare 2-3 letter language code like "en" or "tur".
var langToken = regexp.MustCompile(`^[a-zA-Z]{2,3}$`)

// ParseArgs classifies raw arguments in input order. The rules are mutually
// exclusive and first-match-wins:
//
//  1. contains ":"  -> named parameter, split at the first colon, both sides
//     trimmed; dropped entirely when either side trims to empty;
//  2. contains "|"  -> optional-with-default language: split at the first
//     pipe, a literal "?" is stripped from the language part, and the default
//     part is used when the language part trims to empty;
//  3. 2-3 alphabetic letters -> explicit language override;
//  4. anything else -> positional parameter.
//
// Empty and whitespace-only arguments are skipped. No arguments at all yield
// zero Arguments with Override false.
func ParseArgs(raw []string) Arguments {
	args := Arguments{Named: make(map[string]string)}

	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		switch {
		case strings.Contains(item, ":"):
			key, value, _ := strings.Cut(item, ":")
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			if key == "" || value == "" {
				continue
			}
			args.Named[strings.ToLower(key)] = value

		case strings.Contains(item, "|"):
			langPart, defaultPart, _ := strings.Cut(item, "|")
			langPart = strings.TrimSpace(strings.ReplaceAll(langPart, "?", ""))
			lang := langPart
			if lang == "" {
				lang = strings.TrimSpace(defaultPart)
			}
			if lang == "" {
				continue
			}
			args.Lang = strings.ToLower(lang)
			args.Override = true
			args.OptionalDefault = true

		case langToken.MatchString(item):
			args.Lang = strings.ToLower(item)
			args.Override = true

		default:
			args.Positional = append(args.Positional, item)
		}
	}

	return args
}
