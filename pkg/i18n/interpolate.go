package i18n

import (
	"regexp"
	"strconv"
	"strings"
)

// tokenRegex finds {token} placeholders in a template.
var tokenRegex = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// positionAliases maps semantic token names onto positional slots so templates
// written with named tokens keep working when the caller passes plain
// positional parameters.
var positionAliases = map[string]int{
	"user":       0,
	"username":   0,
	"name":       0,
	"server":     1,
	"servername": 1,
	"guild":      1,
	"channel":    2,
	"level":      3,
	"value":      4,
}

// Interpolate fills {token} placeholders in template from args. Named
// parameters take precedence; otherwise tokens resolve positionally.
// Unresolved tokens are left verbatim, and substituted values are never
// rescanned for tokens.
func Interpolate(template string, args Arguments) string {
	if len(args.Named) > 0 {
		return interpolateNamed(template, args.Named)
	}
	if len(args.Positional) > 0 {
		return interpolatePositional(template, args.Positional)
	}
	return template
}

// interpolateNamed replaces each {token} by the matching named parameter,
// comparing keys case-insensitively. Named keys are stored lowercase by
// ParseArgs; hand-built maps match on exact key as well.
func interpolateNamed(template string, named map[string]string) string {
	return tokenRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		if value, ok := named[strings.ToLower(name)]; ok {
			return value
		}
		if value, ok := named[name]; ok {
			return value
		}
		return match
	})
}

// interpolatePositional resolves tokens against an ordered parameter list.
// Numeric tokens map by index, aliases map through positionAliases, and as a
// last resort "key=value" entries are scanned for a case-insensitive name
// match.
func interpolatePositional(template string, positional []string) string {
	return tokenRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]

		if idx, err := strconv.Atoi(name); err == nil {
			if idx >= 0 && idx < len(positional) {
				return positional[idx]
			}
			return match
		}

		if idx, ok := positionAliases[strings.ToLower(name)]; ok && idx < len(positional) {
			return positional[idx]
		}

		for _, entry := range positional {
			if key, value, found := strings.Cut(entry, "="); found {
				if strings.EqualFold(strings.TrimSpace(key), name) {
					return value
				}
			}
		}

		return match
	})
}
