// Package i18n provides runtime localization for chat-bot command responses.
// Given a translation key, a raw argument list and the caller's identity, it
// returns interpolated text in the language the caller prefers.
//
// The package is built from small composable parts:
//
//   - Store keeps one catalog (a nested tree of translation strings) per
//     language code and remembers load order; the first loaded language is the
//     fallback of last resort.
//   - ParseArgs classifies a raw argument list into named parameters,
//     positional parameters and an optional explicit language override.
//   - Interpolate fills {token} placeholders from either named or positional
//     parameters; unresolved tokens stay verbatim.
//   - The resolver detects the caller's language through a short-circuiting
//     chain: custom hook, user preference, guild preference. Preferences are
//     fetched through the host's interpreter when one is wired, or directly
//     from a prefs.VarStore otherwise. A failing collaborator degrades to "no
//     result"; detection never returns an error.
//   - Localizer composes all of the above behind a single Localize call and
//     exposes the "locale" command to the host's template engine.
//
// Catalogs are loaded once at startup from a CatalogSource (in-memory map,
// directory of per-language JSON/YAML files, or an S3 bucket) and mutated
// afterwards only through AddLocale. The worst-case outcome of any internal
// failure is the translation key itself returned verbatim; translation
// problems never surface as errors to the end user.
//
// Usage:
//
//	loc, err := i18n.New(ctx, i18n.NewDirSource("./locales"),
//		i18n.WithVarStore(prefs.NewMemory()),
//		i18n.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//
//	text, err := loc.Localize(ctx, "greeting.hello", []string{"user:Alice"}, i18n.Caller{UserID: "42"})
//	// text == "Hello Alice!"
package i18n
