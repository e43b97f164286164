package i18n

// defaultLanguageOrder is the seeding order for synthesized catalogs; the
// first entry becomes the fallback of last resort.
var defaultLanguageOrder = []string{DefaultLanguage, "tr"}

// defaultCatalog returns the built-in catalog for a language, used when no
// catalog files exist yet. Unknown codes get the English tree.
func defaultCatalog(lang string) Catalog {
	switch lang {
	case "tr":
		return Catalog{
			"common": map[string]any{
				"yes": "Evet",
				"no":  "Hayır",
			},
			"greeting": map[string]any{
				"hello":   "Merhaba {user}!",
				"welcome": "{server} sunucusuna hoş geldin, {user}!",
			},
			"errors": map[string]any{
				"missing_permission": "Bunu yapma iznin yok.",
				"unknown_command":    "Bilinmeyen komut.",
			},
			"language": map[string]any{
				"changed": "Dil {value} olarak ayarlandı.",
				"unknown": "Bilinmeyen dil: {value}.",
			},
		}
	default:
		return Catalog{
			"common": map[string]any{
				"yes": "Yes",
				"no":  "No",
			},
			"greeting": map[string]any{
				"hello":   "Hello {user}!",
				"welcome": "Welcome to {server}, {user}!",
			},
			"errors": map[string]any{
				"missing_permission": "You are not allowed to do that.",
				"unknown_command":    "Unknown command.",
			},
			"language": map[string]any{
				"changed": "Language set to {value}.",
				"unknown": "Unknown language: {value}.",
			},
		}
	}
}
