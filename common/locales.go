package common

// Locales lists every locale the site renders. Content pages are not
// locale-partitioned: one record feeds the shared navigation of all
// locales, so invalidation always fans out over this whole set.
var Locales = []string{"tr", "en", "ar"}

const DefaultLocale = "tr"

func IsLocale(s string) bool {
	for _, l := range Locales {
		if l == s {
			return true
		}
	}
	return false
}
