package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make derives a URL-safe slug from a display name: accents stripped,
// non-alphanumeric runs collapsed to a single hyphen, edges trimmed,
// lowercased. "Lógico-Matemática" becomes "logico-matematica".
func Make(name string) string {
	plain, _, err := transform.String(stripAccents, name)
	if err != nil {
		plain = name
	}
	plain = strings.ToLower(plain)

	var b strings.Builder
	pendingHyphen := false
	for _, r := range plain {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
