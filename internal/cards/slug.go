package cards

import (
	"strings"

	"github.com/gosimple/unidecode"
)

// Slugify derives the stable cross-platform identifier of a card name.
// Unicode letters are transliterated to their closest ASCII counterpart
// first, then every run of characters outside [a-z0-9] collapses into a
// single hyphen. The result carries no leading or trailing hyphens.
func Slugify(name string) string {
	ascii := strings.ToLower(unidecode.Unidecode(name))

	var b strings.Builder
	b.Grow(len(ascii))

	pendingHyphen := false
	for _, r := range ascii {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0

			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
