package lifeskill

import "strings"

// Slugify normalizes a human-entered topic into a URL-safe identifier:
// lowercase, non-alphanumeric runs collapsed to a single hyphen, leading and
// trailing hyphens stripped. Slugify is idempotent.
func Slugify(topic string) string {
	lower := strings.ToLower(topic)

	var b strings.Builder
	b.Grow(len(lower))
	pendingHyphen := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
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
