package lyrics

import "strings"

// twiFold maps the extended Latin characters of the Twi orthography to their
// nearest ASCII equivalents. Uppercase forms fold through strings.ToLower
// before the replacement runs.
var twiFold = strings.NewReplacer(
	"ɛ", "e",
	"ɔ", "o",
	"ŋ", "n",
)

// Normalize lowercases text and substitutes Twi orthographic characters so
// that a query typed on a plain keyboard matches stored lyrics. Both the
// stored search columns and the query itself must pass through here before
// any comparison.
func Normalize(text string) string {
	return twiFold.Replace(strings.ToLower(text))
}
