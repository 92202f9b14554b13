package memory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer décompose en NFD, retire les marques diacritiques puis
// recompose. "Électroménager" et "electromenager" se replient sur la même clé.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold normalise une chaîne pour la recherche : accents retirés, minuscules.
func fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// foldContains vrai si query apparaît dans s, sans tenir compte de la casse
// ni des accents.
func foldContains(s, query string) bool {
	return strings.Contains(fold(s), fold(query))
}
