package markup

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// StripTags tüm HTML etiketlerini ve yorumlarını kaldırır. script/style gibi
// elemanların içeriği atılır; geriye kalan metin HTML olarak escape edilir,
// bu yüzden çıktı şablonda güvenle basılabilir.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}
	return strictPolicy.Sanitize(s)
}
