package i18n

import (
	"strings"
	"unicode"
)

var latinToCyrillic = map[string]string{
	"a": "а", "b": "б", "c": "ц", "č": "ч", "ć": "ћ", "d": "д", "dž": "џ", "đ": "ђ",
	"e": "е", "f": "ф", "g": "г", "h": "х", "i": "и", "j": "ј", "k": "к", "l": "л",
	"lj": "љ", "m": "м", "n": "н", "nj": "њ", "o": "о", "p": "п", "r": "р", "s": "с",
	"š": "ш", "t": "т", "u": "у", "v": "в", "z": "з", "ž": "ж",
}

// ToCyrillic transliterates Serbian Latin script to Cyrillic. Format verbs
// (%d, %s, ...) and letters without a Serbian counterpart are kept.
func ToCyrillic(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) * 2)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '%' && i+1 < len(runes) {
			b.WriteRune(r)
			b.WriteRune(runes[i+1])
			i++
			continue
		}

		if i+1 < len(runes) {
			pair := strings.ToLower(string(runes[i : i+2]))
			if cyr, ok := latinToCyrillic[pair]; ok && len([]rune(pair)) == 2 {
				b.WriteString(matchCase(cyr, r))
				i++
				continue
			}
		}

		if cyr, ok := latinToCyrillic[string(unicode.ToLower(r))]; ok {
			b.WriteString(matchCase(cyr, r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func matchCase(cyr string, src rune) string {
	if unicode.IsUpper(src) {
		return strings.ToUpper(cyr)
	}
	return cyr
}
