// Package i18n resolves the UI language and picks localized strings, both
// from the message catalog and from backend content maps.
package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

// Language codes used by the backend content maps and the UI.
const (
	SerbianLatin    = "sr-latin"
	SerbianCyrillic = "sr-cyrillic"
	English         = "en"
	Swedish         = "sv"

	// Default is the UI language when nothing else matches.
	Default = SerbianLatin
	// ContentFallback is tried when content lacks the requested language.
	ContentFallback = SerbianCyrillic
)

var (
	tagSrLatn = language.MustParse("sr-Latn")
	tagSrCyrl = language.MustParse("sr-Cyrl")

	codes = []string{SerbianLatin, SerbianCyrillic, English, Swedish}
	tags  = []language.Tag{tagSrLatn, tagSrCyrl, language.English, language.Swedish}

	matcher = language.NewMatcher(tags)

	labels = map[string]string{
		SerbianLatin:    "Srpski (latinica)",
		SerbianCyrillic: "Српски (ћирилица)",
		English:         "English",
		Swedish:         "Svenska",
	}
)

// Codes returns the supported language codes in display order.
func Codes() []string {
	return append([]string(nil), codes...)
}

// Supported reports whether code is a supported language code.
func Supported(code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// Tag returns the BCP 47 tag for a language code, or the default's tag.
func Tag(code string) language.Tag {
	for i, c := range codes {
		if c == code {
			return tags[i]
		}
	}
	return tagSrLatn
}

// Parse accepts a language code ("sr-cyrillic") or a BCP 47 tag ("sr-Cyrl",
// "en-GB") and returns the matching code.
func Parse(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if Supported(strings.ToLower(s)) {
		return strings.ToLower(s), true
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return codes[idx], true
}

// Match picks the best supported language for an Accept-Language header,
// falling back to def.
func Match(accept, def string) string {
	prefs, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(prefs) == 0 {
		return def
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return def
	}
	return codes[idx]
}

// Option is one entry of the language switcher.
type Option struct {
	Code   string
	Label  string
	Active bool
}

// Options lists the switcher entries with active marked.
func Options(active string) []Option {
	opts := make([]Option, 0, len(codes))
	for _, c := range codes {
		opts = append(opts, Option{Code: c, Label: labels[c], Active: c == active})
	}
	return opts
}

// Pick returns text in lang, then in the content fallback, then the first
// non-empty value by key order. Nil or empty maps yield "".
func Pick(text model.LocalizedText, lang string) string {
	if v := text[lang]; v != "" {
		return v
	}
	if v := text[ContentFallback]; v != "" {
		return v
	}
	keys := make([]string, 0, len(text))
	for k := range text {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := text[k]; v != "" {
			return v
		}
	}
	return ""
}

// T formats the catalog message key in lang.
func T(lang, key string, args ...any) string {
	return message.NewPrinter(Tag(lang)).Sprintf(key, args...)
}
