package i18n

import "context"

type contextKey struct{}

// CookieName stores the language picked in the switcher.
const CookieName = "assoc_lang"

func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, contextKey{}, lang)
}

// FromContext returns the request language, or Default.
func FromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(contextKey{}).(string); ok && lang != "" {
		return lang
	}
	return Default
}
