package messages

import "log/slog"

// DefaultLanguage is used when no WithDefaultLanguage option is given.
const DefaultLanguage = "en"

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when a requested one is missing or unmatched.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls what Translate returns for unknown keys: the key itself
// (the default) or an empty string.
func WithFallbackToKey(enabled bool) Option {
	return func(c *Catalog) {
		c.fallbackToKey = enabled
	}
}

// WithLogger reports missing messages at debug level. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}
