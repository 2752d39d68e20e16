package i18n

import "go.uber.org/zap"

// DefaultLocale is used when a catalog is created without WithDefaultLocale.
const DefaultLocale = "en_US"

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLocale sets the locale consulted when the requested locale has
// no table or misses a key.
func WithDefaultLocale(locale string) Option {
	return func(c *Catalog) {
		if locale != "" {
			c.defaultLocale = locale
		}
	}
}

// WithLogger attaches a logger used to report missing keys at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}
