package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-ddmform/pkg/locale"
)

// ErrMissingKey is returned by Translate when no table resolves the key.
var ErrMissingKey = errors.New("i18n: missing translation")

// Catalog stores flattened message tables per locale. It is safe for
// concurrent use; loading and lookups may interleave.
type Catalog struct {
	mu            sync.RWMutex
	tables        map[string]map[string]string
	defaultLocale string
	logger        *zap.Logger
}

// New returns an empty catalog.
func New(options ...Option) *Catalog {
	c := &Catalog{
		tables:        make(map[string]map[string]string),
		defaultLocale: DefaultLocale,
		logger:        zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	c.defaultLocale = locale.Normalize(c.defaultLocale)
	return c
}

// Add merges messages into the table for locale. Later calls win on key
// collisions.
func (c *Catalog) Add(loc string, messages map[string]string) {
	loc = locale.Normalize(loc)
	if loc == "" || len(messages) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	table, ok := c.tables[loc]
	if !ok {
		table = make(map[string]string, len(messages))
		c.tables[loc] = table
	}
	for key, value := range messages {
		if key = strings.TrimSpace(key); key != "" {
			table[key] = value
		}
	}
}

// Locales returns the locales with at least one message, sorted.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.tables))
	for loc := range c.tables {
		out = append(out, loc)
	}
	sort.Strings(out)
	return out
}

// DefaultLocale reports the locale used as last resort.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Translate resolves key for the requested locale. The nearest table is
// picked with locale.Match; the default locale table is consulted when the
// key is missing there. Args are applied with fmt.Sprintf when the message
// carries verbs.
func (c *Catalog) Translate(requested, key string, args ...any) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrMissingKey)
	}

	msg, ok := c.message(requested, key)
	if !ok {
		c.logger.Debug("translation missing",
			zap.String("locale", requested),
			zap.String("key", key),
		)
		return "", fmt.Errorf("%w: %s (%s)", ErrMissingKey, key, requested)
	}
	if len(args) > 0 && strings.Contains(msg, "%") {
		msg = fmt.Sprintf(msg, args...)
	}
	return msg, nil
}

// Lookup resolves a theme-scoped message: "<scope>-<key>" first, then
// "<table>-<key>". The key itself is returned when neither exists so callers
// always get displayable text.
func (c *Catalog) Lookup(requested, table, key, scope string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	candidates := make([]string, 0, 2)
	if scope = strings.TrimSpace(scope); scope != "" {
		candidates = append(candidates, scope+"-"+key)
	}
	if table = strings.TrimSpace(table); table != "" && table != scope {
		candidates = append(candidates, table+"-"+key)
	}
	for _, candidate := range candidates {
		if msg, ok := c.message(requested, candidate); ok {
			return msg
		}
	}
	return key
}

func (c *Catalog) message(requested, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.tables) == 0 {
		return "", false
	}

	locales := make([]string, 0, len(c.tables))
	for loc := range c.tables {
		locales = append(locales, loc)
	}
	sort.Strings(locales)

	if idx := locale.Match(requested, locales, c.defaultLocale); idx >= 0 {
		if msg, ok := c.tables[locales[idx]][key]; ok {
			return msg, true
		}
	}
	if msg, ok := c.tables[c.defaultLocale][key]; ok {
		return msg, true
	}
	return "", false
}
