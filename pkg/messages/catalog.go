package messages

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/validity/pkg/logger"
	"github.com/dmitrymomot/validity/pkg/validator"
)

// FieldParam is the template parameter that carries the field path in Localize.
const FieldParam = "field"

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Catalog holds message templates per language. It is read-only once built and safe for
// concurrent use.
type Catalog struct {
	messages      map[string]map[string]any
	langs         []string
	matcher       language.Matcher
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger
}

// New builds a catalog from language → nested key → template. Keys are looked up with dot
// notation, so "string.min_len" reads messages[lang]["string"]["min_len"].
func New(messages map[string]map[string]any, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	for lang := range messages {
		if strings.TrimSpace(lang) == "" {
			return nil, ErrEmptyLanguage
		}
		if _, err := language.Parse(lang); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, lang, err)
		}
	}
	if len(messages) > 0 {
		if _, ok := messages[c.defaultLang]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoDefaultMessages, c.defaultLang)
		}
	}

	c.messages = maps.Clone(messages)
	if c.messages == nil {
		c.messages = map[string]map[string]any{}
	}

	// The matcher falls back to its first tag, so the default language goes first.
	c.langs = []string{c.defaultLang}
	for _, lang := range slices.Sorted(maps.Keys(c.messages)) {
		if lang != c.defaultLang {
			c.langs = append(c.langs, lang)
		}
	}
	tags := make([]language.Tag, len(c.langs))
	for i, lang := range c.langs {
		tags[i] = language.Make(lang)
	}
	c.matcher = language.NewMatcher(tags)

	return c, nil
}

// LoadFile reads a YAML or JSON message file and builds a catalog from it.
func LoadFile(ctx context.Context, path string, opts ...Option) (*Catalog, error) {
	p := ParserForFile(path)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}
	data, err := p.Parse(ctx, content)
	if err != nil {
		return nil, err
	}
	return New(data, opts...)
}

// Load builds a catalog from cfg. An empty Path yields a catalog without messages, which
// renders every failure with its own message.
func Load(ctx context.Context, cfg Config, opts ...Option) (*Catalog, error) {
	opts = append([]Option{WithDefaultLanguage(cfg.DefaultLang)}, opts...)
	if cfg.Path == "" {
		return New(nil, opts...)
	}
	return LoadFile(ctx, cfg.Path, opts...)
}

// Languages lists the catalog languages, default first.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.langs)
}

// DefaultLanguage returns the fallback language.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Match picks the best catalog language for an Accept-Language style value such as
// "de-CH, fr;q=0.8". Unparsable or unmatched input yields the default language.
func (c *Catalog) Match(accept string) string {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return c.defaultLang
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.defaultLang
	}
	return c.langs[idx]
}

// Translate renders key for lang with %{name} placeholders replaced from params.
// Missing languages fall back to the best match, then to the default language.
// Unknown keys render as the key itself, or "" when WithFallbackToKey(false) is set.
func (c *Catalog) Translate(lang, key string, params map[string]any) string {
	if tmpl, ok := c.lookup(lang, key); ok {
		return render(tmpl, params)
	}
	if c.fallbackToKey {
		return render(key, params)
	}
	return ""
}

// Message renders a single validation error. Predicate failures with a Key are translated
// with their Params plus the field path; anything else keeps its own text.
func (c *Catalog) Message(lang, field string, err error) string {
	if err == nil {
		return ""
	}
	var f *validator.Failure
	if errors.As(err, &f) && f.Key != "" {
		if tmpl, ok := c.lookup(lang, f.Key); ok {
			params := make(map[string]any, len(f.Params)+1)
			maps.Copy(params, f.Params)
			if field != "" {
				params[FieldParam] = field
			}
			return render(tmpl, params)
		}
	}
	return err.Error()
}

// Localize groups the messages of every failure in err by field path, rendered in lang.
// Returns nil for a nil err.
func (c *Catalog) Localize(lang string, err error) map[string][]string {
	if err == nil {
		return nil
	}
	out := make(map[string][]string)
	validator.Walk(err, func(path string, leaf error) {
		out[path] = append(out[path], c.Message(lang, path, leaf))
	})
	return out
}

func (c *Catalog) lookup(lang, key string) (string, bool) {
	resolved := lang
	if _, ok := c.messages[resolved]; !ok {
		resolved = c.Match(lang)
	}
	if tmpl, ok := c.find(resolved, key); ok {
		return tmpl, true
	}
	if resolved != c.defaultLang {
		if tmpl, ok := c.find(c.defaultLang, key); ok {
			return tmpl, true
		}
	}
	c.logger.Debug("message not found",
		logger.Component("messages"),
		logger.Lang(lang),
		slog.String("key", key),
	)
	return "", false
}

func (c *Catalog) find(lang, key string) (string, bool) {
	current, ok := c.messages[lang]
	if !ok {
		return "", false
	}
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		if current, ok = asMap(val); !ok {
			return "", false
		}
	}
	return "", false
}

// asMap accepts both decoded map flavours; yaml.v3 yields map[string]any but hand-built
// catalogs may nest map[any]any.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// render replaces %{name} placeholders. Unknown placeholders are kept as-is.
func render(tmpl string, params map[string]any) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
