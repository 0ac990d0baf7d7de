// Package builder compiles conversion plans from decoded schema values into
// Go types.
//
// A Builder walks an ordered chain of cases. For every (schema node,
// destination type) pair the first matching case builds a Plan once. Plans
// are cached and replayed for every decoded value of that pair.
package builder

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"schema-caster/node"
	"schema-caster/options"
	"schema-caster/primitive"
	"schema-caster/schema"
)

// Builder is the case chain. It is safe for concurrent use.
type Builder struct {
	cases      []Case
	categories primitive.CategoryEnum
	logger     *slog.Logger
	cacheSize  int

	cache *lru.Cache[Key, *Plan]
	group singleflight.Group

	mu           sync.RWMutex
	constructors []node.Constructor
}

type Option func(*Builder)

// WithCases replaces the case chain.
func WithCases(cases ...Case) Option {
	return func(b *Builder) {
		b.cases = slices.Clone(cases)
	}
}

// WithCase puts c in front of the case chain.
func WithCase(c Case) Option {
	return func(b *Builder) {
		b.cases = append([]Case{c}, b.cases...)
	}
}

// WithCategories sets the enabled primitive conversion categories.
func WithCategories(categories primitive.CategoryEnum) Option {
	return func(b *Builder) {
		b.categories = categories
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithCacheSize bounds the plan cache.
func WithCacheSize(size int) Option {
	return func(b *Builder) {
		if size <= 0 {
			panic(fmt.Sprintf("cache size must be positive, got %d", size))
		}

		b.cacheSize = size
	}
}

// WithConstructor registers fn as a sequence constructor, see
// Builder.RegisterConstructor. It panics if fn is not a constructor.
func WithConstructor(fn any) Option {
	c, err := node.ParseConstructor(fn)
	if err != nil {
		panic(err)
	}

	return func(b *Builder) {
		b.constructors = append(b.constructors, c)
	}
}

// New returns a builder with the default case chain and categories.
func New(opts ...Option) *Builder {
	b := &Builder{
		cases:      DefaultCases(),
		categories: primitive.CategoryDefault,
		logger:     slog.New(slog.DiscardHandler),
		cacheSize:  options.DefaultCacheSize,
	}

	for _, opt := range opts {
		opt(b)
	}

	cache, err := lru.New[Key, *Plan](b.cacheSize)
	if err != nil {
		panic(err)
	}
	b.cache = cache

	return b
}

// NewFromConfig returns a builder configured by cfg. Options are applied
// after the configuration.
func NewFromConfig(cfg options.Config, opts ...Option) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	categories, err := cfg.CategorySet()
	if err != nil {
		return nil, err
	}

	base := []Option{WithCategories(categories)}
	if cfg.CacheSize > 0 {
		base = append(base, WithCacheSize(cfg.CacheSize))
	}

	return New(append(base, opts...)...), nil
}

// RegisterConstructor adds fn to the constructors consulted by the generic
// fallback. fn accepts []E, a named slice of E or iter.Seq[E] and returns
// the destination type, optionally with an error. Constructors registered
// first take precedence.
func (b *Builder) RegisterConstructor(fn any) error {
	c, err := node.ParseConstructor(fn)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.constructors = append(b.constructors, c)
	return nil
}

func (b *Builder) registered(t, elem reflect.Type) (node.Constructor, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, c := range b.constructors {
		if c.Accepts(t, elem) {
			return c, true
		}
	}

	return node.Constructor{}, false
}

// Build returns the plan converting values of schema s into type t. Plans
// are built at most once per pair and cached. A failed build caches nothing.
func (b *Builder) Build(s schema.Node, t reflect.Type) (*Plan, error) {
	if s == nil || t == nil {
		return nil, unsupported(s, t, "schema and type are required")
	}

	key := Key{Schema: s, Type: t}
	if p, ok := b.cache.Get(key); ok {
		b.logger.Debug("plan cache hit", slog.String("schema", s.String()), slog.String("type", t.String()))
		return p, nil
	}

	v, err, _ := b.group.Do(fmt.Sprintf("%p/%p", s, t), func() (any, error) {
		if p, ok := b.cache.Get(key); ok {
			return p, nil
		}

		sess := newSession(b)
		p, err := sess.Resolve(s, t)
		if err != nil {
			return nil, err
		}

		sess.commit()
		return p, nil
	})
	if err != nil {
		b.logger.Debug("plan build failed", slog.String("schema", s.String()), slog.String("type", t.String()),
			slog.Any("error", err))
		return nil, err
	}

	return v.(*Plan), nil
}

// Cached reports whether a plan for the pair is cached.
func (b *Builder) Cached(s schema.Node, t reflect.Type) bool {
	return b.cache.Contains(Key{Schema: s, Type: t})
}

// Len returns the number of cached plans.
func (b *Builder) Len() int {
	return b.cache.Len()
}

// Purge drops every cached plan.
func (b *Builder) Purge() {
	b.cache.Purge()
}

func (b *Builder) dispatch(s schema.Node, t reflect.Type) Case {
	for _, c := range b.cases {
		if c.Match(s, t) {
			return c
		}
	}

	return nil
}
