// Package styling accumulates conditional style fragments for UI elements.
//
// A StyleCollector is created once per element and filled while the
// defining package initialises:
//
//	button := styling.NewCollector[Props, State, Theme]("button").
//		Element([]string{"color: ", ";"}, func(t Theme) any { return t.Primary })
//	button.Modifier(func(p Props, _ State) bool { return p.Disabled })(
//		[]string{"opacity: 0.5;"},
//	)
//
// The collector never evaluates predicates or expressions; a renderer does
// that later with the definitions returned by Get.
package styling

// Option configures a StyleCollector
type Option func(*options)

type options struct {
	hasher Hasher
}

// WithHasher replaces the content hash used for new definitions
func WithHasher(h Hasher) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}

// StyleCollector owns the ordered fragments registered for one element.
// It is meant for a single writer and does no locking.
type StyleCollector[P, S, T any] struct {
	elementName string
	hasher      Hasher
	definitions []StyleDefinition[P, S, T]
}

// NewCollector creates an empty collector for elementName
func NewCollector[P, S, T any](elementName string, opts ...Option) *StyleCollector[P, S, T] {
	o := options{hasher: Hash}
	for _, opt := range opts {
		opt(&o)
	}
	return &StyleCollector[P, S, T]{
		elementName: elementName,
		hasher:      o.hasher,
	}
}

// Element registers a base fragment that always applies
func (c *StyleCollector[P, S, T]) Element(styles []string, expressions ...Expression[T]) *StyleCollector[P, S, T] {
	return c.register(styles, expressions, ElementSeparator, Always[P, S]())
}

// Modifier captures predicate and returns a function that registers the
// fragment it guards. Both steps together produce one definition.
func (c *StyleCollector[P, S, T]) Modifier(predicate Predicate[P, S]) func(styles []string, expressions ...Expression[T]) *StyleCollector[P, S, T] {
	if predicate == nil {
		predicate = Always[P, S]()
	}
	return func(styles []string, expressions ...Expression[T]) *StyleCollector[P, S, T] {
		return c.register(styles, expressions, ModifierSeparator, predicate)
	}
}

// ElementName returns the identifier given at construction
func (c *StyleCollector[P, S, T]) ElementName() string {
	return c.elementName
}

// Get returns the definitions in registration order. The slice is a copy;
// later registrations do not show up in it.
func (c *StyleCollector[P, S, T]) Get() []StyleDefinition[P, S, T] {
	out := make([]StyleDefinition[P, S, T], len(c.definitions))
	copy(out, c.definitions)
	return out
}

// Len returns the number of registered definitions
func (c *StyleCollector[P, S, T]) Len() int {
	return len(c.definitions)
}

// Summaries describes every definition without evaluating anything
func (c *StyleCollector[P, S, T]) Summaries() []Summary {
	out := make([]Summary, 0, len(c.definitions))
	for i, d := range c.definitions {
		out = append(out, d.Summarize(c.elementName, i))
	}
	return out
}

func (c *StyleCollector[P, S, T]) register(styles []string, expressions []Expression[T], sep Separator, predicate Predicate[P, S]) *StyleCollector[P, S, T] {
	c.definitions = append(c.definitions, StyleDefinition[P, S, T]{
		Hash:        c.hasher(literalKey(styles)),
		Styles:      append([]string(nil), styles...),
		Expressions: append([]Expression[T](nil), expressions...),
		Predicate:   predicate,
		Separator:   sep,
	})
	return c
}
