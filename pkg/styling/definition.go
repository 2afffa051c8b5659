package styling

import (
	"errors"
	"fmt"
	"strings"
)

// Separator distinguishes base fragments from modifier fragments
type Separator string

const (
	// ElementSeparator marks a fragment registered through Element
	ElementSeparator Separator = "__"
	// ModifierSeparator marks a fragment registered through Modifier
	ModifierSeparator Separator = "--"
)

// ErrMisalignedTemplate is returned by Validate when the literal segments and
// expressions cannot be interleaved.
var ErrMisalignedTemplate = errors.New("styling: template segments and expressions are misaligned")

// Expression produces a dynamic style value from a theme.
// The value is usually a string or a number.
type Expression[T any] func(theme T) any

// Predicate decides whether a fragment applies for the given props and state
type Predicate[P, S any] func(props P, state S) bool

// Always returns a predicate that accepts every input
func Always[P, S any]() Predicate[P, S] {
	return func(P, S) bool { return true }
}

// StyleDefinition is one registered fragment. It is never modified after the
// collector creates it.
type StyleDefinition[P, S, T any] struct {
	// Hash identifies the fragment by its literal text only
	Hash string

	// Styles holds the literal segments in template order
	Styles []string

	// Expressions are spliced between Styles:
	// Styles[0] + Expressions[0] + Styles[1] + ...
	Expressions []Expression[T]

	// Predicate is always set
	Predicate Predicate[P, S]

	Separator Separator
}

// IsModifier reports whether the definition was registered through Modifier
func (d StyleDefinition[P, S, T]) IsModifier() bool {
	return d.Separator == ModifierSeparator
}

// ClassName returns the BEM-like class name for the definition within element,
// e.g. "button__3f2a9c1d" or "button--77ab01ee".
func (d StyleDefinition[P, S, T]) ClassName(element string) string {
	return element + string(d.Separator) + d.Hash
}

// Validate checks that Styles has exactly one more segment than Expressions.
// The collector itself never calls it.
func (d StyleDefinition[P, S, T]) Validate() error {
	if len(d.Styles) != len(d.Expressions)+1 {
		return fmt.Errorf("%w: %d segments, %d expressions", ErrMisalignedTemplate, len(d.Styles), len(d.Expressions))
	}
	return nil
}

// Source renders the template with ${N} in place of each expression.
// Expressions are not evaluated.
func (d StyleDefinition[P, S, T]) Source() string {
	var b strings.Builder
	for i, s := range d.Styles {
		b.WriteString(s)
		if i < len(d.Expressions) {
			fmt.Fprintf(&b, "${%d}", i)
		}
	}
	// Trailing expressions without a following segment still show up
	for i := len(d.Styles); i < len(d.Expressions); i++ {
		fmt.Fprintf(&b, "${%d}", i)
	}
	return b.String()
}

// Summary is a theme-free view of a definition, safe to print or serialise
type Summary struct {
	Element     string   `json:"element" yaml:"element"`
	Index       int      `json:"index" yaml:"index"`
	Hash        string   `json:"hash" yaml:"hash"`
	Separator   string   `json:"separator" yaml:"separator"`
	ClassName   string   `json:"className" yaml:"className"`
	Conditional bool     `json:"conditional" yaml:"conditional"`
	Styles      []string `json:"styles" yaml:"styles"`
	Expressions int      `json:"expressions" yaml:"expressions"`
	Source      string   `json:"source" yaml:"source"`
}

// Summarize builds the Summary of d as the index-th fragment of element
func (d StyleDefinition[P, S, T]) Summarize(element string, index int) Summary {
	return Summary{
		Element:     element,
		Index:       index,
		Hash:        d.Hash,
		Separator:   string(d.Separator),
		ClassName:   d.ClassName(element),
		Conditional: d.IsModifier(),
		Styles:      append([]string(nil), d.Styles...),
		Expressions: len(d.Expressions),
		Source:      d.Source(),
	}
}
