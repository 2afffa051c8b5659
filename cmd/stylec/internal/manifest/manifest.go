// Package manifest compiles a YAML style manifest into element collectors.
//
// A manifest declares each element's fragments as literal segments plus
// theme tokens, with an optional condition for modifier fragments:
//
//	elements:
//	  - name: button
//	    fragments:
//	      - styles: ["color: ", ";"]
//	        tokens: ["colors.primary"]
//	      - when: { prop: disabled }
//	        styles: ["opacity: 0.5;"]
package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/recera/stylecollector/pkg/styling"
)

var (
	// ErrNoElements is returned for a manifest that declares nothing
	ErrNoElements = errors.New("manifest declares no elements")
	// ErrDuplicateElement is returned when two elements share a name
	ErrDuplicateElement = errors.New("duplicate element")
	// ErrUnknownTarget is returned when a condition names neither or both of prop and state
	ErrUnknownTarget = errors.New("condition must name exactly one of prop or state")
	// ErrUnnamedElement is returned for an element without a name
	ErrUnnamedElement = errors.New("element has no name")
)

// Values is the props, state and theme type of compiled collectors
type Values = map[string]any

// Collector is a collector compiled from a manifest
type Collector = styling.StyleCollector[Values, Values, Values]

// Manifest is the decoded YAML document
type Manifest struct {
	Elements []Element `yaml:"elements"`
}

// Element declares the fragments of one UI element
type Element struct {
	Name      string     `yaml:"name"`
	Fragments []Fragment `yaml:"fragments"`
}

// Fragment declares one registration. Without When it is a base fragment.
type Fragment struct {
	When   *Condition `yaml:"when,omitempty"`
	Styles []string   `yaml:"styles"`
	Tokens []string   `yaml:"tokens,omitempty"`
}

// Condition describes the predicate of a modifier fragment
type Condition struct {
	Prop  string `yaml:"prop,omitempty"`
	State string `yaml:"state,omitempty"`

	// Equals compares the value instead of testing truthiness
	Equals any  `yaml:"equals,omitempty"`
	Negate bool `yaml:"negate,omitempty"`
}

// Load reads and parses the manifest at path
func Load(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest and checks its structure
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if len(m.Elements) == 0 {
		return nil, ErrNoElements
	}

	seen := make(map[string]bool, len(m.Elements))
	for i, el := range m.Elements {
		if el.Name == "" {
			return nil, fmt.Errorf("element %d: %w", i, ErrUnnamedElement)
		}
		if seen[el.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateElement, el.Name)
		}
		seen[el.Name] = true
	}

	return &m, nil
}

// Names returns the element names in manifest order
func (m *Manifest) Names() []string {
	return lo.Map(m.Elements, func(el Element, _ int) string { return el.Name })
}

// Compile builds one collector per element, in manifest order, and registers
// each in reg when reg is not nil.
func (m *Manifest) Compile(reg *styling.Registry) ([]*Collector, error) {
	collectors := make([]*Collector, 0, len(m.Elements))
	for _, el := range m.Elements {
		c, err := el.Compile()
		if err != nil {
			return nil, err
		}
		collectors = append(collectors, c)
	}

	if reg != nil {
		for _, c := range collectors {
			reg.Register(c)
		}
	}
	return collectors, nil
}

// Compile builds the collector for the element
func (el Element) Compile() (*Collector, error) {
	c := styling.NewCollector[Values, Values, Values](el.Name)

	for i, f := range el.Fragments {
		exprs := lo.Map(f.Tokens, func(token string, _ int) styling.Expression[Values] {
			return TokenExpression(token)
		})

		def := styling.StyleDefinition[Values, Values, Values]{Styles: f.Styles, Expressions: exprs}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("element %s, fragment %d: %w", el.Name, i, err)
		}

		if f.When == nil {
			c.Element(f.Styles, exprs...)
			continue
		}

		pred, err := f.When.Predicate()
		if err != nil {
			return nil, fmt.Errorf("element %s, fragment %d: %w", el.Name, i, err)
		}
		c.Modifier(pred)(f.Styles, exprs...)
	}

	return c, nil
}

// Predicate builds the predicate the condition describes
func (cond *Condition) Predicate() (styling.Predicate[Values, Values], error) {
	if (cond.Prop == "") == (cond.State == "") {
		return nil, ErrUnknownTarget
	}

	key, fromState := cond.Prop, false
	if cond.State != "" {
		key, fromState = cond.State, true
	}

	equals, negate := cond.Equals, cond.Negate
	return func(props, state Values) bool {
		src := props
		if fromState {
			src = state
		}

		v, ok := src[key]
		var match bool
		if equals != nil {
			match = ok && fmt.Sprint(v) == fmt.Sprint(equals)
		} else {
			match = ok && truthy(v)
		}
		return match != negate
	}, nil
}

// TokenExpression returns an expression that looks up a dotted path such as
// "colors.primary" in the theme. Missing paths yield nil.
func TokenExpression(path string) styling.Expression[Values] {
	parts := strings.Split(path, ".")
	return func(theme Values) any {
		var cur any = theme
		for _, p := range parts {
			m, ok := cur.(map[string]any)
			if !ok {
				return nil
			}
			if cur, ok = m[p]; !ok {
				return nil
			}
		}
		return cur
	}
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}
