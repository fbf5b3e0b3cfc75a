package selector

import "strings"

// SimpleSelector is the common interface satisfied by every simple selector
// kind (type, class, id, attribute, pseudo, placeholder). Equality and
// hashing are value-based, realized through Key(): two simple selectors that
// render to the same CSS text are considered equal wherever this package's
// callers compare by Key(). ID() is a separate, per-construction identity
// token used only by the extend store's identity-keyed maps.
type SimpleSelector interface {
	// Key returns the canonical textual form of the selector, used as a
	// structural-equality key by the extend store's selectors/extensions
	// indices.
	Key() string
	// ID returns this instance's identity token.
	ID() ID
	// simpleSelector is unexported so SimpleSelector cannot be implemented
	// outside this package.
	simpleSelector()
}

type base struct {
	id ID
}

func (b *base) ID() ID { return b.id }

func newBase() base {
	return base{id: newID()}
}

// TypeSelector matches an element by tag name, e.g. "div" or "ns|div". The
// universal selector "*" is represented as a TypeSelector with Name "*".
type TypeSelector struct {
	base
	Namespace string
	Name      string
}

func NewTypeSelector(namespace, name string) *TypeSelector {
	return &TypeSelector{base: newBase(), Namespace: Intern(namespace), Name: Intern(name)}
}

func (s *TypeSelector) simpleSelector() {}

func (s *TypeSelector) Key() string {
	if s.Namespace == "" {
		return s.Name
	}
	return Intern(s.Namespace + "|" + s.Name)
}

// IsUniversal reports whether this is the "*" selector.
func (s *TypeSelector) IsUniversal() bool { return s.Name == "*" }

// ClassSelector matches ".name".
type ClassSelector struct {
	base
	Name string
}

func NewClassSelector(name string) *ClassSelector {
	return &ClassSelector{base: newBase(), Name: Intern(name)}
}

func (s *ClassSelector) simpleSelector() {}
func (s *ClassSelector) Key() string     { return Intern("." + s.Name) }

// IDSelector matches "#name".
type IDSelector struct {
	base
	Name string
}

func NewIDSelector(name string) *IDSelector {
	return &IDSelector{base: newBase(), Name: Intern(name)}
}

func (s *IDSelector) simpleSelector() {}
func (s *IDSelector) Key() string     { return Intern("#" + s.Name) }

// AttributeSelector matches "[name op value modifier]". Op and Value are
// empty for a bare presence check ("[name]").
type AttributeSelector struct {
	base
	Namespace string
	Name      string
	Op        string
	Value     string
	Modifier  string
}

func NewAttributeSelector(namespace, name, op, value, modifier string) *AttributeSelector {
	return &AttributeSelector{
		base:      newBase(),
		Namespace: namespace,
		Name:      name,
		Op:        op,
		Value:     value,
		Modifier:  modifier,
	}
}

func (s *AttributeSelector) simpleSelector() {}

func (s *AttributeSelector) Key() string {
	var b strings.Builder
	b.WriteByte('[')
	if s.Namespace != "" {
		b.WriteString(s.Namespace)
		b.WriteByte('|')
	}
	b.WriteString(s.Name)
	if s.Op != "" {
		b.WriteString(s.Op)
		b.WriteByte('"')
		b.WriteString(s.Value)
		b.WriteByte('"')
	}
	if s.Modifier != "" {
		b.WriteByte(' ')
		b.WriteString(s.Modifier)
	}
	b.WriteByte(']')
	return b.String()
}

// PlaceholderSelector matches "%name". Private placeholders (leading "-" or
// "_", the module-private convention) are never copied across store
// boundaries by AddExtensions (law I5).
type PlaceholderSelector struct {
	base
	Name    string
	Private bool
}

func NewPlaceholderSelector(name string) *PlaceholderSelector {
	private := strings.HasPrefix(name, "-") || strings.HasPrefix(name, "_")
	return &PlaceholderSelector{base: newBase(), Name: Intern(name), Private: private}
}

func (s *PlaceholderSelector) simpleSelector() {}
func (s *PlaceholderSelector) Key() string     { return Intern("%" + s.Name) }

// PseudoSelector matches a pseudo-class or pseudo-element, optionally
// parameterized by a raw Argument string or by a nested SelectorList (for
// selector-taking pseudos like :not(), :is(), :has()).
type PseudoSelector struct {
	base
	Name     string
	IsClass  bool // true for ":name", false for "::name"
	Argument string
	Selector *SelectorList // nil when this pseudo takes no selector argument
}

func NewPseudoSelector(name string, isClass bool, argument string, inner *SelectorList) *PseudoSelector {
	return &PseudoSelector{
		base:     newBase(),
		Name:     Intern(name),
		IsClass:  isClass,
		Argument: argument,
		Selector: inner,
	}
}

func (s *PseudoSelector) simpleSelector() {}

// NormalizedName lower-cases the pseudo name for the rewrite rules in
// extendPseudo, which match against well-known pseudo names case-insensitively.
func (s *PseudoSelector) NormalizedName() string {
	return strings.ToLower(s.Name)
}

func (s *PseudoSelector) Key() string {
	marker := ":"
	if !s.IsClass {
		marker = "::"
	}
	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(s.Name)
	if s.Selector != nil {
		b.WriteByte('(')
		b.WriteString(s.Selector.Key())
		b.WriteByte(')')
	} else if s.Argument != "" {
		b.WriteByte('(')
		b.WriteString(s.Argument)
		b.WriteByte(')')
	}
	return b.String()
}

// WithSelector returns a copy of s with its inner selector list replaced.
// Used by extendPseudo to rebuild a pseudo around a rewritten inner list.
func (s *PseudoSelector) WithSelector(inner *SelectorList) *PseudoSelector {
	return &PseudoSelector{base: newBase(), Name: s.Name, IsClass: s.IsClass, Argument: s.Argument, Selector: inner}
}

// HasSelector reports whether the pseudo carries an inner selector list.
func (s *PseudoSelector) HasSelector() bool { return s.Selector != nil }
