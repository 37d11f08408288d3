package pattern

import (
	"fmt"
	"regexp"
)

// Kind records how a target was built.
type Kind uint8

const (
	// KindLiteral is an escaped literal string.
	KindLiteral Kind = iota
	// KindHomophones is a word plus its homophones.
	KindHomophones
	// KindText is free text with homophone substitution.
	KindText
	// KindClass is a named class from the table.
	KindClass
	// KindExpression is a raw expression.
	KindExpression
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindHomophones:
		return "homophones"
	case KindText:
		return "text"
	case KindClass:
		return "class"
	case KindExpression:
		return "expression"
	default:
		return "unknown"
	}
}

// Target is a compiled navigation target.
type Target struct {
	*regexp.Regexp

	kind   Kind
	source string
	expr   string
}

// compile builds a Target from expr.
func compile(kind Kind, source, expr string) (*Target, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, source, err)
	}
	return &Target{Regexp: re, kind: kind, source: source, expr: expr}, nil
}

// Kind returns how the target was built.
func (t *Target) Kind() Kind {
	return t.kind
}

// Source returns the spoken text or class name the target came from.
func (t *Target) Source() string {
	return t.source
}

// Expr returns the compiled expression.
func (t *Target) Expr() string {
	return t.expr
}

// String returns a readable description for logs.
func (t *Target) String() string {
	return fmt.Sprintf("%s(%s)", t.kind, t.source)
}
