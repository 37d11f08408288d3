package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// caseInsensitive prefixes spoken targets; class expressions keep their case.
const caseInsensitive = "(?i)"

// DefaultAlias is the class name meaning "no explicit class".
const DefaultAlias = "DEFAULT"

// Homophones looks up the phonetic equivalents of a word.
// Lookup returns nil when the word has none.
type Homophones interface {
	Lookup(word string) []string
}

// wordRun splits free text into the words looked up for homophones.
var wordRun = regexp.MustCompile(wordExpr)

// Compiler builds targets against a class table and a homophone source.
type Compiler struct {
	classes    *Classes
	homophones Homophones
}

// NewCompiler creates a compiler. A nil classes uses DefaultClasses; a nil
// homophones disables homophone expansion.
func NewCompiler(classes *Classes, homophones Homophones) *Compiler {
	if classes == nil {
		classes = DefaultClasses()
	}
	return &Compiler{classes: classes, homophones: homophones}
}

// Classes returns the compiler's class table.
func (c *Compiler) Classes() *Classes {
	return c.classes
}

// Literal matches s exactly, ignoring case.
func (c *Compiler) Literal(s string) (*Target, error) {
	if s == "" {
		return nil, ErrEmptyTarget
	}
	return compile(KindLiteral, s, caseInsensitive+regexp.QuoteMeta(s))
}

// Word matches word or any of its homophones, ignoring case. Without
// homophones it behaves like Literal.
func (c *Compiler) Word(word string) (*Target, error) {
	if word == "" {
		return nil, ErrEmptyTarget
	}
	phones := c.lookup(word)
	if len(phones) == 0 {
		return c.Literal(word)
	}
	return compile(KindHomophones, word, caseInsensitive+alternation(phones))
}

// Text matches free text. Every word in text is replaced by the
// alternation of its homophones; everything else matches literally.
func (c *Compiler) Text(text string) (*Target, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyTarget
	}

	var b strings.Builder
	b.WriteString(caseInsensitive)
	prev := 0
	for _, loc := range wordRun.FindAllStringIndex(text, -1) {
		b.WriteString(regexp.QuoteMeta(text[prev:loc[0]]))
		word := text[loc[0]:loc[1]]
		if phones := c.lookup(word); len(phones) > 0 {
			b.WriteString("(")
			b.WriteString(alternation(phones))
			b.WriteString(")")
		} else {
			b.WriteString(regexp.QuoteMeta(word))
		}
		prev = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(text[prev:]))

	return compile(KindText, text, b.String())
}

// Class returns the named class.
func (c *Compiler) Class(name string) (*Target, error) {
	t, ok := c.classes.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, name)
	}
	return t, nil
}

// Expression compiles a raw expression as given.
func (c *Compiler) Expression(expr string) (*Target, error) {
	return compile(KindExpression, expr, expr)
}

// ClassOrExpression resolves the class used for before/after anchors.
// "" and DEFAULT mean the word class, known names map to their class, and
// anything else is compiled as an expression.
func (c *Compiler) ClassOrExpression(name string) (*Target, error) {
	if name == "" || strings.EqualFold(name, DefaultAlias) {
		return c.Class(DefaultClassName)
	}
	if t, ok := c.classes.Lookup(name); ok {
		return t, nil
	}
	return c.Expression(name)
}

func (c *Compiler) lookup(word string) []string {
	if c.homophones == nil {
		return nil
	}
	return c.homophones.Lookup(word)
}

// alternation joins escaped words with "|".
func alternation(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	return strings.Join(quoted, "|")
}
