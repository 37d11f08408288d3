package pattern

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultClassName is the class used when a call names none.
const DefaultClassName = "word"

// wordExpr matches a run of Unicode letters, digits, marks and underscores.
const wordExpr = `[\p{L}\p{N}\p{M}_]+`

// ClassDef defines a named target class.
type ClassDef struct {
	Name        string
	Expr        string
	Description string
}

// builtinClasses are the spoken class names and their expressions.
// Class expressions are case-sensitive.
var builtinClasses = []ClassDef{
	{Name: "word", Expr: wordExpr, Description: "run of word characters"},
	{Name: "small", Expr: `[A-Z]?[a-z0-9]+`, Description: "camel case segment"},
	{Name: "big", Expr: `\S+`, Description: "run of non-space characters"},
	{Name: "parens", Expr: `\((.*?)\)`, Description: "parenthesized group"},
	{Name: "squares", Expr: `\[(.*?)\]`, Description: "bracketed group"},
	{Name: "braces", Expr: `\{(.*?)\}`, Description: "braced group"},
	{Name: "quotes", Expr: `"(.*?)"`, Description: "double quoted string"},
	{Name: "angles", Expr: `<(.*?)>`, Description: "angle bracketed group"},
	{Name: "all", Expr: `(.+)`, Description: "remainder of the line"},
	{Name: "method", Expr: wordExpr + `\((.*?)\)`, Description: "call with arguments"},
	{Name: "constant", Expr: `[A-Z_][A-Z_]+`, Description: "ALL_CAPS constant"},
}

// Classes is an immutable table of named target classes.
type Classes struct {
	byName map[string]*Target
	defs   []ClassDef
}

// NewClasses compiles defs into a table.
func NewClasses(defs []ClassDef) (*Classes, error) {
	c := &Classes{
		byName: make(map[string]*Target, len(defs)),
		defs:   make([]ClassDef, 0, len(defs)),
	}
	for _, def := range defs {
		if _, exists := c.byName[def.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateClass, def.Name)
		}
		t, err := compile(KindClass, def.Name, def.Expr)
		if err != nil {
			return nil, err
		}
		c.byName[def.Name] = t
		c.defs = append(c.defs, def)
	}
	sort.Slice(c.defs, func(i, j int) bool {
		return c.defs[i].Name < c.defs[j].Name
	})
	return c, nil
}

// MustNewClasses is like NewClasses but panics on error.
func MustNewClasses(defs []ClassDef) *Classes {
	c, err := NewClasses(defs)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultClasses = sync.OnceValue(func() *Classes {
	return MustNewClasses(builtinClasses)
})

// DefaultClasses returns the shared built-in class table.
func DefaultClasses() *Classes {
	return defaultClasses()
}

// Lookup returns the compiled class with the given name.
func (c *Classes) Lookup(name string) (*Target, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// Has reports whether name is a known class.
func (c *Classes) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Defs returns the class definitions sorted by name.
func (c *Classes) Defs() []ClassDef {
	out := make([]ClassDef, len(c.defs))
	copy(out, c.defs)
	return out
}

// Names returns the class names sorted.
func (c *Classes) Names() []string {
	names := make([]string, len(c.defs))
	for i, d := range c.defs {
		names[i] = d.Name
	}
	return names
}
