// Package pattern compiles spoken navigation targets into matchers.
//
// A target is one of:
//
//   - a literal string, matched exactly and case-insensitively
//   - a word, matched together with its homophones
//   - free text, where every word is replaced by its homophone alternation
//   - a named class such as "word", "parens" or "constant"
//   - a raw class expression
//
// Named classes live in an immutable Classes table built once and shared by
// reference. Compiled targets wrap regexp.Regexp and are safe for
// concurrent use. Class expressions are case-sensitive; the word class
// covers Unicode letters, not only ASCII.
package pattern
