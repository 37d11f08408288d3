// Package homophones stores groups of words that sound alike.
//
// A group such as {there, their, they're} is shared by every member, so a
// lookup of any member returns the whole group. Groups are read from
// comma-separated files (one group per line) or from YAML files holding a
// list of groups:
//
//	- [there, their, they're]
//	- [to, too, two]
//
// Store implements pattern.Homophones.
package homophones
