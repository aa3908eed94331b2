// Package element models the mutable markup tree the styling rules operate on.
// Elements carry an insertion-ordered class set, ordered attributes and ordered
// children; NamedChildren adds the keyed child slots containers need. Every
// node serialises through golang.org/x/net/html so escaping and void elements
// follow the HTML5 rules.
package element
