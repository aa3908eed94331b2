package element

import "strings"

// ClassList is an insertion-ordered set of CSS class names. The zero value is
// ready to use. Values passed to Add and Remove may hold several
// space-delimited names.
type ClassList struct {
	names []string
}

// Add appends the supplied classes, ignoring empty tokens and names already
// present.
func (c *ClassList) Add(names ...string) {
	for _, raw := range names {
		for _, name := range strings.Fields(raw) {
			if c.Has(name) {
				continue
			}
			c.names = append(c.names, name)
		}
	}
}

// Remove drops the supplied classes. Unknown names are ignored.
func (c *ClassList) Remove(names ...string) {
	if len(c.names) == 0 {
		return
	}
	drop := make(map[string]struct{})
	for _, raw := range names {
		for _, name := range strings.Fields(raw) {
			drop[name] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return
	}
	kept := c.names[:0]
	for _, name := range c.names {
		if _, ok := drop[name]; ok {
			continue
		}
		kept = append(kept, name)
	}
	c.names = kept
}

// Has reports whether name is part of the set.
func (c *ClassList) Has(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, existing := range c.names {
		if existing == name {
			return true
		}
	}
	return false
}

// Names returns a copy of the class names in insertion order.
func (c *ClassList) Names() []string {
	if len(c.names) == 0 {
		return nil
	}
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of classes.
func (c *ClassList) Len() int {
	return len(c.names)
}

// String joins the classes with single spaces.
func (c *ClassList) String() string {
	return strings.Join(c.names, " ")
}
