package element

import (
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
)

const classAttribute = "class"

// Attributes is an ordered attribute map with a dedicated class set. Setting
// the "class" attribute replaces the class set instead of storing a raw value.
type Attributes struct {
	order   []string
	values  map[string]string
	classes ClassList
}

// NewAttributes returns an empty attribute set.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]string)}
}

// Set stores value under name, keeping the original position when the name is
// already present.
func (a *Attributes) Set(name, value string) *Attributes {
	name = strings.TrimSpace(name)
	if name == "" {
		return a
	}
	if name == classAttribute {
		a.classes = ClassList{}
		a.classes.Add(value)
		return a
	}
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, exists := a.values[name]; !exists {
		a.order = append(a.order, name)
	}
	a.values[name] = value
	return a
}

// SetFlag toggles a boolean attribute such as disabled or required.
func (a *Attributes) SetFlag(name string, on bool) *Attributes {
	if !on {
		a.Remove(name)
		return a
	}
	return a.Set(name, "")
}

// Get returns the stored value and whether it exists.
func (a *Attributes) Get(name string) (string, bool) {
	if name == classAttribute {
		if a.classes.Len() == 0 {
			return "", false
		}
		return a.classes.String(), true
	}
	value, ok := a.values[name]
	return value, ok
}

// Has reports whether name is set.
func (a *Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Remove deletes name. Removing "class" clears the class set.
func (a *Attributes) Remove(name string) *Attributes {
	if name == classAttribute {
		a.classes = ClassList{}
		return a
	}
	if _, ok := a.values[name]; !ok {
		return a
	}
	delete(a.values, name)
	for idx, existing := range a.order {
		if existing == name {
			a.order = append(a.order[:idx], a.order[idx+1:]...)
			break
		}
	}
	return a
}

// Names lists attribute names in insertion order, class excluded.
func (a *Attributes) Names() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// AddClass adds classes to the set.
func (a *Attributes) AddClass(names ...string) *Attributes {
	a.classes.Add(names...)
	return a
}

// RemoveClass drops classes from the set.
func (a *Attributes) RemoveClass(names ...string) *Attributes {
	a.classes.Remove(names...)
	return a
}

// HasClass reports whether the class is present.
func (a *Attributes) HasClass(name string) bool {
	return a.classes.Has(name)
}

// Classes returns the class names in insertion order.
func (a *Attributes) Classes() []string {
	return a.classes.Names()
}

// String renders the attributes as ` name="value"` pairs for templates. The
// class attribute comes first.
func (a *Attributes) String() string {
	var builder strings.Builder
	for _, attr := range a.htmlAttributes() {
		builder.WriteByte(' ')
		builder.WriteString(attr.Key)
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(attr.Val))
		builder.WriteByte('"')
	}
	return builder.String()
}

func (a *Attributes) htmlAttributes() []xhtml.Attribute {
	attrs := make([]xhtml.Attribute, 0, len(a.order)+1)
	if a.classes.Len() > 0 {
		attrs = append(attrs, xhtml.Attribute{Key: classAttribute, Val: a.classes.String()})
	}
	for _, name := range a.order {
		attrs = append(attrs, xhtml.Attribute{Key: name, Val: a.values[name]})
	}
	return attrs
}

// Clone returns an independent copy.
func (a *Attributes) Clone() *Attributes {
	out := NewAttributes()
	if a == nil {
		return out
	}
	out.order = append([]string(nil), a.order...)
	for name, value := range a.values {
		out.values[name] = value
	}
	out.classes.Add(a.classes.Names()...)
	return out
}
