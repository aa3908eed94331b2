// Package config holds the layered styling configuration: embedded defaults,
// optional file and environment layers, and per-form contextual overrides
// merged on top of the global tree. Lookups use dotted paths such as
// "form.widgets.select.styled-select" and always fall back to a default when
// a path is absent.
package config
