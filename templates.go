package bootstrapform

import (
	"io/fs"

	"github.com/goliatone/go-bootstrap-form/pkg/config"
	"github.com/goliatone/go-bootstrap-form/pkg/view"
)

// EmbeddedLayouts exposes the built-in view layouts (bootstrap.tpl,
// default.tpl) so callers can copy or extend them.
func EmbeddedLayouts() fs.FS {
	return view.Layouts()
}

// DefaultConfig returns the embedded default configuration document.
func DefaultConfig() []byte {
	return config.DefaultsYAML()
}
