// Package template defines the template renderer seam used to lay out styled
// widgets. The pongo2 implementation lives in the gotemplate subpackage.
package template
