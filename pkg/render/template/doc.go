// Package template defines the renderer-agnostic template contract used to
// assemble image markup, with a pongo2 adapter in the gotemplate subpackage.
package template
