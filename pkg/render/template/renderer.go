package template

import (
	"io"
)

// TemplateRenderer is the seam the tag helpers render markup through. The
// default implementation is the pongo2 engine in the gotemplate package; hosts
// with their own engine can supply anything that satisfies this contract.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFunc(name string, fn any) error
	GlobalContext(data any) error
}
