package tags

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Template names rendered by Tags. Replacement bundles passed through
// WithTemplatesFS must provide both.
const (
	TemplateImage   = "templates/img.tmpl"
	TemplatePicture = "templates/picture.tmpl"
)

// TemplatesFS exposes the embedded markup templates so callers can copy and
// customise them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
