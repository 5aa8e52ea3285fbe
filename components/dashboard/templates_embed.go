package dashboard

import (
	"embed"
	"io"
	"io/fs"

	template "github.com/goliatone/go-template"
)

// Renderer executes a named template with data, writing to out when given.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}

//go:embed templates/*.html templates/widgets/*.html
var embeddedTemplates embed.FS

// TemplateFS exposes the embedded page and widget templates.
func TemplateFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewTemplateRenderer creates a go-template renderer backed by the embedded
// templates. A non-nil override replaces them, e.g. a directory on disk.
func NewTemplateRenderer(override ...fs.FS) (Renderer, error) {
	var source fs.FS = embeddedTemplates
	baseDir := "templates"
	if len(override) > 0 && override[0] != nil {
		source = override[0]
		baseDir = "."
	}
	return template.NewRenderer(
		template.WithFS(source),
		template.WithBaseDir(baseDir),
		template.WithExtension(".html"),
	)
}
