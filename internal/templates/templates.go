package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
)

// HelloPage is the template rendered for the root path
const HelloPage = "hello.html"

// SourceEmbedded is reported by Source when the built-in pages are used
const SourceEmbedded = "embedded"

//go:embed pages/*.html
var embeddedPages embed.FS

//go:embed errors/error.html
var errorTemplate embed.FS

// PageData is the context passed to page templates
type PageData struct {
	Message string
}

// ErrorPage is the context passed to the error template
type ErrorPage struct {
	Title   string
	Heading string
	Message string
}

// TemplateRenderer manages loading and rendering of HTML templates.
// Error pages always come from the embedded set so they render even when
// the page directory is broken.
type TemplateRenderer struct {
	pagesFS fs.FS
	source  string
	reload  bool
	pages   *template.Template
	errors  *template.Template
}

// NewTemplateRenderer loads page templates from dir when it exists and falls
// back to the embedded pages otherwise. With reload set, pages loaded from
// disk are parsed again on every render.
func NewTemplateRenderer(dir string, reload bool) (*TemplateRenderer, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		switch {
		case err == nil && info.IsDir():
			return newRenderer(os.DirFS(dir), dir, reload)
		case err == nil:
			return nil, fmt.Errorf("templates path %s is not a directory", dir)
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to access templates directory %s: %w", dir, err)
		}
	}

	pages, err := fs.Sub(embeddedPages, "pages")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded pages: %w", err)
	}
	return newRenderer(pages, SourceEmbedded, false)
}

// NewTemplateRendererFS loads page templates from an arbitrary file system
func NewTemplateRendererFS(pages fs.FS, reload bool) (*TemplateRenderer, error) {
	return newRenderer(pages, "fs", reload)
}

func newRenderer(pages fs.FS, source string, reload bool) (*TemplateRenderer, error) {
	errTmpl, err := template.ParseFS(errorTemplate, "errors/error.html")
	if err != nil {
		return nil, fmt.Errorf("failed to load error template: %w", err)
	}

	r := &TemplateRenderer{
		pagesFS: pages,
		source:  source,
		reload:  reload,
		errors:  errTmpl,
	}
	if !reload {
		if r.pages, err = parsePages(pages); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// parsePages parses every *.html file at the root of pages. An empty set is
// valid: rendering a page that does not exist fails at request time.
func parsePages(pages fs.FS) (*template.Template, error) {
	matches, err := fs.Glob(pages, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list page templates: %w", err)
	}

	tmpl := template.New("pages")
	if len(matches) == 0 {
		return tmpl, nil
	}
	if tmpl, err = tmpl.ParseFS(pages, matches...); err != nil {
		return nil, fmt.Errorf("failed to load page templates: %w", err)
	}
	return tmpl, nil
}

// Source describes where page templates are loaded from
func (t *TemplateRenderer) Source() string {
	return t.source
}

// Reloading reports whether pages are parsed on every render
func (t *TemplateRenderer) Reloading() bool {
	return t.reload
}

// RenderPage renders the named page template
func (t *TemplateRenderer) RenderPage(name string, data any) ([]byte, error) {
	pages := t.pages
	if t.reload {
		var err error
		if pages, err = parsePages(t.pagesFS); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// RenderError renders the error page
func (t *TemplateRenderer) RenderError(page ErrorPage) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.errors.ExecuteTemplate(&buf, "error.html", page); err != nil {
		return nil, fmt.Errorf("failed to render error page: %w", err)
	}
	return buf.Bytes(), nil
}
