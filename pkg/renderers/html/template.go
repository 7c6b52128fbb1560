package html

// TemplateRenderer is the seam between the renderer and its template
// engine. Stub it in tests or swap in another engine; the default is the
// embedded pongo2 Engine.
type TemplateRenderer interface {
	RenderTemplate(name string, data any) (string, error)
}
