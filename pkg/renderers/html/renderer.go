package html

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-modelview/pkg/view"
)

// Renderer turns a widget tree into an HTML document fragment. It is a
// read-only projection: widget state at render time is what ends up in the
// markup, and nothing is written back.
type Renderer struct {
	engine       TemplateRenderer
	template     string
	themeVars    string
	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTemplateRenderer swaps the template engine. The default is the
// embedded pongo2 engine.
func WithTemplateRenderer(engine TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithTemplate overrides the entry template name.
func WithTemplate(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.template = name
		}
	}
}

// WithThemeSelector resolves theme tokens through a go-theme selector; the
// selection's tokens are emitted as CSS custom properties on the form
// element.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(r *Renderer) {
		r.selector = selector
		r.themeName = name
		r.themeVariant = variant
	}
}

// New constructs a Renderer with the embedded templates.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{template: "form"}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}

	if r.engine == nil {
		engine, err := NewEngine(WithFS(Templates))
		if err != nil {
			return nil, err
		}
		r.engine = engine
	}

	if r.selector != nil {
		selection, err := r.selector.Select(r.themeName, r.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("html: select theme %q: %w", r.themeName, err)
		}
		r.themeVars = cssVars(selection)
	}
	return r, nil
}

// Render produces markup for the form's current state.
func (r *Renderer) Render(ctx context.Context, form *view.Form) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if form == nil {
		return nil, errors.New("html: form is nil")
	}

	data := snapshot(form, r.themeVars)
	rendered, err := r.engine.RenderTemplate(r.template, map[string]any{"form": data})
	if err != nil {
		return nil, err
	}
	return []byte(rendered), nil
}

func cssVars(selection *theme.Selection) string {
	if selection == nil || selection.Manifest == nil || len(selection.Manifest.Tokens) == 0 {
		return ""
	}
	keys := make([]string, 0, len(selection.Manifest.Tokens))
	for key := range selection.Manifest.Tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "--%s:%s;", key, selection.Manifest.Tokens[key])
	}
	return b.String()
}
