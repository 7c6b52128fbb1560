package view

import (
	"fmt"

	"github.com/goliatone/go-modelview/pkg/binding"
	"github.com/goliatone/go-modelview/pkg/model"
	"github.com/goliatone/go-modelview/pkg/uischema"
	"github.com/goliatone/go-modelview/pkg/widgets"
)

// Context is handed to widget factories and transformers: where in the tree
// the attribute occurrence sits and what the resolver decided for it. Model
// is nil when building a detached template.
type Context struct {
	Path      []string
	Attribute model.Attribute
	Metadata  uischema.Metadata
	Model     model.Model
}

// WidgetFactory short-circuits variant resolution for one attribute
// occurrence when installed under the "factory" metadata key, returning a
// ready widget.
type WidgetFactory func(ctx Context) (widgets.Widget, error)

// ConstructorFactory is the deferred form of a factory override: it returns
// a constructor plus the options to instantiate it with, and the build
// performs the construction.
type ConstructorFactory func(ctx Context) (widgets.Constructor, widgets.Options, error)

// Transformer runs once per leaf widget after metadata-driven construction,
// as the most specific override point. It may mutate the widget in place and
// return nil, or return a replacement; the replacement is what receives the
// binding.
type Transformer func(ctx Context, w widgets.Widget) (widgets.Widget, error)

// Discover returns the attributes to render for a schema. The default
// returns the declared attributes in declaration order.
type Discover func(schema *model.Schema) []model.Attribute

type config struct {
	registry    *widgets.Registry
	tree        *uischema.Tree
	overrides   map[string]uischema.Metadata
	filter      Filter
	transformer Transformer
	discover    Discover
	onReject    binding.RejectionHandler
}

// Option configures a Factory.
type Option func(*config)

// WithRegistry swaps the variant registry; defaults to the process-wide one.
func WithRegistry(registry *widgets.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithMetadataTree supplies the external path-keyed metadata tree.
func WithMetadataTree(tree *uischema.Tree) Option {
	return func(cfg *config) {
		cfg.tree = tree
	}
}

// WithOverrides supplies per-build metadata overrides keyed by dotted path.
func WithOverrides(overrides map[string]uischema.Metadata) Option {
	return func(cfg *config) {
		cfg.overrides = overrides
	}
}

// WithFilter restricts which attributes receive widgets. Several filters
// compose with And.
func WithFilter(filter Filter) Option {
	return func(cfg *config) {
		if filter == nil {
			return
		}
		if cfg.filter == nil {
			cfg.filter = filter
			return
		}
		cfg.filter = cfg.filter.And(filter)
	}
}

// WithTransformer installs the per-leaf customization callback.
func WithTransformer(transformer Transformer) Option {
	return func(cfg *config) {
		cfg.transformer = transformer
	}
}

// WithDiscover overrides attribute discovery.
func WithDiscover(discover Discover) Option {
	return func(cfg *config) {
		if discover != nil {
			cfg.discover = discover
		}
	}
}

// WithRejectionHandler installs the hook that live bindings report
// validation rejections through.
func WithRejectionHandler(fn binding.RejectionHandler) Option {
	return func(cfg *config) {
		cfg.onReject = fn
	}
}

// Factory turns models (or bare schemas) into bound widget trees.
type Factory struct {
	cfg      config
	resolver *uischema.Resolver
}

// New constructs a factory.
func New(options ...Option) *Factory {
	cfg := config{
		registry: widgets.Default,
		discover: func(schema *model.Schema) []model.Attribute {
			return schema.Attributes()
		},
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Factory{
		cfg: cfg,
		resolver: uischema.NewResolver(
			uischema.WithTree(cfg.tree),
			uischema.WithOverrides(cfg.overrides),
		),
	}
}

// Build constructs the widget tree for the model's schema and attaches the
// model, wiring a two-way binding per leaf. Construction either fully
// succeeds or returns an error; it never hands back a partially wired tree.
func Build(m model.Model, options ...Option) (*Form, error) {
	return New(options...).Build(m)
}

// BuildForSchema constructs a detached widget tree for the schema. Attach
// any instance of the schema later with Form.SetModel.
func BuildForSchema(schema *model.Schema, options ...Option) (*Form, error) {
	return New(options...).BuildForSchema(schema)
}

// Build constructs and binds a view for the model.
func (f *Factory) Build(m model.Model) (*Form, error) {
	if m == nil {
		return nil, fmt.Errorf("view: model is nil")
	}
	form, err := f.build(m.Schema(), nil, m, make(map[*model.Schema]struct{}))
	if err != nil {
		return nil, err
	}
	if err := form.SetModel(m); err != nil {
		return nil, err
	}
	return form, nil
}

// BuildForSchema constructs a detached template view for the schema.
func (f *Factory) BuildForSchema(schema *model.Schema) (*Form, error) {
	if schema == nil {
		return nil, fmt.Errorf("view: schema is nil")
	}
	return f.build(schema, nil, nil, make(map[*model.Schema]struct{}))
}

func (f *Factory) build(schema *model.Schema, path []string, owner model.Model, visited map[*model.Schema]struct{}) (*Form, error) {
	if _, seen := visited[schema]; seen {
		return nil, &CyclicModelError{Path: path, Schema: schema.Name()}
	}
	visited[schema] = struct{}{}
	defer delete(visited, schema)

	form := newForm(schema, f.cfg.onReject)
	for _, attr := range f.cfg.discover(schema) {
		attrPath := appendPath(path, attr.Name)
		if f.cfg.filter != nil && !f.cfg.filter(attrPath, attr) {
			continue
		}

		var (
			w   widgets.Widget
			err error
		)
		if attr.Kind == model.KindModel {
			w, err = f.buildNested(attr, attrPath, owner, visited)
		} else {
			w, err = f.createTraitView(attr, attrPath, owner)
		}
		if err != nil {
			return nil, err
		}
		form.addChild(Child{Name: attr.Name, Path: attrPath, Widget: w})
	}
	return form, nil
}

func (f *Factory) buildNested(attr model.Attribute, path []string, owner model.Model, visited map[*model.Schema]struct{}) (widgets.Widget, error) {
	var childOwner model.Model
	if owner != nil {
		if value, ok := owner.Get(attr.Name); ok {
			childOwner, _ = value.(model.Model)
		}
	}
	nested, err := f.build(attr.Schema, path, childOwner, visited)
	if err != nil {
		return nil, err
	}
	metadata := f.resolver.Resolve(path, attr)
	if description, ok := metadata["description"].(string); ok && description != "" {
		nested.SetDescription(description)
	}
	return nested, nil
}

// createTraitView computes effective metadata, selects a variant (or honours
// a factory short-circuit), constructs the widget, and runs the transformer
// last.
func (f *Factory) createTraitView(attr model.Attribute, path []string, owner model.Model) (widgets.Widget, error) {
	metadata := f.resolver.Resolve(path, attr)
	ctx := Context{Path: path, Attribute: attr, Metadata: metadata, Model: owner}

	w, err := f.instantiate(ctx)
	if err != nil {
		return nil, err
	}

	if f.cfg.transformer != nil {
		replacement, err := f.cfg.transformer(ctx, w)
		if err != nil {
			return nil, fmt.Errorf("view: transform %s: %w", uischema.PathKey(path), err)
		}
		if replacement != nil {
			w = replacement
		}
	}
	return w, nil
}

func (f *Factory) instantiate(ctx Context) (widgets.Widget, error) {
	if raw, ok := ctx.Metadata[widgets.OptionFactory]; ok {
		return f.fromFactory(ctx, raw)
	}

	requested, _ := ctx.Metadata[widgets.OptionVariant].(string)
	variant, base, err := f.cfg.registry.Resolve(ctx.Attribute, requested)
	if err != nil {
		return nil, fmt.Errorf("view: resolve %s: %w", uischema.PathKey(ctx.Path), err)
	}

	opts := base.Merge(widgets.Options(ctx.Metadata).Filter(variant.Keys...))
	w, err := variant.New(opts)
	if err != nil {
		return nil, fmt.Errorf("view: construct %s (%s): %w", uischema.PathKey(ctx.Path), variant.Name, err)
	}
	return w, nil
}

// fromFactory dispatches the "factory" metadata entry: either a ready-widget
// factory or the constructor-plus-options form.
func (f *Factory) fromFactory(ctx Context, raw any) (widgets.Widget, error) {
	key := uischema.PathKey(ctx.Path)
	switch fn := raw.(type) {
	case WidgetFactory:
		return runWidgetFactory(fn, ctx, key)
	case func(Context) (widgets.Widget, error):
		return runWidgetFactory(fn, ctx, key)
	case ConstructorFactory:
		return runConstructorFactory(fn, ctx, key)
	case func(Context) (widgets.Constructor, widgets.Options, error):
		return runConstructorFactory(fn, ctx, key)
	}
	return nil, &FactoryResultError{Path: ctx.Path}
}

func runWidgetFactory(fn WidgetFactory, ctx Context, key string) (widgets.Widget, error) {
	w, err := fn(ctx)
	if err != nil {
		return nil, fmt.Errorf("view: factory for %s: %w", key, err)
	}
	if w == nil {
		return nil, fmt.Errorf("view: factory for %s returned no widget", key)
	}
	return w, nil
}

func runConstructorFactory(fn ConstructorFactory, ctx Context, key string) (widgets.Widget, error) {
	ctor, opts, err := fn(ctx)
	if err != nil {
		return nil, fmt.Errorf("view: factory for %s: %w", key, err)
	}
	if ctor == nil {
		return nil, fmt.Errorf("view: factory for %s returned no constructor", key)
	}
	w, err := ctor(opts)
	if err != nil {
		return nil, fmt.Errorf("view: factory for %s: %w", key, err)
	}
	if w == nil {
		return nil, fmt.Errorf("view: factory for %s constructed no widget", key)
	}
	return w, nil
}

func appendPath(path []string, name string) []string {
	return append(append([]string(nil), path...), name)
}
