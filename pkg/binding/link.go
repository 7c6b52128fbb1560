package binding

import (
	"fmt"

	"github.com/goliatone/go-modelview/pkg/model"
	"github.com/goliatone/go-modelview/pkg/widgets"
)

// Rejection reports a widget-driven value the model refused. The widget has
// already been reverted to the model's current value when the handler runs.
type Rejection struct {
	Path  string
	Value any
	Err   error
}

// RejectionHandler receives non-fatal validation rejections. Construction
// and live synchronization never abort because of one.
type RejectionHandler func(rejection Rejection)

// Link keeps one model attribute and one widget's bindable value mutually
// consistent. Each direction suppresses its counterpart while propagating,
// so an update never echoes back to its origin.
type Link struct {
	model  model.Model
	name   string
	path   string
	widget widgets.Widget

	cancelModel  func()
	cancelWidget func()
	updating     bool
	onReject     RejectionHandler
}

// LinkOption configures a Link.
type LinkOption func(*Link)

// WithRejectionHandler installs the hook invoked when the model rejects a
// widget-driven value.
func WithRejectionHandler(fn RejectionHandler) LinkOption {
	return func(l *Link) {
		l.onReject = fn
	}
}

// WithPath overrides the path reported in rejections; defaults to the
// attribute name.
func WithPath(path string) LinkOption {
	return func(l *Link) {
		if path != "" {
			l.path = path
		}
	}
}

// NewLink installs a two-way binding between the named model attribute and
// the widget. The widget is synchronized to the model's current value before
// the listeners attach.
func NewLink(m model.Model, name string, w widgets.Widget, options ...LinkOption) (*Link, error) {
	if m == nil {
		return nil, fmt.Errorf("binding: model is nil")
	}
	if w == nil {
		return nil, fmt.Errorf("binding: widget is nil")
	}
	current, ok := m.Get(name)
	if !ok {
		return nil, fmt.Errorf("binding: model does not declare attribute %q", name)
	}

	link := &Link{model: m, name: name, path: name, widget: w}
	for _, opt := range options {
		if opt != nil {
			opt(link)
		}
	}

	if current != nil {
		if err := w.SetValue(current); err != nil {
			return nil, fmt.Errorf("binding: initial sync of %q: %w", link.path, err)
		}
	}

	link.cancelModel = m.Observe(name, link.onModelChange)
	link.cancelWidget = w.OnChange(link.onWidgetChange)
	return link, nil
}

// Unlink removes both listeners. The link is inert afterwards; calling it
// again is harmless.
func (l *Link) Unlink() {
	if l.cancelModel != nil {
		l.cancelModel()
		l.cancelModel = nil
	}
	if l.cancelWidget != nil {
		l.cancelWidget()
		l.cancelWidget = nil
	}
}

// Widget returns the bound widget.
func (l *Link) Widget() widgets.Widget { return l.widget }

func (l *Link) onModelChange(change model.Change) {
	if l.updating {
		return
	}
	l.updating = true
	defer func() { l.updating = false }()

	// nil is a committed value for model-kind attributes, so it propagates
	// like any other. A widget refusing a valid model value is a wiring
	// defect; surface it through the rejection hook rather than panicking
	// mid-dispatch.
	if err := l.widget.SetValue(change.New); err != nil {
		l.reject(change.New, err)
	}
}

func (l *Link) onWidgetChange(value any) {
	if l.updating {
		return
	}
	l.updating = true
	defer func() { l.updating = false }()

	if err := l.model.Set(l.name, value); err != nil {
		// Last-known-good wins: revert the widget to the model's value.
		if current, ok := l.model.Get(l.name); ok && current != nil {
			_ = l.widget.SetValue(current)
		}
		l.reject(value, err)
	}
}

func (l *Link) reject(value any, err error) {
	if l.onReject != nil {
		l.onReject(Rejection{Path: l.path, Value: value, Err: err})
	}
}
