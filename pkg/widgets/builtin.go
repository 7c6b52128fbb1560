package widgets

import (
	"fmt"
	"reflect"
)

// Built-in widget identifiers.
const (
	WidgetText             = "text"
	WidgetTextarea         = "textarea"
	WidgetPassword         = "password"
	WidgetLabel            = "label"
	WidgetCheckbox         = "checkbox"
	WidgetToggle           = "toggle"
	WidgetDropdown         = "dropdown"
	WidgetSelectionSlider  = "selection-slider"
	WidgetIntText          = "int-text"
	WidgetBoundedIntText   = "bounded-int-text"
	WidgetIntSlider        = "int-slider"
	WidgetFloatText        = "float-text"
	WidgetBoundedFloatText = "bounded-float-text"
	WidgetFloatSlider      = "float-slider"
)

// Text is the universal default widget: a single-line string entry.
type Text struct {
	textCore
}

// Textarea is a multi-line string entry.
type Textarea struct {
	textCore
}

// Password is a masked string entry.
type Password struct {
	textCore
}

// Label displays a string without accepting edits. It still carries a
// bindable value so model changes flow through.
type Label struct {
	textCore
}

type textCore struct {
	core
	placeholder string
}

func (t *textCore) Placeholder() string { return t.placeholder }

func (t *textCore) SetValue(value any) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("widgets: %s cannot hold %T", t.kind, value)
	}
	t.commit(str)
	return nil
}

func newTextCore(kind string, opts Options) textCore {
	tc := textCore{core: core{kind: kind, value: ""}}
	if placeholder, ok := opts.String(OptionPlaceholder); ok {
		tc.placeholder = placeholder
	}
	return tc
}

// NewText constructs the plain text widget.
func NewText(opts Options) (Widget, error) {
	w := &Text{textCore: newTextCore(WidgetText, opts)}
	applyCommonOptions(w, opts)
	return w, nil
}

// NewTextarea constructs the multi-line text widget.
func NewTextarea(opts Options) (Widget, error) {
	w := &Textarea{textCore: newTextCore(WidgetTextarea, opts)}
	applyCommonOptions(w, opts)
	return w, nil
}

// NewPassword constructs the masked text widget.
func NewPassword(opts Options) (Widget, error) {
	w := &Password{textCore: newTextCore(WidgetPassword, opts)}
	applyCommonOptions(w, opts)
	return w, nil
}

// NewLabel constructs the display-only text widget. It reports itself
// disabled regardless of options.
func NewLabel(opts Options) (Widget, error) {
	w := &Label{textCore: newTextCore(WidgetLabel, opts)}
	applyCommonOptions(w, opts)
	w.disabled = true
	return w, nil
}

// Checkbox is a boolean widget.
type Checkbox struct {
	boolCore
}

// Toggle is the switch-styled boolean widget.
type Toggle struct {
	boolCore
}

type boolCore struct {
	core
}

func (b *boolCore) SetValue(value any) error {
	flag, ok := value.(bool)
	if !ok {
		return fmt.Errorf("widgets: %s cannot hold %T", b.kind, value)
	}
	b.commit(flag)
	return nil
}

// NewCheckbox constructs the checkbox widget.
func NewCheckbox(opts Options) (Widget, error) {
	w := &Checkbox{boolCore{core{kind: WidgetCheckbox, value: false}}}
	applyCommonOptions(w, opts)
	return w, nil
}

// NewToggle constructs the toggle widget.
func NewToggle(opts Options) (Widget, error) {
	w := &Toggle{boolCore{core{kind: WidgetToggle, value: false}}}
	applyCommonOptions(w, opts)
	return w, nil
}

// Dropdown selects one value out of a fixed choice list.
type Dropdown struct {
	enumCore
}

// SelectionSlider selects one value out of a fixed choice list with a slider
// affordance.
type SelectionSlider struct {
	enumCore
}

type enumCore struct {
	core
	choices []any
}

func (e *enumCore) Choices() []any { return append([]any(nil), e.choices...) }

func (e *enumCore) SetValue(value any) error {
	for _, choice := range e.choices {
		if reflect.DeepEqual(choice, value) {
			e.commit(value)
			return nil
		}
	}
	return fmt.Errorf("widgets: %s has no choice %v", e.kind, value)
}

func newEnumCore(kind string, opts Options) (enumCore, error) {
	choices, ok := opts.Slice(OptionChoices)
	if !ok {
		return enumCore{}, fmt.Errorf("widgets: %s requires the %q option", kind, OptionChoices)
	}
	return enumCore{
		core:    core{kind: kind, value: choices[0]},
		choices: append([]any(nil), choices...),
	}, nil
}

// NewDropdown constructs the dropdown widget. The choices option is required.
func NewDropdown(opts Options) (Widget, error) {
	ec, err := newEnumCore(WidgetDropdown, opts)
	if err != nil {
		return nil, err
	}
	w := &Dropdown{ec}
	applyCommonOptions(w, opts)
	return w, nil
}

// NewSelectionSlider constructs the selection slider widget.
func NewSelectionSlider(opts Options) (Widget, error) {
	ec, err := newEnumCore(WidgetSelectionSlider, opts)
	if err != nil {
		return nil, err
	}
	w := &SelectionSlider{ec}
	applyCommonOptions(w, opts)
	return w, nil
}

// IntText edits an unbounded integer.
type IntText struct {
	intCore
}

// BoundedIntText edits an integer with advisory bounds.
type BoundedIntText struct {
	intCore
}

// IntSlider edits a bounded integer with a range affordance.
type IntSlider struct {
	intCore
}

type intCore struct {
	core
	min, max *float64
}

func (i *intCore) Min() (float64, bool) { return deref(i.min) }
func (i *intCore) Max() (float64, bool) { return deref(i.max) }

func (i *intCore) SetValue(value any) error {
	switch v := value.(type) {
	case int:
		i.commit(v)
		return nil
	case int64:
		i.commit(int(v))
		return nil
	case float64:
		if v == float64(int(v)) {
			i.commit(int(v))
			return nil
		}
	}
	return fmt.Errorf("widgets: %s cannot hold %T", i.kind, value)
}

func newIntCore(kind string, opts Options) intCore {
	ic := intCore{core: core{kind: kind, value: 0}}
	if min, ok := opts.Float(OptionMin); ok {
		ic.min = &min
		if min > 0 {
			ic.value = int(min)
		}
	}
	if max, ok := opts.Float(OptionMax); ok {
		ic.max = &max
		if max < 0 {
			ic.value = int(max)
		}
	}
	return ic
}

// NewIntText constructs the unbounded integer widget.
func NewIntText(opts Options) (Widget, error) {
	w := &IntText{newIntCore(WidgetIntText, opts)}
	applyCommonOptions(w, opts)
	return w, nil
}

// NewBoundedIntText constructs the bounded integer text widget.
func NewBoundedIntText(opts Options) (Widget, error) {
	w := &BoundedIntText{newIntCore(WidgetBoundedIntText, opts)}
	applyCommonOptions(w, opts)
	return w, nil
}

// NewIntSlider constructs the integer slider widget.
func NewIntSlider(opts Options) (Widget, error) {
	w := &IntSlider{newIntCore(WidgetIntSlider, opts)}
	applyCommonOptions(w, opts)
	return w, nil
}

// FloatText edits an unbounded number.
type FloatText struct {
	floatCore
}

// BoundedFloatText edits a number with advisory bounds.
type BoundedFloatText struct {
	floatCore
}

// FloatSlider edits a bounded number with a range affordance.
type FloatSlider struct {
	floatCore
}

type floatCore struct {
	core
	min, max *float64
	step     float64
}

func (f *floatCore) Min() (float64, bool) { return deref(f.min) }
func (f *floatCore) Max() (float64, bool) { return deref(f.max) }
func (f *floatCore) Step() float64        { return f.step }

func (f *floatCore) SetValue(value any) error {
	switch v := value.(type) {
	case float64:
		f.commit(v)
		return nil
	case float32:
		f.commit(float64(v))
		return nil
	case int:
		f.commit(float64(v))
		return nil
	}
	return fmt.Errorf("widgets: %s cannot hold %T", f.kind, value)
}

func newFloatCore(kind string, opts Options) floatCore {
	fc := floatCore{core: core{kind: kind, value: 0.0}}
	if min, ok := opts.Float(OptionMin); ok {
		fc.min = &min
		if min > 0 {
			fc.value = min
		}
	}
	if max, ok := opts.Float(OptionMax); ok {
		fc.max = &max
		if max < 0 {
			fc.value = max
		}
	}
	if step, ok := opts.Float(OptionStep); ok && step > 0 {
		fc.step = step
	}
	return fc
}

// NewFloatText constructs the unbounded number widget.
func NewFloatText(opts Options) (Widget, error) {
	w := &FloatText{newFloatCore(WidgetFloatText, opts)}
	applyCommonOptions(w, opts)
	return w, nil
}

// NewBoundedFloatText constructs the bounded number text widget.
func NewBoundedFloatText(opts Options) (Widget, error) {
	w := &BoundedFloatText{newFloatCore(WidgetBoundedFloatText, opts)}
	applyCommonOptions(w, opts)
	return w, nil
}

// NewFloatSlider constructs the number slider widget.
func NewFloatSlider(opts Options) (Widget, error) {
	w := &FloatSlider{newFloatCore(WidgetFloatSlider, opts)}
	applyCommonOptions(w, opts)
	return w, nil
}

func deref(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}
