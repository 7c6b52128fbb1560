package tui

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/goliatone/go-modelview/pkg/model"
	"github.com/goliatone/go-modelview/pkg/view"
	"github.com/goliatone/go-modelview/pkg/widgets"
)

// Session drives a bound form through terminal prompts. Answers are written
// to the model, so attribute validation applies and every observer and
// binding sees the edits as they happen.
type Session struct {
	driver      PromptDriver
	pageSize    int
	maxAttempts int
}

// New constructs a Session with the survey-backed driver.
func New(options ...Option) *Session {
	s := &Session{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Run prompts for every editable field of the form in declaration order.
// Nested forms are announced with their heading and walked in place.
func (s *Session) Run(ctx context.Context, form *view.Form) error {
	if form == nil {
		return fmt.Errorf("tui: form is nil")
	}
	if form.Model() == nil {
		return ErrDetached
	}
	if err := s.driver.Info(ctx, form.Description()); err != nil {
		return err
	}
	return s.walk(ctx, form)
}

func (s *Session) walk(ctx context.Context, form *view.Form) error {
	m := form.Model()
	for _, child := range form.Children() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if nested, ok := child.Widget.(*view.Form); ok {
			if nested.Model() == nil {
				continue
			}
			if err := s.driver.Info(ctx, nested.Description()); err != nil {
				return err
			}
			if err := s.walk(ctx, nested); err != nil {
				return err
			}
			continue
		}
		if err := s.promptLeaf(ctx, m, child); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) promptLeaf(ctx context.Context, m model.Model, child view.Child) error {
	w := child.Widget
	if disabled, ok := w.(widgets.Disableable); ok && disabled.Disabled() {
		return s.driver.Info(ctx, fmt.Sprintf("%s: %v", messageFor(child), w.Value()))
	}

	for attempt := 0; s.maxAttempts == 0 || attempt < s.maxAttempts; attempt++ {
		value, err := s.ask(ctx, child)
		if err != nil {
			return err
		}
		if err := m.Set(child.Name, value); err != nil {
			if info := s.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", child.Name, err)); info != nil {
				return info
			}
			continue
		}
		return nil
	}
	return fmt.Errorf("tui: no valid answer for %s", child.Name)
}

func (s *Session) ask(ctx context.Context, child view.Child) (any, error) {
	w := child.Widget
	message := messageFor(child)

	if enum, ok := w.(interface{ Choices() []any }); ok {
		return s.askChoice(ctx, message, enum.Choices(), w.Value())
	}

	switch w.Kind() {
	case widgets.WidgetCheckbox, widgets.WidgetToggle:
		current, _ := w.Value().(bool)
		return s.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: current})
	case widgets.WidgetPassword:
		return s.driver.Password(ctx, InputConfig{Message: message})
	case widgets.WidgetTextarea:
		current, _ := w.Value().(string)
		return s.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: current})
	case widgets.WidgetIntText, widgets.WidgetBoundedIntText, widgets.WidgetIntSlider:
		return s.askNumber(ctx, message, w, true)
	case widgets.WidgetFloatText, widgets.WidgetBoundedFloatText, widgets.WidgetFloatSlider:
		return s.askNumber(ctx, message, w, false)
	default:
		cfg := InputConfig{Message: message}
		if current, ok := w.Value().(string); ok {
			cfg.Default = current
		}
		if text, ok := w.(interface{ Placeholder() string }); ok {
			cfg.Placeholder = text.Placeholder()
		}
		return s.driver.Input(ctx, cfg)
	}
}

func (s *Session) askChoice(ctx context.Context, message string, choices []any, current any) (any, error) {
	options := make([]string, len(choices))
	defaultIdx := -1
	for i, choice := range choices {
		options[i] = fmt.Sprint(choice)
		if reflect.DeepEqual(choice, current) {
			defaultIdx = i
		}
	}
	for {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      options,
			DefaultIndex: defaultIdx,
			PageSize:     s.pageSize,
		})
		if err != nil {
			return nil, err
		}
		if idx >= 0 && idx < len(choices) {
			return choices[idx], nil
		}
		if err := s.driver.Info(ctx, fmt.Sprintf("Invalid selection for %s", message)); err != nil {
			return nil, err
		}
	}
}

func (s *Session) askNumber(ctx context.Context, message string, w widgets.Widget, integer bool) (any, error) {
	cfg := InputConfig{
		Message: message,
		Default: fmt.Sprint(w.Value()),
		Help:    boundsHelp(w),
	}
	for {
		raw, err := s.driver.Input(ctx, cfg)
		if err != nil {
			return nil, err
		}
		raw = strings.TrimSpace(raw)
		if integer {
			parsed, err := strconv.Atoi(raw)
			if err == nil {
				return parsed, nil
			}
		} else {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err == nil {
				return parsed, nil
			}
		}
		if err := s.driver.Info(ctx, fmt.Sprintf("Not a number: %q", raw)); err != nil {
			return nil, err
		}
	}
}

func boundsHelp(w widgets.Widget) string {
	bounded, ok := w.(interface {
		Min() (float64, bool)
		Max() (float64, bool)
	})
	if !ok {
		return ""
	}
	min, hasMin := bounded.Min()
	max, hasMax := bounded.Max()
	switch {
	case hasMin && hasMax:
		return fmt.Sprintf("between %v and %v", min, max)
	case hasMin:
		return fmt.Sprintf("at least %v", min)
	case hasMax:
		return fmt.Sprintf("at most %v", max)
	}
	return ""
}

func messageFor(child view.Child) string {
	if described, ok := child.Widget.(widgets.Describable); ok {
		if msg := described.Description(); msg != "" {
			return msg
		}
	}
	return model.DisplayName(child.Name)
}
