package binding

import (
	"fmt"

	"github.com/goliatone/go-modelview/pkg/model"
)

// ObserverFunc receives the current value of every observed attribute keyed
// by name, on every change to any one of them.
type ObserverFunc func(values map[string]any)

// Subscription tears down an Observe registration.
type Subscription struct {
	cancels []func()
}

// Cancel removes every listener the subscription installed. Safe to call
// more than once.
func (s *Subscription) Cancel() {
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
}

// Observe installs a listener on the named top-level attributes of the model
// (all of them when names is empty). Any change triggers exactly one
// callback invocation carrying the current value of every observed
// attribute, not just the one that changed. The subscription stays active
// until cancelled.
func Observe(m model.Model, fn ObserverFunc, names ...string) (*Subscription, error) {
	if m == nil {
		return nil, fmt.Errorf("binding: model is nil")
	}
	if fn == nil {
		return nil, fmt.Errorf("binding: observer func is nil")
	}

	if len(names) == 0 {
		for _, attr := range m.Schema().Attributes() {
			names = append(names, attr.Name)
		}
	} else {
		for _, name := range names {
			if _, ok := m.Schema().Attribute(name); !ok {
				return nil, fmt.Errorf("binding: observed attribute %q is not declared by schema %q", name, m.Schema().Name())
			}
		}
	}

	observed := append([]string(nil), names...)
	notify := func(model.Change) {
		snapshot := make(map[string]any, len(observed))
		for _, name := range observed {
			value, _ := m.Get(name)
			snapshot[name] = value
		}
		fn(snapshot)
	}

	sub := &Subscription{}
	for _, name := range observed {
		sub.cancels = append(sub.cancels, m.Observe(name, notify))
	}
	return sub, nil
}
