package layouts

import (
	"fmt"
	"sort"

	"pckbd/keycode"
)

var builtin = map[string]keycode.Layout{
	"us104":     Us104{},
	"uk105":     Uk105{},
	"azerty":    Azerty{},
	"de104":     De104{},
	"de105":     De105{},
	"fi_se105":  FiSe105{},
	"no105":     No105{},
	"jis109":    Jis109{},
	"dvorak104": Dvorak104{},
	"dvp104":    DVP104{},
	"colemak":   Colemak{},
}

// ByName returns the built-in layout registered under name.
func ByName(name string) (keycode.Layout, error) {
	layout, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q", name)
	}
	return layout, nil
}

// Names lists the built-in layout names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AnyLayout wraps another layout and allows swapping it at runtime while
// keeping a stable Layout value, for keyboards whose locale is chosen
// after construction.
type AnyLayout struct {
	inner keycode.Layout
}

// NewAnyLayout wraps layout; a nil layout defaults to Us104.
func NewAnyLayout(layout keycode.Layout) *AnyLayout {
	if layout == nil {
		layout = Us104{}
	}
	return &AnyLayout{inner: layout}
}

// Set replaces the wrapped layout.
func (a *AnyLayout) Set(layout keycode.Layout) {
	a.inner = layout
}

func (a *AnyLayout) Physical() keycode.PhysicalKeyboard {
	return a.inner.Physical()
}

func (a *AnyLayout) MapKeycode(code keycode.KeyCode, m *keycode.Modifiers, ctrl keycode.HandleControl) keycode.DecodedKey {
	return a.inner.MapKeycode(code, m, ctrl)
}
