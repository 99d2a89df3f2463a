// Package keymap defines keybindings for the progress display.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings.
type KeyMap struct {
	// Stop cancels the run. The output is not written.
	Stop key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Stop: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("ctrl+c", "stop"),
		),
	}
}

// ShortHelp returns the bindings shown under the progress bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Stop}
}
