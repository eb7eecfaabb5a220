package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// IntentType discriminates host key actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit         // q, Esc
	IntentActivate     // Enter, open the active item
	IntentSwitchPage   // Tab, home ↔ about
	IntentToggleCoarse // m, desktop ↔ mobile input
	IntentToggleMute   // s
	IntentSkipIntro    // space
	IntentNext         // right arrow, next sector
	IntentPrev         // left arrow, previous sector
)

// actionRegistry maps canonical action names used in keymap files to intents
var actionRegistry = map[string]IntentType{
	"none":          IntentNone,
	"quit":          IntentQuit,
	"activate":      IntentActivate,
	"switch_page":   IntentSwitchPage,
	"toggle_coarse": IntentToggleCoarse,
	"toggle_mute":   IntentToggleMute,
	"skip_intro":    IntentSkipIntro,
	"next":          IntentNext,
	"prev":          IntentPrev,
}

// KeyTable maps host key names to intents. Named keys are lower-case ("esc", "enter", "tab", "left")
type KeyTable struct {
	bindings map[string]IntentType
}

// DefaultKeyTable returns the built-in bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{bindings: map[string]IntentType{
		"q":     IntentQuit,
		"esc":   IntentQuit,
		"enter": IntentActivate,
		"tab":   IntentSwitchPage,
		"m":     IntentToggleCoarse,
		"s":     IntentToggleMute,
		"space": IntentSkipIntro,
		"right": IntentNext,
		"l":     IntentNext,
		"left":  IntentPrev,
		"h":     IntentPrev,
	}}
}

// Lookup resolves a key name
func (kt *KeyTable) Lookup(key string) IntentType {
	if kt == nil {
		return IntentNone
	}
	return kt.bindings[strings.ToLower(key)]
}

// Keys returns bound key names in sorted order
func (kt *KeyTable) Keys() []string {
	keys := make([]string, 0, len(kt.bindings))
	for k := range kt.bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge applies sparse overrides. A "none" binding removes the key
func (kt *KeyTable) Merge(over map[string]IntentType) {
	for k, intent := range over {
		if intent == IntentNone {
			delete(kt.bindings, k)
			continue
		}
		kt.bindings[k] = intent
	}
}

// keymapFile is the on-disk layout: a single [keys] table of key = "action"
type keymapFile struct {
	Keys map[string]string `toml:"keys"`
}

// LoadKeyConfig parses TOML keymap data into sparse overrides
// Returns error on unknown action names or parse failure
func LoadKeyConfig(data []byte) (map[string]IntentType, error) {
	var f keymapFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	return ResolveKeys(f.Keys)
}

// ResolveKeys converts key → action name pairs into intents
func ResolveKeys(raw map[string]string) (map[string]IntentType, error) {
	out := make(map[string]IntentType, len(raw))
	for key, action := range raw {
		intent, ok := actionRegistry[action]
		if !ok {
			return nil, fmt.Errorf("[keys] %q: unknown action %q", key, action)
		}
		out[strings.ToLower(key)] = intent
	}
	return out, nil
}
