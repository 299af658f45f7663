package flyscene

import (
	"errors"
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/EngoEngine/engo"
	"gopkg.in/yaml.v3"
)

var ErrUnknownKey = errors.New("unknown key")

var keyNames = map[string]engo.Key{
	"A": engo.KeyA, "B": engo.KeyB, "C": engo.KeyC, "D": engo.KeyD,
	"E": engo.KeyE, "F": engo.KeyF, "G": engo.KeyG, "H": engo.KeyH,
	"I": engo.KeyI, "J": engo.KeyJ, "K": engo.KeyK, "L": engo.KeyL,
	"M": engo.KeyM, "N": engo.KeyN, "O": engo.KeyO, "P": engo.KeyP,
	"Q": engo.KeyQ, "R": engo.KeyR, "S": engo.KeyS, "T": engo.KeyT,
	"U": engo.KeyU, "V": engo.KeyV, "W": engo.KeyW, "X": engo.KeyX,
	"Y": engo.KeyY, "Z": engo.KeyZ,

	"Space":    engo.KeySpace,
	"Escape":   engo.KeyEscape,
	"Enter":    engo.KeyEnter,
	"Tab":      engo.KeyTab,
	"Up":       engo.KeyArrowUp,
	"Down":     engo.KeyArrowDown,
	"Left":     engo.KeyArrowLeft,
	"Right":    engo.KeyArrowRight,
	"LShift":   engo.KeyLeftShift,
	"RShift":   engo.KeyRightShift,
	"LControl": engo.KeyLeftControl,
	"RControl": engo.KeyRightControl,
}

func LookupKey(name string) (engo.Key, error) {
	k, ok := keyNames[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownKey)
	}
	return k, nil
}

// AxisBinding emulates an axis with two keys: Pos gives +1, Neg gives -1.
type AxisBinding struct {
	Pos string `yaml:"pos"`
	Neg string `yaml:"neg"`
}

type Bindings struct {
	Axes    map[string]AxisBinding `yaml:"axes"`
	Actions map[string][]string    `yaml:"actions"`
}

// InputRegistrar is satisfied by *engo.InputManager.
type InputRegistrar interface {
	RegisterAxis(name string, pairs ...engo.AxisPair)
	RegisterButton(name string, keys ...engo.Key)
}

func DefaultBindings() *Bindings {
	return &Bindings{
		Axes: map[string]AxisBinding{
			MoveX: {Pos: "D", Neg: "A"},
			MoveY: {Pos: "E", Neg: "Q"},
			MoveZ: {Pos: "S", Neg: "W"},
		},
		Actions: map[string][]string{
			BoostButton: {"LShift"},
		},
	}
}

func LoadBindings(path string) (*Bindings, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key bindings: %w", err)
	}
	b, err := ParseBindings(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("Loaded %d axes and %d actions from %s", len(b.Axes), len(b.Actions), path)
	return b, nil
}

func ParseBindings(data []byte) (*Bindings, error) {
	var b Bindings
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing key bindings: %w", err)
	}
	if b.Axes == nil {
		b.Axes = map[string]AxisBinding{}
	}
	if b.Actions == nil {
		b.Actions = map[string][]string{}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *Bindings) Validate() error {
	for name, axis := range b.Axes {
		if _, err := LookupKey(axis.Pos); err != nil {
			return fmt.Errorf("axis %s: %w", name, err)
		}
		if _, err := LookupKey(axis.Neg); err != nil {
			return fmt.Errorf("axis %s: %w", name, err)
		}
	}
	for name, keys := range b.Actions {
		for _, k := range keys {
			if _, err := LookupKey(k); err != nil {
				return fmt.Errorf("action %s: %w", name, err)
			}
		}
	}
	return nil
}

// Apply registers every axis and action in name order.
func (b *Bindings) Apply(r InputRegistrar) error {
	for _, name := range sortedKeys(b.Axes) {
		axis := b.Axes[name]
		pos, err := LookupKey(axis.Pos)
		if err != nil {
			return fmt.Errorf("axis %s: %w", name, err)
		}
		neg, err := LookupKey(axis.Neg)
		if err != nil {
			return fmt.Errorf("axis %s: %w", name, err)
		}
		r.RegisterAxis(name, engo.AxisKeyPair{Min: neg, Max: pos})
	}

	actions := make([]string, 0, len(b.Actions))
	for name := range b.Actions {
		actions = append(actions, name)
	}
	sort.Strings(actions)
	for _, name := range actions {
		keys := make([]engo.Key, 0, len(b.Actions[name]))
		for _, k := range b.Actions[name] {
			key, err := LookupKey(k)
			if err != nil {
				return fmt.Errorf("action %s: %w", name, err)
			}
			keys = append(keys, key)
		}
		r.RegisterButton(name, keys...)
	}
	return nil
}

func sortedKeys(m map[string]AxisBinding) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
