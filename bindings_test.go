package flyscene

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/EngoEngine/engo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedAxis struct {
	name  string
	pairs []engo.AxisPair
}

type recordedButton struct {
	name string
	keys []engo.Key
}

type fakeRegistrar struct {
	axes    []recordedAxis
	buttons []recordedButton
}

func (fr *fakeRegistrar) RegisterAxis(name string, pairs ...engo.AxisPair) {
	fr.axes = append(fr.axes, recordedAxis{name, pairs})
}

func (fr *fakeRegistrar) RegisterButton(name string, keys ...engo.Key) {
	fr.buttons = append(fr.buttons, recordedButton{name, keys})
}

func TestParseBindings(t *testing.T) {
	b, err := ParseBindings([]byte(`
axes:
  move_x: {pos: D, neg: A}
  move_z: {pos: S, neg: W}
actions:
  boost: [LShift, Space]
`))
	require.NoError(t, err)
	assert.Equal(t, AxisBinding{Pos: "D", Neg: "A"}, b.Axes["move_x"])
	assert.Equal(t, []string{"LShift", "Space"}, b.Actions["boost"])

	fr := &fakeRegistrar{}
	require.NoError(t, b.Apply(fr))
	require.Len(t, fr.axes, 2)
	assert.Equal(t, "move_x", fr.axes[0].name)
	assert.Equal(t, []engo.AxisPair{engo.AxisKeyPair{Min: engo.KeyA, Max: engo.KeyD}}, fr.axes[0].pairs)
	assert.Equal(t, "move_z", fr.axes[1].name)
	require.Len(t, fr.buttons, 1)
	assert.Equal(t, []engo.Key{engo.KeyLeftShift, engo.KeySpace}, fr.buttons[0].keys)
}

func TestParseBindingsErrors(t *testing.T) {
	var tests = []struct {
		name string
		doc  string
	}{
		{"unknown axis key", "axes:\n  move_x: {pos: Banana, neg: A}\n"},
		{"missing axis key", "axes:\n  move_x: {pos: D}\n"},
		{"unknown action key", "actions:\n  jump: [Space, Hyper]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBindings([]byte(tt.doc))
			assert.True(t, errors.Is(err, ErrUnknownKey), "got %v", err)
		})
	}

	_, err := ParseBindings([]byte("axes: [1, 2"))
	assert.Error(t, err)
}

func TestEmptyBindings(t *testing.T) {
	b, err := ParseBindings([]byte(""))
	require.NoError(t, err)
	fr := &fakeRegistrar{}
	require.NoError(t, b.Apply(fr))
	assert.Empty(t, fr.axes)
	assert.Empty(t, fr.buttons)
}

func TestLoadBindings(t *testing.T) {
	b, err := LoadBindings(filepath.Join(ConfigDir, "key_bindings.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBindings(), b)
	assert.Equal(t, []string{"LShift"}, b.Actions[BoostButton])

	_, err = LoadBindings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
