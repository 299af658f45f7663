package flyscene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorToggle(t *testing.T) {
	cursor := &HideCursor{Hide: true}
	in := &fakeInput{}
	var visible []bool
	cs := CursorSystem{Cursor: cursor, Input: in, SetVisible: func(v bool) { visible = append(visible, v) }}

	cs.Update(0)
	assert.True(t, cursor.Hide)
	assert.Equal(t, []bool{false}, visible)

	cs.Update(0)
	assert.Len(t, visible, 1, "unchanged state is not reapplied")

	in.escape = true
	cs.Update(0)
	assert.False(t, cursor.Hide)
	assert.Equal(t, []bool{false, true}, visible)

	in.escape = false
	in.left = true
	cs.Update(0)
	assert.True(t, cursor.Hide)
	assert.Equal(t, []bool{false, true, false}, visible)
}

func TestCursorEscapeWins(t *testing.T) {
	cursor := &HideCursor{Hide: true}
	cs := CursorSystem{Cursor: cursor, Input: &fakeInput{escape: true, left: true}}

	cs.Update(0)
	assert.False(t, cursor.Hide)
}

func TestCursorWithoutResource(t *testing.T) {
	cs := CursorSystem{Input: &fakeInput{escape: true}}
	assert.NotPanics(t, func() { cs.Update(0) })
}
