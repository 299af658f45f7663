package flyscene

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
)

const CursorPriority = 20

type CursorMessage struct {
	Hidden bool
}

func (CursorMessage) Type() string {
	return "CursorMessage"
}

type CursorInput interface {
	EscapeDown() bool
	LeftMouseDown() bool
}

// CursorSystem releases the cursor on Escape and grabs it again on a left click.
type CursorSystem struct {
	Cursor     *HideCursor
	Input      CursorInput
	SetVisible func(visible bool)

	applied  bool
	lastHide bool
}

func (*CursorSystem) Remove(ecs.BasicEntity) {}
func (*CursorSystem) Priority() int          { return CursorPriority }

func (cs *CursorSystem) Update(dt float32) {
	if cs.Cursor == nil {
		return
	}
	if cs.Input != nil {
		if cs.Input.EscapeDown() {
			cs.Cursor.Hide = false
		} else if cs.Input.LeftMouseDown() {
			cs.Cursor.Hide = true
		}
	}

	if cs.applied && cs.lastHide == cs.Cursor.Hide {
		return
	}
	cs.applied = true
	cs.lastHide = cs.Cursor.Hide

	log.Debugf("Cursor hidden: %v", cs.Cursor.Hide)
	if cs.SetVisible != nil {
		cs.SetVisible(!cs.Cursor.Hide)
	}
	if engo.Mailbox != nil {
		engo.Mailbox.Dispatch(CursorMessage{Hidden: cs.Cursor.Hide})
	}
}
