package download

// MenuState is the disclosure state of the alternate downloads menu.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// Keys handled by Menu.Key, named after KeyboardEvent.key values.
const (
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
	KeyHome      = "Home"
	KeyEnd       = "End"
	KeyEscape    = "Escape"
	KeyEnter     = "Enter"
	KeySpace     = " "
)

// Menu is the two-state disclosure menu listing a build's artifacts, with
// the keyboard semantics of an accessible menu button. Focus is -1 while
// closed.
type Menu struct {
	state MenuState
	items int
	focus int
}

func NewMenu(items int) *Menu {
	return &Menu{items: items, focus: -1}
}

func (m *Menu) State() MenuState { return m.state }

func (m *Menu) IsOpen() bool { return m.state == MenuOpen }

// Focus returns the index of the focused item, -1 when none.
func (m *Menu) Focus() int { return m.focus }

// Toggle handles a trigger activation.
func (m *Menu) Toggle() {
	if m.state == MenuOpen {
		m.Close()
		return
	}
	m.open(-1)
}

func (m *Menu) Close() {
	m.state = MenuClosed
	m.focus = -1
}

func (m *Menu) OutsideClick() {
	m.Close()
}

// Key handles a key press while the trigger or the menu has focus and
// reports whether the key was consumed.
func (m *Menu) Key(key string) bool {
	if m.state == MenuClosed {
		switch key {
		case KeyEnter, KeySpace, KeyArrowDown:
			m.open(0)
			return true
		case KeyArrowUp:
			m.open(m.items - 1)
			return true
		}
		return false
	}

	switch key {
	case KeyEscape:
		m.Close()
	case KeyArrowDown:
		m.move(1)
	case KeyArrowUp:
		m.move(-1)
	case KeyHome:
		m.setFocus(0)
	case KeyEnd:
		m.setFocus(m.items - 1)
	default:
		return false
	}
	return true
}

func (m *Menu) open(focus int) {
	m.state = MenuOpen
	m.setFocus(focus)
}

func (m *Menu) move(delta int) {
	if m.items == 0 {
		return
	}
	if m.focus < 0 {
		if delta > 0 {
			m.focus = 0
		} else {
			m.focus = m.items - 1
		}
		return
	}
	m.focus = (m.focus + delta + m.items) % m.items
}

func (m *Menu) setFocus(i int) {
	if m.items == 0 || i < 0 {
		m.focus = -1
		return
	}
	if i >= m.items {
		i = m.items - 1
	}
	m.focus = i
}
