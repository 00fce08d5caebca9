package download

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMenuToggle(t *testing.T) {
	m := NewMenu(3)
	require.Equal(t, MenuClosed, m.State())
	require.Equal(t, -1, m.Focus())

	m.Toggle()
	require.True(t, m.IsOpen())
	require.Equal(t, "open", m.State().String())

	m.Toggle()
	require.False(t, m.IsOpen())

	m.Toggle()
	m.OutsideClick()
	require.Equal(t, MenuClosed, m.State())
	require.Equal(t, -1, m.Focus())
}

func TestMenuKeyboard(t *testing.T) {
	testCases := []struct {
		Name          string
		Keys          []string
		ExpectedOpen  bool
		ExpectedFocus int
	}{
		{Name: "enter opens on first item", Keys: []string{KeyEnter}, ExpectedOpen: true, ExpectedFocus: 0},
		{Name: "space opens on first item", Keys: []string{KeySpace}, ExpectedOpen: true, ExpectedFocus: 0},
		{Name: "arrow up opens on last item", Keys: []string{KeyArrowUp}, ExpectedOpen: true, ExpectedFocus: 2},
		{Name: "arrow down moves", Keys: []string{KeyEnter, KeyArrowDown}, ExpectedOpen: true, ExpectedFocus: 1},
		{Name: "arrow down wraps", Keys: []string{KeyEnter, KeyArrowDown, KeyArrowDown, KeyArrowDown}, ExpectedOpen: true, ExpectedFocus: 0},
		{Name: "arrow up wraps", Keys: []string{KeyEnter, KeyArrowUp}, ExpectedOpen: true, ExpectedFocus: 2},
		{Name: "end then home", Keys: []string{KeyEnter, KeyEnd, KeyHome}, ExpectedOpen: true, ExpectedFocus: 0},
		{Name: "escape closes", Keys: []string{KeyEnter, KeyArrowDown, KeyEscape}, ExpectedOpen: false, ExpectedFocus: -1},
		{Name: "escape on closed menu", Keys: []string{KeyEscape}, ExpectedOpen: false, ExpectedFocus: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			m := NewMenu(3)
			for _, k := range tc.Keys {
				m.Key(k)
			}
			require.Equal(t, tc.ExpectedOpen, m.IsOpen())
			require.Equal(t, tc.ExpectedFocus, m.Focus())
		})
	}
}

func TestMenuKeyConsumed(t *testing.T) {
	m := NewMenu(2)
	require.False(t, m.Key("a"))
	require.False(t, m.Key(KeyEscape))
	require.True(t, m.Key(KeyEnter))
	require.False(t, m.Key("Tab"))
	require.True(t, m.Key(KeyEscape))
}

func TestMenuWithoutItems(t *testing.T) {
	m := NewMenu(0)
	m.Key(KeyEnter)
	require.True(t, m.IsOpen())
	require.Equal(t, -1, m.Focus())

	m.Key(KeyArrowDown)
	require.Equal(t, -1, m.Focus())
}

func TestMenuToggleThenArrow(t *testing.T) {
	m := NewMenu(3)
	m.Toggle()
	require.Equal(t, -1, m.Focus())

	m.Key(KeyArrowUp)
	require.Equal(t, 2, m.Focus())
}
