package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiAutocomplete_EnterToggles(t *testing.T) {
	var changes [][]string
	m := NewMultiAutocomplete(fruits())
	m.OnChange(func(v []string) { changes = append(changes, v) })
	m.SetValues([]string{"a"})
	m.Focus()

	// highlight starts on "Apple"
	require.True(t, m.HandleKey(KeyEnter))
	assert.Empty(t, m.Values())

	m.HandleKey(KeyDown)
	m.HandleKey(KeyEnter)
	assert.Equal(t, []string{"b"}, m.Values())

	m.HandleKey(KeyEnter)
	assert.Empty(t, m.Values(), "a second toggle removes the value again")

	require.Len(t, changes, 3)
}

func TestMultiAutocomplete_OutputFollowsOptionOrder(t *testing.T) {
	m := NewMultiAutocomplete(fruits())
	m.Focus()

	m.Input("cher")
	m.HandleKey(KeyEnter)
	m.Input("app")
	m.HandleKey(KeyEnter)

	assert.Equal(t, []string{"a", "c"}, m.Values())
	assert.Equal(t, "Apple, Cherry", m.Summary())
	assert.Equal(t, "", m.Search(), "search is cleared after each toggle")
}

func TestMultiAutocomplete_DisplayAndBlur(t *testing.T) {
	m := NewMultiAutocomplete(fruits())
	m.SetValues([]string{"c", "b"})

	assert.Equal(t, "Banana, Cherry", m.Display())

	m.Focus()
	m.Input("ch")
	assert.Equal(t, "ch", m.Display())

	assert.False(t, m.Blur(true))
	assert.Equal(t, "ch", m.Search())

	assert.True(t, m.Blur(false))
	assert.Equal(t, "", m.Search())
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, "Banana, Cherry", m.Display())
}

func TestMultiAutocomplete_ClickTogglesAndDropsUnknownValues(t *testing.T) {
	m := NewMultiAutocomplete(fruits())
	m.SetValues([]string{"zzz", "a"})
	m.Focus()

	assert.True(t, m.Click(2))
	assert.Equal(t, []string{"a", "c"}, m.Values())
	assert.False(t, m.Click(9))
}

func TestMultiAutocomplete_EmptyCandidates(t *testing.T) {
	m := NewMultiAutocomplete(fruits())
	m.Focus()
	m.Input("nothing")

	assert.Empty(t, m.Candidates())
	assert.False(t, m.HandleKey(KeyEnter))
	assert.Empty(t, m.Values())
}

func TestMultiAutocomplete_ShowsAllWhenSearchIsLastMatch(t *testing.T) {
	m := NewMultiAutocomplete(fruits())
	m.SetValues([]string{"a", "b"})
	m.Focus()
	m.Input("Banana")

	assert.Len(t, m.Candidates(), 3)
}

func TestMultiAutocomplete_SetValuesClampsHighlight(t *testing.T) {
	m := NewMultiAutocomplete(fruits())
	m.SetValues([]string{"b"})
	m.Focus()
	m.Input("Banana")
	m.HandleKey(KeyDown)
	m.HandleKey(KeyDown)
	require.Equal(t, 2, m.Index())

	m.SetValues([]string{"a"})
	require.Len(t, m.Candidates(), 1)
	assert.Equal(t, 0, m.Index())

	require.True(t, m.HandleKey(KeyEnter))
	assert.Equal(t, []string{"a", "b"}, m.Values())
}
