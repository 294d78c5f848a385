package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchReachesSubscribers(t *testing.T) {
	m := NewManager()
	var got []Event
	m.Subscribe(TypeBufferSwitched, func(e Event) {
		got = append(got, e)
	})

	m.Dispatch(TypeBufferSwitched, BufferSwitchedData{Index: 1, Count: 3, Name: "pipe-2"})
	m.Dispatch(TypeSearchDone, SearchDoneData{Pattern: "x", Found: true})

	assert.Len(t, got, 1, "handlers only see their subscribed type")
	data, ok := got[0].Data.(BufferSwitchedData)
	assert.True(t, ok)
	assert.Equal(t, "pipe-2", data.Name)
}

func TestDispatchInRegistrationOrder(t *testing.T) {
	m := NewManager()
	var order []int
	m.Subscribe(TypeAppQuit, func(Event) { order = append(order, 1) })
	m.Subscribe(TypeAppQuit, func(Event) { order = append(order, 2) })

	m.Dispatch(TypeAppQuit, AppQuitData{})
	assert.Equal(t, []int{1, 2}, order)
}

func TestNilHandlerIgnored(t *testing.T) {
	m := NewManager()
	m.Subscribe(TypeAppQuit, nil)
	m.Dispatch(TypeAppQuit, AppQuitData{}) // must not panic
}
