package dispatcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/LofiStudio/internal/eventbus"
	"github.com/Rorical/LofiStudio/internal/update"
)

func TestListenForCoreEvents(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	ed := NewEventDispatcher(eb)
	defer ed.Stop()

	require.NoError(t, eb.SendToUI(eventbus.StatusEvent{Ready: true}))

	msg := ed.ListenForCoreEvents()()
	assert.Equal(t, update.CoreEventMsg{Event: eventbus.StatusEvent{Ready: true}}, msg)
}

func TestListenForCoreEvents_Stop(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	ed := NewEventDispatcher(eb)

	done := make(chan any, 1)
	go func() { done <- ed.ListenForCoreEvents()() }()

	ed.Stop()
	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not return after Stop")
	}
}

func TestListenForCoreEvents_ClosedBus(t *testing.T) {
	eb := eventbus.NewEventBus()
	ed := NewEventDispatcher(eb)
	defer ed.Stop()

	eb.Close()
	assert.Nil(t, ed.ListenForCoreEvents()())
	assert.Same(t, eb, ed.GetEventBus())
}
