package session

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerScheduler_CoalescesBursts(t *testing.T) {
	s := NewTimerScheduler()
	var fired atomic.Int32

	for i := 0; i < 5; i++ {
		s.Schedule(60*time.Millisecond, func() { fired.Add(1) })
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)
	assert.EqualValues(t, 1, fired.Load())
}

func TestTimerScheduler_CancelPending(t *testing.T) {
	s := NewTimerScheduler()
	var fired atomic.Int32

	s.Schedule(50*time.Millisecond, func() { fired.Add(1) })
	s.CancelPending()

	time.Sleep(150 * time.Millisecond)
	assert.EqualValues(t, 0, fired.Load())

	// cancelling with nothing pending is fine
	s.CancelPending()
}
