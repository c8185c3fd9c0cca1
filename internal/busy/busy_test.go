package busy

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleAcrossOverlappingCalls(t *testing.T) {
	c := NewCounter()
	assert.False(t, c.Visible())

	c.Add()
	assert.True(t, c.Visible(), "visible from first dispatch")

	// A call started while the indicator is already visible keeps it visible.
	c.Add()
	c.Done()
	assert.True(t, c.Visible(), "still one call outstanding")

	c.Done()
	assert.False(t, c.Visible(), "hidden after the last completion")
}

func TestCountNeverNegative(t *testing.T) {
	c := NewCounter()
	c.Done()
	c.Done()
	assert.Equal(t, 0, c.Count())

	c.Add()
	c.Done()
	c.Done()
	assert.Equal(t, 0, c.Count())
}

func TestOnIdleFiresAtZero(t *testing.T) {
	c := NewCounter()
	idle := 0
	c.OnIdle(func() { idle++ })

	c.Add()
	c.Add()
	c.Done()
	assert.Equal(t, 0, idle, "callback must wait for the last completion")
	c.Done()
	assert.Equal(t, 1, idle)

	// Another round of activity triggers it again.
	c.Add()
	c.Done()
	assert.Equal(t, 2, idle)
}

func TestConcurrentAddDone(t *testing.T) {
	c := NewCounter()
	const n = 64

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add()
			c.Done()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, c.Count())
	assert.False(t, c.Visible())
}
