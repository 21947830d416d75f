package app

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingLogger struct {
	mu     sync.Mutex
	events map[string]int
}

func (c *countingLogger) record(component, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.events == nil {
		c.events = make(map[string]int)
	}
	c.events[component+"/"+message]++
}

func (c *countingLogger) count(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events[key]
}

func (c *countingLogger) Debug(component, message string, _ map[string]interface{}) {
	c.record(component, message)
}

func (c *countingLogger) Info(component, message string, _ map[string]interface{}) {
	c.record(component, message)
}

func (c *countingLogger) Warning(component, message string, _ map[string]interface{}) {
	c.record(component, message)
}

func (c *countingLogger) Error(component string, _ error, _ map[string]interface{}) {
	c.record(component, "error")
}

func TestLifecycleShutdownRunsOnce(t *testing.T) {
	log := &countingLogger{}
	lifecycle := NewLifecycle(nil, nil, nil, log)

	// Close intercept and signal handler can race into Shutdown.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lifecycle.Shutdown()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, log.count("Lifecycle/shutdown sequence initiated"))
	assert.Equal(t, 1, log.count("Lifecycle/shutdown sequence completed"))
}
