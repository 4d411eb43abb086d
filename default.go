package phonedata

import (
	"fmt"
	"sync"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry over the bundled data.
// It is built on first use and shared afterwards.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := New()
		if err != nil {
			panic(fmt.Sprintf("phonedata: load bundled data: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}
