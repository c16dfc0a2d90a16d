package codeccore

import (
	"sync"

	"github.com/radxcodec/codeccore/registry"
)

// resetForTest clears all process-wide initialization state so a test
// can observe Init/Registry/Initialized starting from a clean slate,
// regardless of what earlier tests in this package already did. Exists
// only for tests — production code never needs to un-initialize.
func resetForTest() {
	once = sync.Once{}
	initErr = nil
	initialized.Store(false)
	autoInitCheck = sync.Once{}
	autoInitOff.Store(false)
	defaultRegistry = registry.New()
}
