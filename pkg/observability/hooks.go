// Package observability provides hooks for instrumenting graph lifecycle
// events without coupling the library to a metrics or tracing backend.
//
// The package uses a simple hooks pattern: a hook interface with a no-op
// default implementation, replaceable at startup by the embedding
// application. Libraries call hooks to emit events:
//
//	observability.Graph().OnExportStart(path)
//	// ... write the file ...
//	observability.Graph().OnExportComplete(path, size, elapsed, err)
//
// Register a custom implementation at startup:
//
//	func main() {
//	    observability.SetGraphHooks(&myHooks{})
//	    // ... run application
//	}
package observability

import (
	"sync"
	"time"
)

// GraphHooks receives events from graph validation and export.
type GraphHooks interface {
	// OnExportStart fires before a graph document is written to path.
	OnExportStart(path string)

	// OnExportComplete fires after an export attempt. size is the document
	// size in bytes (0 on failure), err is nil on success.
	OnExportComplete(path string, size int, duration time.Duration, err error)

	// OnValidateComplete fires after a full-graph validation pass with the
	// number of issues found.
	OnValidateComplete(issues int, duration time.Duration)
}

// NoopGraphHooks is a no-op implementation of GraphHooks. Embed it to
// implement only the events you care about.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnExportStart(string)                               {}
func (NoopGraphHooks) OnExportComplete(string, int, time.Duration, error) {}
func (NoopGraphHooks) OnValidateComplete(int, time.Duration)              {}

var (
	graphHooks GraphHooks = NoopGraphHooks{}
	hooksMu    sync.RWMutex
)

// SetGraphHooks registers custom graph hooks.
// This should be called once at application startup before any graph operations.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
}
