// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about graph mutations, simulations, and report runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain logging)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGraphHooks(&myGraphHooks{})
//	    observability.SetSimHooks(&mySimHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Graph().OnReferralAdded(referrer, candidate)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Graph Hooks
// =============================================================================

// GraphHooks receives events from referral graph mutations.
type GraphHooks interface {
	// OnReferralAdded records an accepted referral edge.
	OnReferralAdded(referrer, candidate string)

	// OnReferralRejected records a rejected mutation and the reason code.
	OnReferralRejected(referrer, candidate string, err error)
}

// =============================================================================
// Simulation Hooks
// =============================================================================

// SimHooks receives events from growth simulations and optimization searches.
type SimHooks interface {
	// OnSimulationStart records the start of a simulation run.
	OnSimulationStart(p float64, days int, stochastic bool)

	// OnSimulationComplete records a finished simulation and its final total.
	OnSimulationComplete(p float64, days int, total float64, duration time.Duration)

	// OnSearchProbe records one probe of a binary search (days or bonus).
	OnSearchProbe(kind string, value int, total float64)
}

// =============================================================================
// Report Hooks
// =============================================================================

// ReportHooks receives events from the reporting runner.
type ReportHooks interface {
	// OnAnalyzeStart records the start of a network analysis run.
	OnAnalyzeStart(input string)

	// OnAnalyzeComplete records a finished analysis run.
	OnAnalyzeComplete(input string, users int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnReferralAdded(string, string) {}

func (NoopGraphHooks) OnReferralRejected(string, string, error) {}

// NoopSimHooks is a no-op implementation of SimHooks.
type NoopSimHooks struct{}

func (NoopSimHooks) OnSimulationStart(float64, int, bool) {}

func (NoopSimHooks) OnSimulationComplete(float64, int, float64, time.Duration) {}

func (NoopSimHooks) OnSearchProbe(string, int, float64) {}

// NoopReportHooks is a no-op implementation of ReportHooks.
type NoopReportHooks struct{}

func (NoopReportHooks) OnAnalyzeStart(string) {}

func (NoopReportHooks) OnAnalyzeComplete(string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	graphHooks  GraphHooks  = NoopGraphHooks{}
	simHooks    SimHooks    = NoopSimHooks{}
	reportHooks ReportHooks = NoopReportHooks{}
	hooksMu     sync.RWMutex
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

// SetSimHooks registers custom simulation hooks.
// This should be called once at application startup before any simulation runs.
func SetSimHooks(h SimHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		simHooks = h
	}
}

// SetReportHooks registers custom report hooks.
// This should be called once at application startup before any analysis runs.
func SetReportHooks(h ReportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		reportHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Sim returns the registered simulation hooks.
func Sim() SimHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return simHooks
}

// Report returns the registered report hooks.
func Report() ReportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return reportHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
	simHooks = NoopSimHooks{}
	reportHooks = NoopReportHooks{}
}
