package cli

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/referlab/refnet/pkg/observability"
)

// logHooks forwards observability events to the CLI logger at debug level,
// so --verbose surfaces per-mutation and per-probe detail without any cost
// in the default configuration.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnReferralAdded(referrer, candidate string) {
	h.logger.Debug("referral added", "referrer", referrer, "candidate", candidate)
}

func (h logHooks) OnReferralRejected(referrer, candidate string, err error) {
	h.logger.Debug("referral rejected", "referrer", referrer, "candidate", candidate, "err", err)
}

func (h logHooks) OnSimulationStart(p float64, days int, stochastic bool) {
	h.logger.Debug("simulation start", "p", p, "days", days, "stochastic", stochastic)
}

func (h logHooks) OnSimulationComplete(p float64, days int, total float64, duration time.Duration) {
	h.logger.Debug("simulation complete", "p", p, "days", days, "total", total, "duration", duration)
}

func (h logHooks) OnSearchProbe(kind string, value int, total float64) {
	h.logger.Debug("search probe", "kind", kind, "value", value, "total", total)
}

func (h logHooks) OnAnalyzeStart(input string) {
	h.logger.Debug("analysis start", "input", input)
}

func (h logHooks) OnAnalyzeComplete(input string, users int, duration time.Duration, err error) {
	h.logger.Debug("analysis complete", "input", input, "users", users, "duration", duration, "err", err)
}

// registerHooks binds the logger-backed hooks for the whole process.
func registerHooks(logger *log.Logger) {
	h := logHooks{logger: logger}
	observability.SetGraphHooks(h)
	observability.SetSimHooks(h)
	observability.SetReportHooks(h)
}
