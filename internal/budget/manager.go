// Package budget provides budget monitoring for conference plans.
package budget

import (
	"github.com/Iron-Ham/confplan/internal/config"
	"github.com/Iron-Ham/confplan/internal/logging"
	"github.com/Iron-Ham/confplan/internal/planner"
)

// Status classifies a plan's grand total against the configured budget.
type Status string

const (
	StatusOK        Status = "ok"
	StatusWarning   Status = "warning"
	StatusOverLimit Status = "over_limit"
)

// TotalsProvider provides access to a plan's section totals.
// *planner.Store satisfies it.
type TotalsProvider interface {
	Totals() planner.Totals
}

// Callbacks defines callbacks for budget events. Each fires when the plan
// moves into the corresponding status, not on every check.
type Callbacks struct {
	// OnBudgetWarning is called when the grand total reaches the warning threshold.
	OnBudgetWarning func(total float64)
	// OnBudgetLimit is called when the grand total exceeds the limit.
	OnBudgetLimit func(total float64)
}

// Config holds budget configuration. Zero values disable the check.
type Config struct {
	Limit            float64
	WarningThreshold float64
}

// Report is a snapshot of spending against the budget.
type Report struct {
	Totals      planner.Totals
	GrandTotal  float64
	Limit       float64
	Remaining   float64
	UsedPercent float64
	Status      Status
}

// Manager monitors a plan's grand total against budget limits.
type Manager struct {
	config    Config
	provider  TotalsProvider
	callbacks Callbacks
	logger    *logging.Logger
	last      Status
}

// NewManager creates a new budget manager.
func NewManager(cfg Config, provider TotalsProvider, callbacks Callbacks, logger *logging.Logger) *Manager {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Manager{
		config:    cfg,
		provider:  provider,
		callbacks: callbacks,
		logger:    logger,
		last:      StatusOK,
	}
}

// NewManagerFromConfig creates a budget manager from application config.
func NewManagerFromConfig(appCfg *config.Config, provider TotalsProvider, callbacks Callbacks, logger *logging.Logger) *Manager {
	cfg := Config{}
	if appCfg != nil {
		cfg.Limit = appCfg.Budget.Limit
		cfg.WarningThreshold = appCfg.Budget.WarningThreshold
	}
	return NewManager(cfg, provider, callbacks, logger)
}

// UpdateConfig updates the budget configuration.
func (m *Manager) UpdateConfig(cfg Config) {
	m.config = cfg
}

// Enabled reports whether any budget check is configured.
func (m *Manager) Enabled() bool {
	return m.config.Limit > 0 || m.config.WarningThreshold > 0
}

// Report computes the current spending snapshot without firing callbacks.
func (m *Manager) Report() Report {
	var totals planner.Totals
	if m.provider != nil {
		totals = m.provider.Totals()
	}
	grand := totals.Sum()

	r := Report{
		Totals:     totals,
		GrandTotal: grand,
		Limit:      m.config.Limit,
		Status:     m.classify(grand),
	}
	if m.config.Limit > 0 {
		r.Remaining = m.config.Limit - grand
		r.UsedPercent = grand / m.config.Limit * 100
	}
	return r
}

func (m *Manager) classify(total float64) Status {
	switch {
	case m.config.Limit > 0 && total > m.config.Limit:
		return StatusOverLimit
	case m.config.WarningThreshold > 0 && total >= m.config.WarningThreshold:
		return StatusWarning
	default:
		return StatusOK
	}
}

// Check classifies the current grand total and fires the callback for the
// new status when it differs from the previous check.
func (m *Manager) Check() Status {
	report := m.Report()
	status := report.Status
	if status == m.last {
		return status
	}
	m.last = status

	switch status {
	case StatusOverLimit:
		m.logger.Warn("budget limit exceeded",
			"grand_total", report.GrandTotal,
			"limit", m.config.Limit,
		)
		if m.callbacks.OnBudgetLimit != nil {
			m.callbacks.OnBudgetLimit(report.GrandTotal)
		}
	case StatusWarning:
		m.logger.Warn("budget warning threshold reached",
			"grand_total", report.GrandTotal,
			"warning_threshold", m.config.WarningThreshold,
		)
		if m.callbacks.OnBudgetWarning != nil {
			m.callbacks.OnBudgetWarning(report.GrandTotal)
		}
	default:
		m.logger.Info("plan back within budget", "grand_total", report.GrandTotal)
	}
	return status
}
