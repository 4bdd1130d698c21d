// Package metrics defines all custom Prometheus metrics for the
// marketplace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at init time via promauto;
// the router exposes them under /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "unverified", "pending_approval", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations.
// Label:
//   - user_type: the registered account type (e.g. "end_customer", "seller")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by account type.",
	},
	[]string{"user_type"},
)

// PartnerVerificationsTotal counts admin decisions on pending partners.
// Label:
//   - decision: "approved" or "rejected"
var PartnerVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "partner_verifications_total",
		Help:      "Total number of partner approval decisions, by outcome.",
	},
	[]string{"decision"},
)

// ── Settings metrics ──────────────────────────────────────────────────────────

// SettingsReadsTotal counts admin settings reads.
// Labels:
//   - category: settings category id (e.g. "marketing", "system")
//   - result: "ok" or "error"
var SettingsReadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settings_reads_total",
		Help:      "Total number of settings reads, by category and result.",
	},
	[]string{"category", "result"},
)

// SettingsSavesTotal counts admin settings saves.
// Labels:
//   - category: settings category id
//   - result: "ok", "invalid" or "error"
var SettingsSavesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settings_saves_total",
		Help:      "Total number of settings saves, by category and result.",
	},
	[]string{"category", "result"},
)

// SettingsSaveDuration measures how long a settings save takes end-to-end,
// validation through persistence.
var SettingsSaveDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "settings_save_duration_seconds",
		Help:      "Duration of settings saves from decode to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"category"},
)
