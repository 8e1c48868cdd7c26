package helpers

import "expvar"

// Process-wide counters exported on /api/debug/vars.
var (
	DashboardReports  = expvar.NewInt("dashboard_reports_total")
	DashboardFailures = expvar.NewInt("dashboard_failures_total")
	OrdersPlaced      = expvar.NewInt("orders_placed_total")
	PaymentFailures   = expvar.NewInt("payment_failures_total")
	EmailsEnqueued    = expvar.NewInt("emails_enqueued_total")
)
