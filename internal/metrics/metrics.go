package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	AchievementsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "achievements_submitted_total", Help: "Total achievement submissions"},
	)
	AchievementsVerified = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "achievements_verified_total", Help: "Total achievements verified"},
	)
	AchievementsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "achievements_rejected_total", Help: "Total achievements rejected"},
	)
	FilesStored = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "files_stored_total", Help: "Total uploaded files written to storage"},
	)
)

func Register() {
	prometheus.MustRegister(
		AchievementsSubmitted,
		AchievementsVerified,
		AchievementsRejected,
		FilesStored,
	)
}
