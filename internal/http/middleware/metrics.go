package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	GamesServed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "games_served_total",
			Help: "Total daily games handed out",
		},
	)
	GuessesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guesses_total",
			Help: "Total guesses evaluated, by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(GamesServed)
	prometheus.MustRegister(GuessesTotal)
}
