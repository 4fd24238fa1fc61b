// Package metrics exposes Prometheus counters for engine outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProjectsCreated counts successfully created projects.
	ProjectsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "grapevine",
			Name:      "projects_created_total",
			Help:      "Total number of projects created",
		},
	)

	// InterestsExpressed counts interest requests recorded.
	InterestsExpressed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "grapevine",
			Name:      "interests_expressed_total",
			Help:      "Total number of interest requests recorded",
		},
	)

	// CollaboratorsAccepted counts interests promoted to collaborators.
	CollaboratorsAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "grapevine",
			Name:      "collaborators_accepted_total",
			Help:      "Total number of interests accepted into collaborations",
		},
	)

	// InterestsDeclined counts interests removed by decline.
	InterestsDeclined = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "grapevine",
			Name:      "interests_declined_total",
			Help:      "Total number of interests declined",
		},
	)
)
