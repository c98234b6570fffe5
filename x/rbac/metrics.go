package rbac

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rolegate_rbac_checks_total",
		Help: "Permission checks by result",
	}, []string{"result"})

	reloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rolegate_rbac_reloads_total",
		Help: "Policy reloads by result",
	}, []string{"result"})

	factsGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rolegate_rbac_facts",
		Help: "Number of loaded facts by kind",
	}, []string{"kind"})
)
