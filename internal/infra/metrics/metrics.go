package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CollectionLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smeta_collection_loads_total",
		Help: "Чтения коллекций из хранилища.",
	}, []string{"collection"})

	CollectionSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smeta_collection_saves_total",
		Help: "Полные перезаписи коллекций в хранилище.",
	}, []string{"collection"})
)
