package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameStoreOperations        = "store_operations_total"
	NameStoreOperationDuration = "store_operation_duration_seconds"
	LabelOperation             = "operation"
	LabelResult                = "result"
)

const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var StoreOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameStoreOperations,
		Help:      "Total task store operations",
		Namespace: Namespace,
	},
	[]string{LabelOperation, LabelResult},
)

var StoreOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:      NameStoreOperationDuration,
		Help:      "Task store operations duration",
		Namespace: Namespace,
		Buckets:   prometheus.DefBuckets,
	},
	[]string{LabelOperation},
)
