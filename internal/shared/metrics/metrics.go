package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tgtypes_messages_classified_total",
			Help: "Messages decoded, by message kind and media kind",
		},
		[]string{"kind", "media"},
	)

	MessagesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tgtypes_messages_rejected_total",
			Help: "Messages that failed to decode or were dropped",
		},
		[]string{"reason"},
	)

	FeedsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tgtypes_feeds_served_total",
			Help: "RSS feeds rendered, by chat",
		},
		[]string{"chat_id"},
	)

	MessagesPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tgtypes_messages_pruned_total",
			Help: "Stored messages removed by retention",
		},
	)
)
