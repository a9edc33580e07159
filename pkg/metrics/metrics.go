package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatMessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_messages_processed_total",
			Help: "Total number of chat messages processed, by resolved intent",
		},
		[]string{"intent", "success"},
	)

	ChatClassifierFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatbot_classifier_fallbacks_total",
			Help: "Total number of messages classified by the heuristic fallback",
		},
	)

	ChatProcessingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "chatbot_message_duration_seconds",
			Help: "Duration of chat message processing in seconds",
		},
		[]string{"intent"},
	)

	SpeechTranscriptions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speech_transcriptions_total",
			Help: "Total number of speech-to-text requests, by outcome",
		},
		[]string{"outcome"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "path", "status"},
	)
)
