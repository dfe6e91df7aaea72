package metrics

// Summary generation outcomes.
const (
	// SummaryOutcomeAI marks a summary produced by the external AI backend.
	SummaryOutcomeAI = "ai"

	// SummaryOutcomeExtractive marks a summary produced by the deterministic
	// extractor because no AI backend is configured.
	SummaryOutcomeExtractive = "extractive"

	// SummaryOutcomeFallback marks a summary produced by the extractor after
	// a configured AI backend failed.
	SummaryOutcomeFallback = "fallback"
)

// RecordInteraction records a newly stored interaction of the given kind.
// Call only for first-time records, not duplicate submissions.
func RecordInteraction(kind string) {
	InteractionsRecordedTotal.WithLabelValues(kind).Inc()
}

// RecordSummary records a generated article summary by outcome.
func RecordSummary(outcome string) {
	SummariesGeneratedTotal.WithLabelValues(outcome).Inc()
}

// RecordUserRegistered records one successful account registration.
func RecordUserRegistered() {
	UsersRegisteredTotal.Inc()
}
