package consts

// Decision outcomes.
const (
	DecisionApproved = "APPROVED"
	DecisionAdjust   = "ADJUST"
	DecisionRejected = "REJECTED"
)

// Risk bands, A best to C worst.
const (
	RiskBandA = "A"
	RiskBandB = "B"
	RiskBandC = "C"
)

// ProcessingFeeRate is charged on the approved amount.
const ProcessingFeeRate = 0.02

// Kafka event types for the decision audit topic.
const (
	EventUnderwritingDecision = "UNDERWRITING_DECISION"
	EventSanctionIssued       = "SANCTION_ISSUED"
)
