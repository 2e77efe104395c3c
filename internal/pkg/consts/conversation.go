package consts

// Conversation stages. The stored decision, not the stage label, is the
// authoritative input to transitions; the label is advisory metadata.
const (
	StageWelcome          = "WELCOME"
	StageGatheringDetails = "GATHERING_DETAILS"
	StageDecisionMade     = "DECISION_MADE"
	StageSanctioned       = "SANCTIONED"
)

// Chat history roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// AcceptanceKeywords is the fixed vocabulary that counts as an affirmative
// acknowledgment of an offer. Matched as substrings of the lowercased message.
var AcceptanceKeywords = []string{"yes", "ok", "sure", "accept", "proceed", "generate"}

// Extraction trigger tokens besides "any digit".
const (
	CurrencySymbol = "₹"
	LakhToken      = "lakh"
	MonthToken     = "month"
)

// LakhUnit is the multiplier applied when the user writes a bare small
// number together with the word "lakh" ("5 lakh" -> 500000).
const LakhUnit = 100000.0

// SensitiveKeys lists request header names masked in access logs.
var SensitiveKeys = []string{"Authorization", "X-Api-Key", "Cookie"}
