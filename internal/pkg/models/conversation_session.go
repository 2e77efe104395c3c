package models

import "time"

type ChatHistoryEntry struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationSession is the per-session state carried between turns.
// LastDecision is nil until an underwriting evaluation has run; the state
// machine treats its presence, not CurrentStage, as authoritative.
type ConversationSession struct {
	SessionId    string                `json:"session_id"`
	UserId       string                `json:"user_id"`
	CurrentStage string                `json:"current_stage"`
	LastDecision *UnderwritingDecision `json:"last_decision,omitempty"`
	LoanId       string                `json:"loan_id,omitempty"`
	ChatHistory  []ChatHistoryEntry    `json:"chat_history"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// HasSanctionableDecision reports whether the session holds a decision that
// permits application creation.
func (s *ConversationSession) HasSanctionableDecision() bool {
	if s == nil || s.LastDecision == nil {
		return false
	}
	return s.LastDecision.Decision == "APPROVED" || s.LastDecision.Decision == "ADJUST"
}
