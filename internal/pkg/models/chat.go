package models

type ChatRequest struct {
	UserId    string `json:"user_id" binding:"required"`
	SessionId string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Reply     string `json:"reply"`
	SessionId string `json:"session_id"`
	Decision  string `json:"decision,omitempty"`
	LoanId    string `json:"loan_id,omitempty"`
	ErrorText string `json:"errorText,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
}

// ChatResult is what the conversation state machine hands back for one turn.
type ChatResult struct {
	Reply    string
	Decision string
	LoanId   string
}
