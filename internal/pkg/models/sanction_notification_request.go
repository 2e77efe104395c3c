package models

// SanctionNotificationParameter is a single template parameter for the
// downstream notification renderer.
type SanctionNotificationParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SanctionNotificationRequest is the payload published to the notification
// topic after a sanction letter is issued.
type SanctionNotificationRequest struct {
	UserId          string                          `json:"userId"`
	Email           string                          `json:"email"`
	EventName       string                          `json:"eventName"`
	NotifParameters []SanctionNotificationParameter `json:"notifParameters"`
}
