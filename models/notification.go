package models

// PushMessage is one entry of a batch delivery request to the push gateway.
type PushMessage struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Sound string            `json:"sound"`
	Data  map[string]string `json:"data,omitempty"`
}

// PushTicket is the gateway's per-message result. Status is "ok" or "error".
type PushTicket struct {
	Status  string `json:"status"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// ReminderFirePayload is the payload of a scheduled reminder-fire task.
type ReminderFirePayload struct {
	ReminderID string `json:"reminderId"`
	Title      string `json:"title"`
	Message    string `json:"message"`
}

// TokenHealthVerdict summarizes whether a push broadcast can reach anyone.
type TokenHealthVerdict string

const (
	VerdictCannotSend         TokenHealthVerdict = "cannot_send"
	VerdictCanSendWithWarning TokenHealthVerdict = "can_send_with_warning"
	VerdictCanSend            TokenHealthVerdict = "can_send"
)

// TokenHealthReport counts users by push-token validity class.
type TokenHealthReport struct {
	TotalUsers  int                `json:"totalUsers"`
	Valid       int                `json:"valid"`
	Development int                `json:"development"`
	Invalid     int                `json:"invalid"`
	Verdict     TokenHealthVerdict `json:"verdict"`
}
