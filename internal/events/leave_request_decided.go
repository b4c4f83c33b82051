package events

import "time"

const LeaveRequestDecidedTopic = "hr.leave.request.decided.v1"

const (
	EventLeaveRequestApproved = "leave_request_approved"
	EventLeaveRequestRejected = "leave_request_rejected"
)

// LeaveRequestDecidedEvent is emitted once per request, when it leaves PENDING.
type LeaveRequestDecidedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveRequestID string    `json:"leave_request_id"`
	EmployeeID     string    `json:"employee_id"`
	LeaveTypeID    string    `json:"leave_type_id"`
	Status         string    `json:"status"`
	TotalDays      int       `json:"total_days"`
	DecidedBy      string    `json:"decided_by"`
	BalanceDebited bool      `json:"balance_debited"`
	OccurredAt     time.Time `json:"occurred_at"`
}
