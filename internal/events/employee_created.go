package events

import "time"

const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

const EventEmployeeCreated = "employee_created"

type EmployeeCreatedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	EmployeeID    string    `json:"employee_id"`
	DateOfJoining string    `json:"date_of_joining"`
	OccurredAt    time.Time `json:"occurred_at"`
}
