package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AppointmentStatus represents the status of an in-store viewing appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "SCHEDULED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

// IsValid checks if the appointment status is one of the known states
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from s to next is allowed.
// SCHEDULED is the only non-terminal state.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s != AppointmentStatusScheduled {
		return false
	}
	return next == AppointmentStatusCompleted || next == AppointmentStatusCancelled
}

func (s AppointmentStatus) String() string {
	return string(s)
}

func (s AppointmentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *AppointmentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = AppointmentStatus(str)
	return nil
}

func (s AppointmentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *AppointmentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = AppointmentStatusScheduled
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = AppointmentStatus(v)
	case []byte:
		*s = AppointmentStatus(string(v))
	}
	return nil
}
