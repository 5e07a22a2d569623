package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SessionStatus represents the lifecycle state of a cash session.
// CLOSED is terminal; there is no reopen path.
type SessionStatus string

const (
	SessionStatusOpen   SessionStatus = "OPEN"
	SessionStatusClosed SessionStatus = "CLOSED"
)

func (s SessionStatus) String() string {
	return string(s)
}

func (s SessionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *SessionStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = SessionStatus(str)
	return nil
}

func (s SessionStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *SessionStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SessionStatusClosed
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = SessionStatus(v)
	case []byte:
		*s = SessionStatus(string(v))
	}
	return nil
}
