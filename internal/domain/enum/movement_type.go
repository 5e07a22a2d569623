package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// MovementType classifies a stock movement. Movements are append-only;
// corrections create inverse entries rather than edits.
type MovementType string

const (
	MovementTypeEntry       MovementType = "entry"
	MovementTypeWithdrawal  MovementType = "withdrawal"
	MovementTypeSale        MovementType = "sale"
	MovementTypeTransferOut MovementType = "transfer_out"
	MovementTypeTransferIn  MovementType = "transfer_in"
)

func (t MovementType) String() string {
	return string(t)
}

func (t MovementType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *MovementType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = MovementType(str)
	return nil
}

func (t MovementType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *MovementType) Scan(value interface{}) error {
	if value == nil {
		*t = MovementTypeEntry
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = MovementType(v)
	case []byte:
		*t = MovementType(string(v))
	}
	return nil
}
