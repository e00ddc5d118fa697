package model

import (
	"encoding/json"
	"strings"
)

// FlexID tolerates the historical id shapes in persisted data: new records
// carry UUID strings while old ones carry raw millisecond timestamps, as
// numbers or strings.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*id = ""
		return nil
	}
	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err == nil {
			*id = FlexID(v)
			return nil
		}
	}
	// Numeric legacy ids keep their raw token form.
	*id = FlexID(strings.Trim(s, `"`))
	return nil
}

func (id FlexID) String() string {
	return string(id)
}
