package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body. Error responses carry ErrorCode
// and optionally Details; success responses carry Data.
type Resp struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	ErrorCode string   `json:"errorCode,omitempty"`
	Details   []string `json:"details,omitempty"`
	Data      any      `json:"data,omitempty"`
	Timestamp string   `json:"timestamp"`
}

// Date is a calendar date that marshals as DateFormat. It is not shifted
// into the local zone: a date has no time of day to shift.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

// DateTime is a datetime that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}
