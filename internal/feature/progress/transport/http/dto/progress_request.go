package dto

import (
	"bytes"
	"fmt"
)

// UpdateProgressReq is the body of POST /users/:userId/progress/:moduleId.
type UpdateProgressReq struct {
	CurrentContentID uint  `json:"currentContentId" binding:"required"`
	IsCompleted      *Flag `json:"isCompleted"`
}

// Flag is a completion flag that accepts JSON true/false as well as 0/1.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(b []byte) error {
	switch string(bytes.TrimSpace(b)) {
	case "true", "1":
		*f = true
	case "false", "0":
		*f = false
	default:
		return fmt.Errorf("isCompleted must be a boolean or 0/1, got %s", b)
	}
	return nil
}

// Bool returns nil when the flag was omitted.
func (r UpdateProgressReq) Bool() *bool {
	if r.IsCompleted == nil {
		return nil
	}
	b := bool(*r.IsCompleted)
	return &b
}
