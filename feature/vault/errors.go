package vault

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters is returned when the bucket identifier is empty or blank.
var ErrInvalidParameters = errors.New("bucket identifier must not be empty")

// SettingMissingError is returned when a required credential setting is absent
// while IAM profile authentication is disabled.
type SettingMissingError struct {
	// Field is the name of the missing setting.
	Field string
}

func (e *SettingMissingError) Error() string {
	return fmt.Sprintf("required setting %q is missing", e.Field)
}
