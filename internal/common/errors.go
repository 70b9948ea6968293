package common

import "errors"

// ErrCorruptedValue is returned when a stored value cannot be decoded or
// decrypted.
var ErrCorruptedValue = errors.New("stored value cannot be decoded")
