package gclipboard

import "errors"

var ErrUnsupported = errors.New("clipboard is not available")
