package audit

import "errors"

var ErrInvalidEvent = errors.New("invalid order status event")
