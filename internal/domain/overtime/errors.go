package overtime

import "errors"

var ErrOvertimeRequestNotFound = errors.New("overtime request not found")
