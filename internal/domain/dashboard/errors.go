package dashboard

import "errors"

var ErrForbiddenTarget = errors.New("employees may only view their own dashboard")
