package payment

import "errors"

var ErrGateway = errors.New("payment gateway error")
