package httperr

import "errors"

// BusinessError is a rule violation reported to the client by code. The
// message is optional and replaces the generic one when set.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func Business(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

// AsBusiness finds a BusinessError anywhere in err's chain.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

func IsBusiness(err error, code string) bool {
	be, ok := AsBusiness(err)
	return ok && be.Code == code
}
