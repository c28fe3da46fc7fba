package memory

import (
	"errors"

	"github.com/ezrec/jc62/translate"
)

var f = translate.From

var (
	ErrAddressInvalid = errors.New(f("address invalid"))
)

// ErrAddress is an address outside of 00-FF.
type ErrAddress string

func (ea ErrAddress) Error() string {
	return f("address '%v' invalid", string(ea))
}

func (ea ErrAddress) Is(err error) bool {
	return err == ErrAddressInvalid
}
