package serfmt

import "errors"

// ErrUnexpectedToken is returned when the input deviates from the
// grammar serfmt recognizes.
var ErrUnexpectedToken = errors.New("serfmt: unexpected token")

// ErrUnterminatedInput is returned when a block or statement is missing
// its closing token at end of input.
var ErrUnterminatedInput = errors.New("serfmt: unterminated input")
