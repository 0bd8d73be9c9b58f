package training

import "errors"

var (
	ErrUnknownPattern   = errors.New("unknown movement pattern")
	ErrUnknownBodyArea  = errors.New("unknown body area")
	ErrUnknownLevel     = errors.New("unknown experience level")
	ErrUnknownLocation  = errors.New("unknown training location")
	ErrInvalidRPE       = errors.New("rpe must be within [1, 10]")
	ErrInvalidSeverity  = errors.New("pain severity must be within [1, 10]")
	ErrInvalidFrequency = errors.New("frequency must be within [1, 7]")
	ErrMissingTestDate  = errors.New("tested capacity requires a test date")
	ErrSetAlreadyLogged = errors.New("set already logged")
)
