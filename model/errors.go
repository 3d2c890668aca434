package model

import "github.com/pkg/errors"

// Sentinel errors returned (wrapped) by the model package. Match them with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndex           = errors.New("index out of range")
	ErrParse           = errors.New("parse error")
)
