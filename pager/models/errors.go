package models

import "errors"

var (
	ErrConfiguration       = errors.New("invalid configuration")
	ErrFrameTableCorrupted = errors.New("frame table corrupted")
)
