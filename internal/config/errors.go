package config

import (
	"errors"
)

var (
	ErrConfigInvalid    = errors.New("configuration is invalid")
	ErrConfigLoadFailed = errors.New("failed to load configuration")
	ErrConfigExists     = errors.New("configuration file already exists")
)
