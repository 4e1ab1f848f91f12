package model

import (
	"errors"
	"fmt"
)

type Config bool

const (
	On  Config = true
	Off Config = false
)

var UnknownConfigErr = errors.New("unknown config value")

var configName = map[string]Config{
	"ON":   On,
	"On":   On,
	"on":   On,
	"1":    On,
	"true": On,

	"OFF":   Off,
	"Off":   Off,
	"off":   Off,
	"0":     Off,
	"false": Off,
}

// NewConfig reads an ON/OFF switch; anything unknown is Off.
func NewConfig(s string) Config {
	return configName[s]
}

func ParseConfig(s string) (Config, error) {
	c, ok := configName[s]
	if !ok {
		return Off, fmt.Errorf("%w: %q", UnknownConfigErr, s)
	}
	return c, nil
}

func (c Config) String() string {
	if c {
		return "ON"
	}
	return "OFF"
}
