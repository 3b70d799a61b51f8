// Public domain.

package icprog

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

// config is the optional YAML configuration for the instcat command.
// All keys are optional.
type config struct {
	Radius      float64 `yaml:"radius"`      // default cone radius, degrees
	OnMalformed string  `yaml:"onmalformed"` // "error" (default) or "skip"
	Verbose     bool    `yaml:"verbose"`
}

func readConfig(path string) (*config, error) {
	c := &config{Radius: defaultRadius, OnMalformed: "error"}
	if path == "" {
		return c, nil
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config %s: %v", path, err)
	}
	switch c.OnMalformed {
	case "":
		c.OnMalformed = "error"
	case "error", "skip":
	default:
		return nil, fmt.Errorf(
			"config %s: onmalformed must be error or skip", path)
	}
	if c.Radius < 0 {
		return nil, fmt.Errorf("config %s: radius must be non-negative", path)
	}
	return c, nil
}
