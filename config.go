package sctutorial

import (
	"os"
	"time"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Config optional file based settings for the tutorial. flags take precedence.
type Config struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Namespace       string        `yaml:"namespace"`
	Set             string        `yaml:"set"`
	Timeout         time.Duration `yaml:"timeout"`
	ContainerPrefix string        `yaml:"container_prefix"`
}

// NewConfig a configuration seeded with the defaults.
func NewConfig() Config {
	return Config{
		Host:            DefaultHost,
		Port:            DefaultPort,
		Namespace:       DefaultNamespace,
		Set:             DefaultSet,
		Timeout:         DefaultConnectTimeout,
		ContainerPrefix: DefaultContainerPrefix,
	}
}

// ExpandAndDecodeFile missing files are ignored, the destination is left untouched.
func ExpandAndDecodeFile(path string, dst interface{}) (err error) {
	var (
		raw []byte
	)

	if _, err = os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if raw, err = os.ReadFile(path); err != nil {
		return errors.WithStack(err)
	}

	return ExpandAndDecode(raw, dst)
}

// ExpandAndDecode expands environment variables within the raw configuration
// and then decodes it as yaml.
func ExpandAndDecode(raw []byte, dst interface{}) (err error) {
	return ExpandEnvironAndDecode(raw, dst, os.Getenv)
}

// ExpandEnvironAndDecode ...
func ExpandEnvironAndDecode(raw []byte, dst interface{}, mapping func(string) string) (err error) {
	return errors.Wrap(yaml.Unmarshal([]byte(os.Expand(string(raw), mapping)), dst), "failed to decode configuration")
}
