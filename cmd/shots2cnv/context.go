package main

import (
	"io"
	"strings"

	"github.com/couchcryptid/obs-shots2cnv/internal/config"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	stdout io.Writer
	stderr io.Writer
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string, stdout, stderr io.Writer) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
		stdout:        stdout,
		stderr:        stderr,
	}
}

// loadConfig reads the layered configuration and applies the global logging flags.
func (c *commandContext) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(derefTrim(c.configFlag))
	if err != nil {
		return nil, err
	}
	if v := derefTrim(c.logLevelFlag); v != "" {
		cfg.LogLevel = v
	}
	if v := derefTrim(c.logFormatFlag); v != "" {
		cfg.LogFormat = v
	}
	return cfg, nil
}

func derefTrim(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
