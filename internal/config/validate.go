package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration and reports every problem found
func Validate(cfg *Config) error {
	var errs []error

	if _, err := PrintMethod(cfg.ReportTo); err != nil {
		errs = append(errs, err)
	}
	if cfg.MainFile == "" {
		errs = append(errs, errors.New("main_file must not be empty"))
	}
	if cfg.HeaderFile == "" {
		errs = append(errs, errors.New("header_file must not be empty"))
	}
	if cfg.MainFile != "" && cfg.MainFile == cfg.HeaderFile {
		errs = append(errs, fmt.Errorf("main_file and header_file must differ (both %q)", cfg.MainFile))
	}
	if strings.ContainsAny(cfg.MainFile+cfg.HeaderFile, `/\`) {
		errs = append(errs, errors.New("output files must be plain file names"))
	}
	if !strings.HasPrefix(cfg.Extension, ".") || len(cfg.Extension) < 2 {
		errs = append(errs, fmt.Errorf("extension must start with a dot: %q", cfg.Extension))
	}

	return errors.Join(errs...)
}
