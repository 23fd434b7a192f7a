package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// devJWTSecret is substituted outside production so the tool works out of
// the box; production refuses to start without an explicit secret.
const devJWTSecret = "caltrack-dev-secret"

// ValidateConfig checks that the loaded configuration is usable for the
// current environment and fills environment-appropriate fallbacks.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if strings.TrimSpace(cfg.DBHost) == "" {
		errs = append(errs, ValidationError{Field: "DB_HOST", Message: "must not be empty"}.Error())
	}
	if strings.TrimSpace(cfg.DBName) == "" {
		errs = append(errs, ValidationError{Field: "DB_NAME", Message: "must not be empty"}.Error())
	}
	if strings.TrimSpace(cfg.DBUser) == "" {
		errs = append(errs, ValidationError{Field: "DB_USER", Message: "must not be empty"}.Error())
	}

	if cfg.JWTSecret == "" {
		if IsProduction() {
			errs = append(errs, ValidationError{Field: "JWT_SECRET", Message: "required in production"}.Error())
		} else {
			cfg.JWTSecret = devJWTSecret
		}
	}

	if IsProduction() && cfg.DBPassword == "" {
		errs = append(errs, ValidationError{Field: "DB_PASSWORD", Message: "required in production"}.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
