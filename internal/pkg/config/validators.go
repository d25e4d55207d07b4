// internal/pkg/config/validators.go
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ProductionValidator adds the checks a deployed till server must pass.
// All failures are reported together.
type ProductionValidator struct{}

// Validate returns every production problem found in cfg
func (v *ProductionValidator) Validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Password == "" || strings.HasPrefix(cfg.Database.Password, "MISSING_") {
		errs = append(errs, fmt.Errorf("%w: database password", ErrMissingRequiredConfig))
	}
	if cfg.Database.SSLMode == "disable" {
		errs = append(errs, errors.New("database SSL must be enabled in production"))
	}
	if !cfg.Security.SecureHeaders {
		errs = append(errs, errors.New("secure headers must be enabled in production"))
	}

	if len(cfg.Security.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("allowed origins must be configured in production"))
	}
	for _, origin := range cfg.Security.AllowedOrigins {
		if origin == "*" {
			errs = append(errs, errors.New("wildcard origin (*) not allowed in production"))
			break
		}
	}

	// Exports and delivery notes must outlive the container
	if cfg.Storage.Backend != "s3" {
		errs = append(errs, fmt.Errorf("storage backend %q not allowed in production", cfg.Storage.Backend))
	} else if cfg.AWS.S3Bucket == "" {
		errs = append(errs, fmt.Errorf("%w: s3 bucket", ErrMissingRequiredConfig))
	}

	return errors.Join(errs...)
}

// validatePOS checks the business settings that every environment needs
func validatePOS(c *Config) error {
	var errs []error

	if c.Database.MaxConnections < c.Database.MinConnections {
		errs = append(errs, errors.New("max connections must be >= min connections"))
	}
	if c.Security.RateLimitRequests <= 0 {
		errs = append(errs, errors.New("rate limit requests must be positive"))
	}
	if c.POS.OrderTimeout <= 0 {
		errs = append(errs, errors.New("order timeout must be positive"))
	}
	if c.POS.RestockThreshold < 0 {
		errs = append(errs, errors.New("restock threshold must not be negative"))
	}
	if c.POS.ExcessRatio <= 0 || c.POS.ExcessRatio >= 1 {
		errs = append(errs, fmt.Errorf("excess ratio %.2f must be between 0 and 1", c.POS.ExcessRatio))
	}
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			errs = append(errs, fmt.Errorf("%w: kafka brokers", ErrMissingRequiredConfig))
		}
		if c.Kafka.Topic == "" {
			errs = append(errs, fmt.Errorf("%w: kafka topic", ErrMissingRequiredConfig))
		}
	}

	switch c.Storage.Backend {
	case "s3", "local":
	default:
		errs = append(errs, fmt.Errorf("unknown storage backend %q", c.Storage.Backend))
	}

	return errors.Join(errs...)
}

// validateRequiredFields walks cfg and names every field tagged
// required:"true" that is still unset
func validateRequiredFields(cfg interface{}) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	var missing []string
	collectMissing(v, "", &missing)
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingRequiredConfig, strings.Join(missing, ", "))
}

func collectMissing(v reflect.Value, prefix string, missing *[]string) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field, meta := v.Field(i), t.Field(i)
		if !meta.IsExported() {
			continue
		}

		name := meta.Name
		if prefix != "" {
			name = prefix + "." + name
		}

		if meta.Tag.Get("required") == "true" && unset(field) {
			*missing = append(*missing, name)
		}
		if field.Kind() == reflect.Struct {
			collectMissing(field, name, missing)
		}
	}
}

// unset treats MISSING_ placeholders from .env templates as empty
func unset(v reflect.Value) bool {
	if v.Kind() == reflect.String {
		return v.String() == "" || strings.HasPrefix(v.String(), "MISSING_")
	}
	return v.IsZero()
}
