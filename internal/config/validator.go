package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FruitReels_Go/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and the cross-field rules the tags cannot express
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	if c.TotalSymbolCount%c.ReelCount != 0 {
		return fmt.Errorf("%w: TOTAL_SYMBOL_COUNT %d is not divisible by REEL_COUNT %d",
			domain.ErrInvalidConfig, c.TotalSymbolCount, c.ReelCount)
	}
	return nil
}

// Warnings returns non-fatal issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.IsProduction() {
		for _, o := range c.CORSAllowedOrigins {
			if o == "*" {
				warnings = append(warnings, WarnWildcardCORS)
				break
			}
		}
		if c.LogDir == "" {
			warnings = append(warnings, WarnNoLogDir)
		}
	}

	if c.TimingUnit < 100*time.Millisecond {
		warnings = append(warnings, WarnFastTimingUnit)
	}

	return warnings
}
