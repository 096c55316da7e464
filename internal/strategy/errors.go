package strategy

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters is wrapped by every construction error.
var ErrInvalidParameters = errors.New("invalid model parameters")

// Rules checked at construction.
const (
	RuleFinite             = "finite"
	RulePositiveUtility    = "u>0"
	RulePositiveComplement = "small_delta>0"
	RuleA1b                = "A1b"
	RuleA2                 = "A2"
	RuleBeta               = "beta"
	RuleAcquisitionDelta   = "acquisition:delta<u"
	RuleAcquisitionCost    = "acquisition:F(ACQ)c<=F(YY)c"
	RuleTwoSided           = "two-sided:small_delta<u"
	RuleFeatures           = "features"
)

// ConfigError reports a violated precondition on the parameters.
type ConfigError struct {
	Rule   string
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s violated: %s", ErrInvalidParameters, e.Rule, e.Detail)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidParameters }

func violation(rule, format string, args ...any) error {
	return &ConfigError{Rule: rule, Detail: fmt.Sprintf(format, args...)}
}
