package tui

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/model"
)

// floatPattern is the HTML "valid floating-point number" grammar. A browser
// refuses anything else, such as a leading plus or padding spaces.
var floatPattern = regexp.MustCompile(`^-?(?:\d+(?:\.\d+)?|\.\d+)(?:[eE][-+]?\d+)?$`)

// numberRules mirrors the checks a browser applies to <input type="number">
// before it lets a form submit.
type numberRules struct {
	required     bool
	integer      bool
	min, max     *float64
	minExclusive bool
	maxExclusive bool
	step         *float64
}

func numberRulesFor(field model.Field) numberRules {
	rules := numberRules{
		required: field.Required,
		integer:  field.Type == model.FieldTypeInteger,
	}
	for _, rule := range field.Validations {
		value, err := strconv.ParseFloat(rule.Params["value"], 64)
		if err != nil {
			continue
		}
		exclusive := rule.Params["exclusive"] == "true"
		switch rule.Kind {
		case model.ValidationRuleMin:
			rules.min, rules.minExclusive = &value, exclusive
		case model.ValidationRuleMax:
			rules.max, rules.maxExclusive = &value, exclusive
		case model.ValidationRuleStep:
			if value > 0 {
				rules.step = &value
			}
		}
	}
	return rules
}

func (r numberRules) validate(raw string) error {
	if strings.TrimSpace(raw) == "" {
		if r.required {
			return errors.New("a value is required")
		}
		return nil
	}
	if !floatPattern.MatchString(raw) {
		return errors.New("enter a number")
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.New("enter a number")
	}
	if r.integer && value != math.Trunc(value) {
		return errors.New("enter a whole number")
	}
	if r.min != nil {
		if value < *r.min || (r.minExclusive && value == *r.min) {
			return fmt.Errorf("must be at least %s", formatNumber(*r.min))
		}
	}
	if r.max != nil {
		if value > *r.max || (r.maxExclusive && value == *r.max) {
			return fmt.Errorf("must be at most %s", formatNumber(*r.max))
		}
	}
	if r.step != nil {
		base := 0.0
		if r.min != nil {
			base = *r.min
		}
		steps := (value - base) / *r.step
		if math.Abs(steps-math.Round(steps)) > 1e-9*math.Max(1, math.Abs(steps)) {
			return fmt.Errorf("must be a multiple of %s", formatNumber(*r.step))
		}
	}
	return nil
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
