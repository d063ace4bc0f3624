package model

import (
	"strconv"

	pkgopenapi "github.com/Kalai-nithi-guhan/next-deploy/pkg/openapi"
)

// constraints turns schema bounds into min, max and step rules, in that
// order.
func constraints(schema pkgopenapi.Schema) []ValidationRule {
	var rules []ValidationRule
	add := func(kind string, value *float64, exclusive bool) {
		if value == nil {
			return
		}
		params := map[string]string{"value": formatFloat(*value)}
		if exclusive {
			params["exclusive"] = "true"
		}
		rules = append(rules, ValidationRule{Kind: kind, Params: params})
	}
	add(ValidationRuleMin, schema.Minimum, schema.ExclusiveMinimum)
	add(ValidationRuleMax, schema.Maximum, schema.ExclusiveMaximum)
	add(ValidationRuleStep, schema.MultipleOf, false)
	return rules
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
