package model

import internalmodel "github.com/Kalai-nithi-guhan/next-deploy/internal/model"

type (
	FieldType      = internalmodel.FieldType
	ValidationRule = internalmodel.ValidationRule
	Field          = internalmodel.Field
	FormModel      = internalmodel.FormModel
)

const (
	FieldTypeString  = internalmodel.FieldTypeString
	FieldTypeInteger = internalmodel.FieldTypeInteger
	FieldTypeNumber  = internalmodel.FieldTypeNumber
	FieldTypeBoolean = internalmodel.FieldTypeBoolean
)

const (
	ValidationRuleMin  = internalmodel.ValidationRuleMin
	ValidationRuleMax  = internalmodel.ValidationRuleMax
	ValidationRuleStep = internalmodel.ValidationRuleStep
)
