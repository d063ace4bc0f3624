package analyzer

// FieldName identifies one input of the analyzer form.
type FieldName string

const (
	FieldTemperature FieldName = "temperature"
	FieldHumidity    FieldName = "humidity"
	FieldMoisture    FieldName = "moisture"
	FieldSoilType    FieldName = "soilType"
	FieldNitrogen    FieldName = "nitrogen"
	FieldPhosphorus  FieldName = "phosphorus"
	FieldPotassium   FieldName = "potassium"
)

var fieldNames = []FieldName{
	FieldTemperature,
	FieldHumidity,
	FieldMoisture,
	FieldSoilType,
	FieldNitrogen,
	FieldPhosphorus,
	FieldPotassium,
}

// FieldNames returns the analyzer fields in form order.
func FieldNames() []FieldName {
	return append([]FieldName(nil), fieldNames...)
}

// IsField reports whether name is one of the analyzer fields.
func IsField(name string) bool {
	for _, field := range fieldNames {
		if string(field) == name {
			return true
		}
	}
	return false
}

// SoilType enumerates the accepted soil categories.
type SoilType string

const (
	SoilLoamy SoilType = "loamy"
	SoilClay  SoilType = "clay"
	SoilSandy SoilType = "sandy"
)

// SoilTypes returns the soil categories in the order they are offered.
func SoilTypes() []SoilType {
	return []SoilType{SoilLoamy, SoilClay, SoilSandy}
}
