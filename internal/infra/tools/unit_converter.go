package tools

import (
	"context"
	"fmt"
	"strings"

	"toolbox/internal/domain"
)

type unitDimension string

const (
	dimensionLength      unitDimension = "length"
	dimensionMass        unitDimension = "mass"
	dimensionData        unitDimension = "data"
	dimensionArea        unitDimension = "area"
	dimensionTemperature unitDimension = "temperature"
)

type unitDef struct {
	dimension unitDimension
	factor    float64
}

// Factors convert to the base unit of each dimension: metre, kilogram,
// byte and square metre.
var units = map[string]unitDef{
	"mm":  {dimensionLength, 0.001},
	"cm":  {dimensionLength, 0.01},
	"m":   {dimensionLength, 1},
	"km":  {dimensionLength, 1000},
	"in":  {dimensionLength, 0.0254},
	"ft":  {dimensionLength, 0.3048},
	"yd":  {dimensionLength, 0.9144},
	"mi":  {dimensionLength, 1609.344},
	"mg":  {dimensionMass, 0.000001},
	"g":   {dimensionMass, 0.001},
	"kg":  {dimensionMass, 1},
	"t":   {dimensionMass, 1000},
	"oz":  {dimensionMass, 0.028349523125},
	"lb":  {dimensionMass, 0.45359237},
	"b":   {dimensionData, 1},
	"kb":  {dimensionData, 1024},
	"mb":  {dimensionData, 1 << 20},
	"gb":  {dimensionData, 1 << 30},
	"tb":  {dimensionData, 1 << 40},
	"m2":  {dimensionArea, 1},
	"km2": {dimensionArea, 1e6},
	"ha":  {dimensionArea, 1e4},
	"c":   {dimensionTemperature, 0},
	"f":   {dimensionTemperature, 0},
	"k":   {dimensionTemperature, 0},
}

var unitAliases = map[string]string{
	"°c":         "c",
	"celsius":    "c",
	"°f":         "f",
	"fahrenheit": "f",
	"kelvin":     "k",
	"tan":        "t",
	"ton":        "t",
	"byte":       "b",
	"bytes":      "b",
	"hectare":    "ha",
}

// UnitConverter converts values between units of the same dimension.
//
// Args: value from to, e.g. "10 km mi".
type UnitConverter struct{}

func NewUnitConverter(domain.ToolDeps) domain.Tool {
	return UnitConverter{}
}

func (UnitConverter) Run(_ context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.unit-converter"
	if len(req.Args) < 3 {
		return domain.ToolResult{}, domain.InvalidInput(op, "usage: <value> <from> <to>")
	}
	value, err := parseNumber(op, "value", req.Args[0])
	if err != nil {
		return domain.ToolResult{}, err
	}
	fromName, from, err := lookupUnit(op, req.Args[1])
	if err != nil {
		return domain.ToolResult{}, err
	}
	toName, to, err := lookupUnit(op, req.Args[2])
	if err != nil {
		return domain.ToolResult{}, err
	}
	if from.dimension != to.dimension {
		return domain.ToolResult{}, domain.InvalidInput(op, "cannot convert %s to %s", from.dimension, to.dimension)
	}

	var converted float64
	if from.dimension == dimensionTemperature {
		converted, err = convertTemperature(op, value, fromName, toName)
		if err != nil {
			return domain.ToolResult{}, err
		}
	} else {
		converted = value * from.factor / to.factor
	}

	result := fieldsResult(
		field("Giá trị", fmt.Sprintf("%s %s", formatNumber(value), fromName)),
		field("Kết quả", fmt.Sprintf("%s %s", formatRounded(converted, 6), toName)),
	)
	result.Meta = map[string]string{"result": formatNumber(converted), "dimension": string(from.dimension)}
	return result, nil
}

func lookupUnit(op, raw string) (string, unitDef, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := unitAliases[name]; ok {
		name = alias
	}
	def, ok := units[name]
	if !ok {
		return "", unitDef{}, domain.InvalidInput(op, "unknown unit %q", raw)
	}
	return name, def, nil
}

func convertTemperature(op string, value float64, from, to string) (float64, error) {
	var kelvin float64
	switch from {
	case "c":
		kelvin = value + 273.15
	case "f":
		kelvin = (value-32)*5/9 + 273.15
	default:
		kelvin = value
	}
	if kelvin < 0 {
		return 0, domain.InvalidInput(op, "temperature is below absolute zero")
	}
	switch to {
	case "c":
		return kelvin - 273.15, nil
	case "f":
		return (kelvin-273.15)*9/5 + 32, nil
	default:
		return kelvin, nil
	}
}
