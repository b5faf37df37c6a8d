package extractor

// Field identifies one semantic field on the ID card.
type Field string

const (
	FieldCIN         Field = "cin"
	FieldFullName    Field = "full_name"
	FieldDateOfBirth Field = "date_of_birth"
	FieldCity        Field = "city"
	FieldAddress     Field = "address"
)

// Region is a rectangle in normalized [0,1] document coordinates where
// one field's value is expected to appear.
type Region struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Contains reports whether the point lies inside the region, edges included.
func (r Region) Contains(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Calibration maps each field to the region of the card it is printed
// in. A calibration is read-only during extraction; callers that need a
// different layout pass their own table instead of mutating this one.
type Calibration map[Field]Region

// DefaultCalibration returns the zone layout of the standard Moroccan
// CIN front side: the header band at the top carries no field values,
// the name, birth date and birth city stack below it to the right of the
// portrait, the address sits underneath and the CIN number is printed in
// the bottom-left corner. A fresh map is returned on every call so
// callers can adjust their copy freely.
func DefaultCalibration() Calibration {
	return Calibration{
		FieldFullName:    {X0: 0.25, Y0: 0.15, X1: 1.00, Y1: 0.40},
		FieldDateOfBirth: {X0: 0.25, Y0: 0.40, X1: 1.00, Y1: 0.60},
		FieldCity:        {X0: 0.25, Y0: 0.60, X1: 1.00, Y1: 0.75},
		FieldAddress:     {X0: 0.25, Y0: 0.75, X1: 1.00, Y1: 0.92},
		FieldCIN:         {X0: 0.00, Y0: 0.92, X1: 0.55, Y1: 1.00},
	}
}
