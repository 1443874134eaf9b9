// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2024 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AmountUnit describes a method of converting an Amount to something
// other than the base unit of a talus.  The value of the AmountUnit
// is the exponent component of the decadic multiple to convert from
// an amount in talus to an amount counted in units.
type AmountUnit int

// These constants define various units used when describing a talus
// monetary amount.
const (
	AmountMegaTAL  AmountUnit = 6
	AmountKiloTAL  AmountUnit = 3
	AmountTAL      AmountUnit = 0
	AmountMilliTAL AmountUnit = -3
	AmountMicroTAL AmountUnit = -6
	AmountSatoshi  AmountUnit = -8
)

// String returns the unit as a string.  For recognized units, the SI
// prefix is used, or "Satoshi" for the base unit.  For all unrecognized
// units, "1eN TAL" is returned, where N is the AmountUnit.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaTAL:
		return "MTAL"
	case AmountKiloTAL:
		return "kTAL"
	case AmountTAL:
		return "TAL"
	case AmountMilliTAL:
		return "mTAL"
	case AmountMicroTAL:
		return "µTAL"
	case AmountSatoshi:
		return "Satoshi"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " TAL"
	}
}

// Amount represents the base talus monetary unit (colloquially referred
// to as a `Satoshi').  A single Amount is equal to 1e-8 of a talus.
type Amount int64

// round converts a floating point number, which may or may not be representable
// as an integer, to the Amount integer type by rounding to the nearest integer.
// This is performed by adding or subtracting 0.5 depending on the sign, and
// relying on integer truncation to round the value to the nearest Amount.
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing
// some value in talus.  NewAmount errors if f is NaN or +-Infinity, but
// does not check that the amount is within the total amount of talus
// producible as f may not refer to an amount at a single moment in time.
//
// NewAmount is specifically for converting TAL to base units.
// For creating a new Amount with an int64 value which denotes a quantity of
// base units, do a simple type conversion from type int64 to Amount.
func NewAmount(f float64) (Amount, error) {
	// The amount is only considered invalid if it cannot be represented
	// as an integer type.  This may happen if f is NaN or +-Infinity.
	switch {
	case math.IsNaN(f):
		fallthrough
	case math.IsInf(f, 1):
		fallthrough
	case math.IsInf(f, -1):
		return 0, errors.New("invalid talus amount")
	}

	return round(f * SatoshiPerCoin), nil
}

// ToUnit converts a monetary amount counted in talus base units to a
// floating point value representing an amount of talus.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToTAL is the equivalent of calling ToUnit with AmountTAL.
func (a Amount) ToTAL() float64 {
	return a.ToUnit(AmountTAL)
}

// Format formats a monetary amount counted in talus base units as a
// string for a given unit.  The conversion will succeed for any unit,
// however, known units will be formatted with an appended label describing
// the units with SI notation, or "Satoshi" for the base unit.
func (a Amount) Format(u AmountUnit) string {
	units := " " + u.String()
	formatted := strconv.FormatFloat(a.ToUnit(u), 'f', -int(u+8), 64)

	// When formatting full TAL, add trailing zeroes for numbers
	// with decimal point to ease reading of sat amount.
	if u == AmountTAL {
		if strings.Contains(formatted, ".") {
			return fmt.Sprintf("%.8f%s", a.ToUnit(u), units)
		}
	}
	return formatted + units
}

// String is the equivalent of calling Format with AmountTAL.
func (a Amount) String() string {
	return a.Format(AmountTAL)
}

// MulF64 multiplies an Amount by a floating point value.  While this is not
// an operation that must typically be done by a full node or wallet, it is
// useful for services that build on top of talus (for example, calculating
// a fee by multiplying by a percentage).
func (a Amount) MulF64(f float64) Amount {
	return round(float64(a) * f)
}
