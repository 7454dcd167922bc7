// Copyright (C) 2026 The go-xsens-mti Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wire

// PrecisionValue is a single measurement field read according to its
// DataId's Precision. Float32/Float64 fields carry their IEEE-754 value
// directly in Float; Fp1220/Fp1632 fields are fixed-point and are left as
// raw wire bits in Raw (the integer part occupies the high bits, the
// fractional part the low bits, per the protocol's 12.20 / 16.32 layout).
// Converting a fixed-point value to a float is a scaling decision left to
// the caller; see Fp1220ToFloat64 and Fp1632ToFloat64.
type PrecisionValue struct {
	Precision Precision
	Float     float64
	Raw       uint64
}

// ReadPrecisionField reads one field of the given precision from the front
// of buf, returning the number of bytes consumed.
func ReadPrecisionField(buf []byte, p Precision) (PrecisionValue, int, error) {
	switch p {
	case PrecisionFloat32:
		v, err := ReadFloat32(buf)
		if err != nil {
			return PrecisionValue{}, 0, err
		}
		return PrecisionValue{Precision: p, Float: float64(v)}, 4, nil
	case PrecisionFloat64:
		v, err := ReadFloat64(buf)
		if err != nil {
			return PrecisionValue{}, 0, err
		}
		return PrecisionValue{Precision: p, Float: v}, 8, nil
	case PrecisionFp1220:
		v, err := ReadUint32(buf)
		if err != nil {
			return PrecisionValue{}, 0, err
		}
		return PrecisionValue{Precision: p, Raw: uint64(v)}, 4, nil
	case PrecisionFp1632:
		v, err := ReadUint64(buf)
		if err != nil {
			return PrecisionValue{}, 0, err
		}
		return PrecisionValue{Precision: p, Raw: v}, 8, nil
	default:
		// Unknown precisions do not occur: Precision is a 2-bit field and
		// all four values are named above.
		v, err := ReadFloat32(buf)
		if err != nil {
			return PrecisionValue{}, 0, err
		}
		return PrecisionValue{Precision: p, Float: float64(v)}, 4, nil
	}
}

// Fp1220ToFloat64 converts a raw 12.20 fixed-point wire value (4 bytes, 12
// integer bits, 20 fractional bits) to a float64.
func Fp1220ToFloat64(raw uint32) float64 {
	return float64(int32(raw)) / (1 << 20)
}

// Fp1632ToFloat64 converts a raw 16.32 fixed-point wire value (stored in 8
// bytes; the high 16 bits are integer, the low 32 bits are fraction, and
// the top 16 bits of the 64-bit container are unused) to a float64.
func Fp1632ToFloat64(raw uint64) float64 {
	v := raw & 0xFFFFFFFFFFFF // low 48 bits: 16 integer + 32 fraction
	signed := int64(v<<16) >> 16
	return float64(signed) / (1 << 32)
}
