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

package mtdata2

import (
	"errors"
	"fmt"

	"github.com/cybergarage/go-xsens-mti/xsensmti/wire"
)

// ErrUnsupportedPrecision is returned decoding a PositionEcef packet tagged
// with a fixed-point precision: the device never emits PositionEcef in
// Fp1220 or Fp1632, only Float32 or Float64.
var ErrUnsupportedPrecision = errors.New("mtdata2: unsupported precision for this data type")

// PositionEcef is a 3-axis position in the Earth-Centered, Earth-Fixed
// frame, in meters.
type PositionEcef struct {
	X float64
	Y float64
	Z float64
}

// PositionEcefWireSize returns the on-wire byte size of a PositionEcef
// packet payload for the given precision. p must be Float32 or Float64.
func PositionEcefWireSize(p wire.Precision) (int, error) {
	switch p {
	case wire.PrecisionFloat32, wire.PrecisionFloat64:
		return vec3WireSize(p), nil
	default:
		return 0, ErrUnsupportedPrecision
	}
}

// PositionEcefFromBESlice decodes a PositionEcef packet from big-endian
// bytes encoded with precision p. Returns ErrUnsupportedPrecision if p is
// Fp1220 or Fp1632.
func PositionEcefFromBESlice(bytes []byte, p wire.Precision) (PositionEcef, error) {
	if _, err := PositionEcefWireSize(p); err != nil {
		return PositionEcef{}, err
	}
	x, y, z, err := decodeVec3(bytes, p)
	if err != nil {
		return PositionEcef{}, err
	}
	return PositionEcef{X: x, Y: y, Z: z}, nil
}

func (p PositionEcef) String() string {
	return fmt.Sprintf("PositionEcef(X: %.4f, Y: %.4f, Z: %.4f)", p.X, p.Y, p.Z)
}
