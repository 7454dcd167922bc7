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
	"fmt"

	"github.com/cybergarage/go-xsens-mti/xsensmti/wire"
)

// RateOfTurn is a calibrated 3-axis angular rate measurement, in rad/s.
type RateOfTurn struct {
	X float64
	Y float64
	Z float64
}

// RateOfTurnWireSize returns the on-wire byte size of a RateOfTurn packet
// payload for the given precision.
func RateOfTurnWireSize(p wire.Precision) int {
	return vec3WireSize(p)
}

// RateOfTurnFromBESlice decodes a RateOfTurn packet from big-endian bytes
// encoded with precision p.
func RateOfTurnFromBESlice(bytes []byte, p wire.Precision) (RateOfTurn, error) {
	x, y, z, err := decodeVec3(bytes, p)
	if err != nil {
		return RateOfTurn{}, err
	}
	return RateOfTurn{X: x, Y: y, Z: z}, nil
}

func (r RateOfTurn) String() string {
	return fmt.Sprintf("RateOfTurn(X: %.4f, Y: %.4f, Z: %.4f)", r.X, r.Y, r.Z)
}
