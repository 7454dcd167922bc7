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

// AltitudeEllipsoid is the height above the WGS84 reference ellipsoid, in
// meters.
type AltitudeEllipsoid struct {
	Value float64
}

// AltitudeEllipsoidWireSize returns the on-wire byte size of an
// AltitudeEllipsoid packet payload for the given precision.
func AltitudeEllipsoidWireSize(p wire.Precision) int {
	return p.WireSize()
}

// AltitudeEllipsoidFromBESlice decodes an AltitudeEllipsoid packet from
// big-endian bytes encoded with precision p.
func AltitudeEllipsoidFromBESlice(bytes []byte, p wire.Precision) (AltitudeEllipsoid, error) {
	v, _, err := readPrecisionFloat(bytes, p)
	if err != nil {
		return AltitudeEllipsoid{}, err
	}
	return AltitudeEllipsoid{Value: v}, nil
}

func (a AltitudeEllipsoid) String() string {
	return fmt.Sprintf("AltitudeEllipsoid(%.4f)", a.Value)
}
