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

// LatLon is a geodetic position, in degrees.
type LatLon struct {
	Latitude  float64
	Longitude float64
}

// LatLonWireSize returns the on-wire byte size of a LatLon packet payload
// for the given precision. Unlike PositionEcef, LatLon is defined for all
// four precisions.
func LatLonWireSize(p wire.Precision) int {
	return 2 * p.WireSize()
}

// LatLonFromBESlice decodes a LatLon packet from big-endian bytes encoded
// with precision p.
func LatLonFromBESlice(bytes []byte, p wire.Precision) (LatLon, error) {
	if len(bytes) < LatLonWireSize(p) {
		return LatLon{}, wire.ErrMissingBytes
	}
	lat, n, err := readPrecisionFloat(bytes, p)
	if err != nil {
		return LatLon{}, err
	}
	lon, _, err := readPrecisionFloat(bytes[n:], p)
	if err != nil {
		return LatLon{}, err
	}
	return LatLon{Latitude: lat, Longitude: lon}, nil
}

func (l LatLon) String() string {
	return fmt.Sprintf("LatLon(Lat: %.6f, Lon: %.6f)", l.Latitude, l.Longitude)
}
