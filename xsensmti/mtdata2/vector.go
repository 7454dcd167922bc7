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

import "github.com/cybergarage/go-xsens-mti/xsensmti/wire"

// readPrecisionFloat reads one precision-tagged field and converts it to a
// float64, scaling fixed-point representations. Every 3-field and 1-field
// measurement family in this package dispatches through this single
// precision-generic reader.
func readPrecisionFloat(buf []byte, p wire.Precision) (float64, int, error) {
	v, n, err := wire.ReadPrecisionField(buf, p)
	if err != nil {
		return 0, 0, err
	}
	switch p {
	case wire.PrecisionFp1220:
		return wire.Fp1220ToFloat64(uint32(v.Raw)), n, nil
	case wire.PrecisionFp1632:
		return wire.Fp1632ToFloat64(v.Raw), n, nil
	default:
		return v.Float, n, nil
	}
}

// vec3WireSize returns the total byte size of three consecutive
// precision-tagged fields.
func vec3WireSize(p wire.Precision) int {
	return 3 * p.WireSize()
}

// decodeVec3 reads three consecutive precision-tagged fields (x, y, z) from
// the front of bytes.
func decodeVec3(bytes []byte, p wire.Precision) (x, y, z float64, err error) {
	if len(bytes) < vec3WireSize(p) {
		return 0, 0, 0, wire.ErrMissingBytes
	}
	var n int
	x, n, err = readPrecisionFloat(bytes, p)
	if err != nil {
		return
	}
	y, n2, err := readPrecisionFloat(bytes[n:], p)
	if err != nil {
		return
	}
	z, _, err = readPrecisionFloat(bytes[n+n2:], p)
	return
}
