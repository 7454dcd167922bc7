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

// EulerAngles is the orientation expressed as roll/pitch/yaw, in degrees.
type EulerAngles struct {
	Roll  float64
	Pitch float64
	Yaw   float64
}

// EulerAnglesWireSize returns the on-wire byte size of an EulerAngles packet
// payload for the given precision.
func EulerAnglesWireSize(p wire.Precision) int {
	return vec3WireSize(p)
}

// EulerAnglesFromBESlice decodes an EulerAngles packet from big-endian
// bytes encoded with precision p.
func EulerAnglesFromBESlice(bytes []byte, p wire.Precision) (EulerAngles, error) {
	roll, pitch, yaw, err := decodeVec3(bytes, p)
	if err != nil {
		return EulerAngles{}, err
	}
	return EulerAngles{Roll: roll, Pitch: pitch, Yaw: yaw}, nil
}

func (e EulerAngles) String() string {
	return fmt.Sprintf("EulerAngles(Roll: %.4f, Pitch: %.4f, Yaw: %.4f)", e.Roll, e.Pitch, e.Yaw)
}
