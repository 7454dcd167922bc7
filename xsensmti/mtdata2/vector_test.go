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
	"testing"

	"github.com/cybergarage/go-xsens-mti/xsensmti/wire"
	"github.com/stretchr/testify/require"
)

func writeVec3Float32(t *testing.T, x, y, z float32) []byte {
	t.Helper()
	buf := make([]byte, 12)
	require.NoError(t, wire.WriteFloat32(buf[0:4], x))
	require.NoError(t, wire.WriteFloat32(buf[4:8], y))
	require.NoError(t, wire.WriteFloat32(buf[8:12], z))
	return buf
}

func TestVec3FamiliesDecodeFloat32(t *testing.T) {
	buf := writeVec3Float32(t, 1.5, -2.5, 3.25)

	e, err := EulerAnglesFromBESlice(buf, wire.PrecisionFloat32)
	require.NoError(t, err)
	require.Equal(t, EulerAngles{Roll: 1.5, Pitch: -2.5, Yaw: 3.25}, e)

	a, err := AccelerationFromBESlice(buf, wire.PrecisionFloat32)
	require.NoError(t, err)
	require.Equal(t, Acceleration{X: 1.5, Y: -2.5, Z: 3.25}, a)

	r, err := RateOfTurnFromBESlice(buf, wire.PrecisionFloat32)
	require.NoError(t, err)
	require.Equal(t, RateOfTurn{X: 1.5, Y: -2.5, Z: 3.25}, r)

	m, err := MagneticFieldFromBESlice(buf, wire.PrecisionFloat32)
	require.NoError(t, err)
	require.Equal(t, MagneticField{X: 1.5, Y: -2.5, Z: 3.25}, m)

	v, err := VelocityXYZFromBESlice(buf, wire.PrecisionFloat32)
	require.NoError(t, err)
	require.Equal(t, VelocityXYZ{X: 1.5, Y: -2.5, Z: 3.25}, v)
}

func TestVec3FamiliesMissingBytes(t *testing.T) {
	short := make([]byte, 11)
	_, err := AccelerationFromBESlice(short, wire.PrecisionFloat32)
	require.ErrorIs(t, err, wire.ErrMissingBytes)
}

func TestVec3WireSizePerPrecision(t *testing.T) {
	require.Equal(t, 12, AccelerationWireSize(wire.PrecisionFloat32))
	require.Equal(t, 12, AccelerationWireSize(wire.PrecisionFp1220))
	require.Equal(t, 24, AccelerationWireSize(wire.PrecisionFloat64))
	require.Equal(t, 24, AccelerationWireSize(wire.PrecisionFp1632))
}

func TestVec3FamiliesDecodeFixedPoint(t *testing.T) {
	buf := make([]byte, 12)
	require.NoError(t, wire.WriteUint32(buf[0:4], 1<<20))   // 1.0
	require.NoError(t, wire.WriteUint32(buf[4:8], 1<<19))   // 0.5
	require.NoError(t, wire.WriteUint32(buf[8:12], 3<<20))  // 3.0

	a, err := AccelerationFromBESlice(buf, wire.PrecisionFp1220)
	require.NoError(t, err)
	require.InDelta(t, 1.0, a.X, 1e-9)
	require.InDelta(t, 0.5, a.Y, 1e-9)
	require.InDelta(t, 3.0, a.Z, 1e-9)
}
