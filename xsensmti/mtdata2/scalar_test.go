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

func TestPacketCounterFromBESlice(t *testing.T) {
	v, err := PacketCounterFromBESlice([]byte{0x01, 0x14})
	require.NoError(t, err)
	require.Equal(t, uint16(0x0114), v)
}

func TestSampleTimeFromBESlice(t *testing.T) {
	fine, err := SampleTimeFineFromBESlice([]byte{0x00, 0x02, 0xAF, 0xCA})
	require.NoError(t, err)
	require.Equal(t, uint32(0x0002AFCA), fine)

	coarse, err := SampleTimeCoarseFromBESlice([]byte{0x00, 0x00, 0x01, 0x00})
	require.NoError(t, err)
	require.Equal(t, uint32(0x100), coarse)
}

func TestAltitudeEllipsoidFromBESlice(t *testing.T) {
	buf := make([]byte, 4)
	require.NoError(t, wire.WriteFloat32(buf, 123.5))
	a, err := AltitudeEllipsoidFromBESlice(buf, wire.PrecisionFloat32)
	require.NoError(t, err)
	require.Equal(t, AltitudeEllipsoid{Value: 123.5}, a)
}

func TestAltitudeEllipsoidWireSize(t *testing.T) {
	require.Equal(t, 4, AltitudeEllipsoidWireSize(wire.PrecisionFloat32))
	require.Equal(t, 8, AltitudeEllipsoidWireSize(wire.PrecisionFloat64))
}
