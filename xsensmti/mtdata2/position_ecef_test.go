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

func TestPositionEcefFromBESliceFloat32(t *testing.T) {
	buf := writeVec3Float32(t, 100.0, 200.0, 300.0)
	p, err := PositionEcefFromBESlice(buf, wire.PrecisionFloat32)
	require.NoError(t, err)
	require.Equal(t, PositionEcef{X: 100.0, Y: 200.0, Z: 300.0}, p)
}

func TestPositionEcefRejectsFixedPoint(t *testing.T) {
	buf := make([]byte, 12)
	_, err := PositionEcefFromBESlice(buf, wire.PrecisionFp1220)
	require.ErrorIs(t, err, ErrUnsupportedPrecision)

	_, err = PositionEcefWireSize(wire.PrecisionFp1632)
	require.ErrorIs(t, err, ErrUnsupportedPrecision)
}

func TestPositionEcefWireSizeFloat64(t *testing.T) {
	n, err := PositionEcefWireSize(wire.PrecisionFloat64)
	require.NoError(t, err)
	require.Equal(t, 24, n)
}
