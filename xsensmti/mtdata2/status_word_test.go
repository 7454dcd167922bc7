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

func TestStatusWordFromBESlice(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x07}
	s, err := StatusWordFromBESlice(buf)
	require.NoError(t, err)
	require.True(t, s.SelfTestOk())
	require.True(t, s.FilterValid())
	require.True(t, s.GnssFix())
}

func TestStatusWordReservedBitsPreserved(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF, 0xF8}
	s, err := StatusWordFromBESlice(buf)
	require.NoError(t, err)
	require.False(t, s.SelfTestOk())
	require.False(t, s.FilterValid())
	require.False(t, s.GnssFix())
	require.Equal(t, StatusWord(0xFFFFFFF8), s)
}

func TestStatusWordMissingBytes(t *testing.T) {
	_, err := StatusWordFromBESlice(make([]byte, StatusWordWireSize-1))
	require.ErrorIs(t, err, wire.ErrMissingBytes)
}
