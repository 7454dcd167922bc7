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

package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWriteUintRoundTrip(t *testing.T) {
	t.Run("Uint8", func(t *testing.T) {
		buf := make([]byte, 1)
		require.NoError(t, WriteUint8(buf, 0xAB))
		v, err := ReadUint8(buf)
		require.NoError(t, err)
		require.Equal(t, uint8(0xAB), v)
	})

	t.Run("Uint16", func(t *testing.T) {
		buf := make([]byte, 2)
		require.NoError(t, WriteUint16(buf, 0x0114))
		v, err := ReadUint16(buf)
		require.NoError(t, err)
		require.Equal(t, uint16(0x0114), v)
		require.Equal(t, []byte{0x01, 0x14}, buf)
	})

	t.Run("Uint32", func(t *testing.T) {
		buf := make([]byte, 4)
		require.NoError(t, WriteUint32(buf, 0x0002AFCA))
		v, err := ReadUint32(buf)
		require.NoError(t, err)
		require.Equal(t, uint32(0x0002AFCA), v)
	})

	t.Run("Uint64", func(t *testing.T) {
		buf := make([]byte, 8)
		require.NoError(t, WriteUint64(buf, 0x0123456789ABCDEF))
		v, err := ReadUint64(buf)
		require.NoError(t, err)
		require.Equal(t, uint64(0x0123456789ABCDEF), v)
	})
}

func TestReadWriteFloatRoundTrip(t *testing.T) {
	t.Run("Float32", func(t *testing.T) {
		buf := make([]byte, 4)
		require.NoError(t, WriteFloat32(buf, 3.5))
		v, err := ReadFloat32(buf)
		require.NoError(t, err)
		require.Equal(t, float32(3.5), v)
	})

	t.Run("Float64", func(t *testing.T) {
		buf := make([]byte, 8)
		require.NoError(t, WriteFloat64(buf, -1234.5678))
		v, err := ReadFloat64(buf)
		require.NoError(t, err)
		require.Equal(t, -1234.5678, v)
	})
}

func TestReadMissingBytes(t *testing.T) {
	tests := []struct {
		name string
		fn   func([]byte) error
		buf  []byte
	}{
		{"Uint8", func(b []byte) error { _, err := ReadUint8(b); return err }, nil},
		{"Uint16", func(b []byte) error { _, err := ReadUint16(b); return err }, make([]byte, 1)},
		{"Uint32", func(b []byte) error { _, err := ReadUint32(b); return err }, make([]byte, 3)},
		{"Uint64", func(b []byte) error { _, err := ReadUint64(b); return err }, make([]byte, 7)},
		{"Float32", func(b []byte) error { _, err := ReadFloat32(b); return err }, make([]byte, 3)},
		{"Float64", func(b []byte) error { _, err := ReadFloat64(b); return err }, make([]byte, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.fn(tt.buf), ErrMissingBytes)
		})
	}
}

func TestWriteMissingBytes(t *testing.T) {
	require.ErrorIs(t, WriteUint8(nil, 1), ErrMissingBytes)
	require.ErrorIs(t, WriteUint16(make([]byte, 1), 1), ErrMissingBytes)
	require.ErrorIs(t, WriteUint32(make([]byte, 3), 1), ErrMissingBytes)
	require.ErrorIs(t, WriteUint64(make([]byte, 7), 1), ErrMissingBytes)
}
