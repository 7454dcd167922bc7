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

// Package wire provides the big-endian field primitives and the DataId /
// Precision composite identifier model that every MTData2 measurement
// decoder is built on. All binary data communication in the MT protocol is
// big-endian.
package wire

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrMissingBytes is returned when a slice is shorter than the fixed size
// demanded by the field being read or written.
var ErrMissingBytes = errors.New("wire: missing bytes")

// ReadUint8 reads a single byte from buf.
func ReadUint8(buf []byte) (uint8, error) {
	if len(buf) < 1 {
		return 0, ErrMissingBytes
	}
	return buf[0], nil
}

// ReadUint16 reads a big-endian uint16 from buf.
func ReadUint16(buf []byte) (uint16, error) {
	if len(buf) < 2 {
		return 0, ErrMissingBytes
	}
	return binary.BigEndian.Uint16(buf), nil
}

// ReadUint32 reads a big-endian uint32 from buf.
func ReadUint32(buf []byte) (uint32, error) {
	if len(buf) < 4 {
		return 0, ErrMissingBytes
	}
	return binary.BigEndian.Uint32(buf), nil
}

// ReadUint64 reads a big-endian uint64 from buf.
func ReadUint64(buf []byte) (uint64, error) {
	if len(buf) < 8 {
		return 0, ErrMissingBytes
	}
	return binary.BigEndian.Uint64(buf), nil
}

// ReadFloat32 reads a big-endian IEEE-754 single precision float from buf.
func ReadFloat32(buf []byte) (float32, error) {
	v, err := ReadUint32(buf)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 reads a big-endian IEEE-754 double precision float from buf.
func ReadFloat64(buf []byte) (float64, error) {
	v, err := ReadUint64(buf)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// WriteUint8 writes a single byte into buf.
func WriteUint8(buf []byte, v uint8) error {
	if len(buf) < 1 {
		return ErrMissingBytes
	}
	buf[0] = v
	return nil
}

// WriteUint16 writes v into buf as a big-endian uint16.
func WriteUint16(buf []byte, v uint16) error {
	if len(buf) < 2 {
		return ErrMissingBytes
	}
	binary.BigEndian.PutUint16(buf, v)
	return nil
}

// WriteUint32 writes v into buf as a big-endian uint32.
func WriteUint32(buf []byte, v uint32) error {
	if len(buf) < 4 {
		return ErrMissingBytes
	}
	binary.BigEndian.PutUint32(buf, v)
	return nil
}

// WriteUint64 writes v into buf as a big-endian uint64.
func WriteUint64(buf []byte, v uint64) error {
	if len(buf) < 8 {
		return ErrMissingBytes
	}
	binary.BigEndian.PutUint64(buf, v)
	return nil
}

// WriteFloat32 writes v into buf as a big-endian IEEE-754 single precision float.
func WriteFloat32(buf []byte, v float32) error {
	return WriteUint32(buf, math.Float32bits(v))
}

// WriteFloat64 writes v into buf as a big-endian IEEE-754 double precision float.
func WriteFloat64(buf []byte, v float64) error {
	return WriteUint64(buf, math.Float64bits(v))
}
