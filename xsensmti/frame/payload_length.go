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

package frame

import (
	"github.com/cybergarage/go-safecast/safecast"
)

// PayloadLengthKind distinguishes a standard (one byte on the wire) payload
// length from an extended (two bytes) one.
type PayloadLengthKind uint8

const (
	// PayloadLengthStandard is an 8-bit length in [0, MaxStandardPayload].
	PayloadLengthStandard PayloadLengthKind = iota
	// PayloadLengthExtended is a 16-bit length in [0, MaxExtendedPayload].
	PayloadLengthExtended
)

const (
	// MaxStandardPayload is the largest payload length expressible in the
	// single-byte standard length field. The byte value 0xFF is reserved as
	// the "read an extended length" marker, so 0xFE is the true maximum.
	MaxStandardPayload = 0xFE
	// MaxExtendedPayload is the largest payload length expressible in the
	// two-byte extended length field.
	MaxExtendedPayload = 0x0800
)

// PayloadLength is a tagged payload length: either a standard 8-bit value
// or an extended 16-bit one.
type PayloadLength struct {
	kind  PayloadLengthKind
	value uint16
}

// NewStandardPayloadLength builds a standard PayloadLength, failing if len
// exceeds MaxStandardPayload.
func NewStandardPayloadLength(length uint8) (PayloadLength, error) {
	if length > MaxStandardPayload {
		return PayloadLength{}, ErrInvalidPayloadLength
	}
	return PayloadLength{kind: PayloadLengthStandard, value: uint16(length)}, nil
}

// NewExtendedPayloadLength builds an extended PayloadLength, failing if len
// exceeds MaxExtendedPayload.
func NewExtendedPayloadLength(length uint16) (PayloadLength, error) {
	if length > MaxExtendedPayload {
		return PayloadLength{}, ErrInvalidPayloadLength
	}
	return PayloadLength{kind: PayloadLengthExtended, value: length}, nil
}

// NewPayloadLength picks the narrowest representation able to hold n,
// narrowing the caller-supplied count into the wire field with safecast.
func NewPayloadLength(n int) (PayloadLength, error) {
	if n > MaxExtendedPayload {
		return PayloadLength{}, ErrInvalidPayloadLength
	}
	if n > MaxStandardPayload {
		var ext uint16
		if err := safecast.ToUint16(n, &ext); err != nil {
			return PayloadLength{}, ErrInvalidPayloadLength
		}
		return NewExtendedPayloadLength(ext)
	}
	var std uint8
	if err := safecast.ToUint8(n, &std); err != nil {
		return PayloadLength{}, ErrInvalidPayloadLength
	}
	return NewStandardPayloadLength(std)
}

// Get returns the payload length's numeric value.
func (p PayloadLength) Get() int {
	return int(p.value)
}

// IsExtended reports whether p uses the extended (two-byte) header form.
func (p PayloadLength) IsExtended() bool {
	return p.kind == PayloadLengthExtended
}

// HeaderSize returns the frame header size (preamble through length field)
// required to carry this payload length: HeaderSize (4) for standard,
// ExtHeaderSize (6) for extended.
func (p PayloadLength) HeaderSize() int {
	if p.IsExtended() {
		return ExtHeaderSize
	}
	return HeaderSize
}
