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

// Package mtdata2 decodes the nested, self-describing measurement packets
// carried in an MTData2 message payload: a DataId header, an 8-bit payload
// length, and the payload bytes, repeated until the message payload is
// exhausted.
package mtdata2

import (
	"fmt"

	"github.com/cybergarage/go-xsens-mti/xsensmti/wire"
)

// MinWireSize is the minimum size of a packet: DataId (2 bytes) plus a
// 1-byte length, with a zero-length payload.
const MinWireSize = wire.DataIdWireSize + 1

const (
	fieldDataID  = 0 // 0:2
	fieldLen     = 2
	fieldPayload = 3
)

// Packet is a read-only view over one MTData2 sub-packet.
type Packet struct {
	buf []byte
}

// NewUnchecked wraps buf as a Packet without validating its contents.
func NewUnchecked(buf []byte) Packet {
	return Packet{buf: buf}
}

// New wraps buf as a Packet, validating that it is long enough to hold the
// header and the declared payload.
func New(buf []byte) (Packet, error) {
	p := NewUnchecked(buf)
	if err := p.CheckLen(); err != nil {
		return Packet{}, err
	}
	if err := p.CheckPayloadLength(); err != nil {
		return Packet{}, err
	}
	return p, nil
}

// CheckLen reports whether buf is long enough to hold the minimal packet
// header.
func (p Packet) CheckLen() error {
	if len(p.buf) < MinWireSize {
		return wire.ErrMissingBytes
	}
	return nil
}

// CheckPayloadLength reports whether buf is long enough to hold the
// declared payload.
func (p Packet) CheckPayloadLength() error {
	n := len(p.buf)
	payloadLen := int(p.DataLength())
	if n < BufferLen(0) || n < BufferLen(payloadLen) {
		return wire.ErrMissingBytes
	}
	return nil
}

// HeaderLen returns the length of a packet header (DataId + length byte).
func HeaderLen() int {
	return fieldPayload
}

// BufferLen returns the length of a buffer required to hold a packet with
// a payload of nPayloadBytes.
func BufferLen(nPayloadBytes int) int {
	return HeaderLen() + nPayloadBytes
}

// DataId returns the packet's data identifier.
func (p Packet) DataId() wire.DataId {
	v, _ := wire.ReadDataId(p.buf[fieldDataID : fieldDataID+wire.DataIdWireSize])
	return v
}

// DataLength returns the packet's declared payload length in bytes.
func (p Packet) DataLength() uint8 {
	return p.buf[fieldLen]
}

// Payload returns the packet's payload slice.
func (p Packet) Payload() []byte {
	end := HeaderLen() + int(p.DataLength())
	return p.buf[fieldPayload:end]
}

// DataAsU8 returns the payload interpreted as a single byte, failing if the
// declared length is not exactly 1.
func (p Packet) DataAsU8() (uint8, error) {
	if int(p.DataLength()) != 1 {
		return 0, wire.ErrMissingBytes
	}
	return p.Payload()[0], nil
}

// DataAsU16 returns the payload interpreted as a big-endian uint16, failing
// if the declared length is not exactly 2.
func (p Packet) DataAsU16() (uint16, error) {
	if int(p.DataLength()) != 2 {
		return 0, wire.ErrMissingBytes
	}
	return wire.ReadUint16(p.Payload())
}

func (p Packet) String() string {
	return fmt.Sprintf("%s, Len(%d)", p.DataId(), p.DataLength())
}

// Iter iterates over the packets concatenated in an MTData2 message
// payload, advancing by HeaderLen()+dataLength bytes per step. Iteration
// stops at the end of the payload, or at the first truncated packet, which
// Err reports afterwards.
type Iter struct {
	cursor int
	buf    []byte
	err    error
}

// NewIter creates an Iter over buf.
func NewIter(buf []byte) *Iter {
	return &Iter{buf: buf}
}

// Next returns the next packet, reporting ok=false once the payload is
// exhausted or a truncated packet is found.
func (it *Iter) Next() (Packet, bool) {
	if it.err != nil || it.cursor >= len(it.buf) {
		return Packet{}, false
	}
	p, err := New(it.buf[it.cursor:])
	if err != nil {
		it.err = err
		return Packet{}, false
	}
	it.cursor += BufferLen(int(p.DataLength()))
	return p, true
}

// Err returns the error that terminated iteration early, or nil if the
// payload held a whole number of well-formed packets.
func (it *Iter) Err() error {
	return it.err
}
