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

// Package decoder implements a streaming, byte-at-a-time state machine that
// resynchronizes on the frame preamble and yields complete, checksum-valid
// frames out of an arbitrarily fragmented serial or Bluetooth byte stream.
package decoder

import (
	"errors"

	"github.com/cybergarage/go-logger/log"
	"github.com/cybergarage/go-xsens-mti/xsensmti/frame"
)

// ErrInsufficientBufferSize is returned by New and SwapBuffer when buffer
// is shorter than HeaderSize + MaxStandardPayload bytes, and by Decode when
// a frame would overrun the buffer mid-decode. A buffer of exactly the
// minimum size is one byte short of a frame with the maximum standard
// payload, and any frame longer than the buffer hits this error.
var ErrInsufficientBufferSize = errors.New("decoder: insufficient buffer size")

// state is the decoder's position within one frame.
type state int

const (
	statePreamble state = iota
	stateBusID
	stateMsgID
	stateLen
	stateExtLenMsb
	stateExtLenLsb
	statePayload
	stateChecksum
)

// Decoder is a streaming frame decoder. It owns no heap buffer of its own;
// callers provide a backing array (or swap one in with SwapBuffer) that the
// decoder fills in place and that returned Frame values borrow. A Frame
// returned by Decode is only valid until the next call to Decode or
// SwapBuffer.
type Decoder struct {
	state               state
	count               int
	invalidCount        int
	accumulatedChecksum uint16
	rawPayloadLen       uint16
	expectedFrameSize   int
	bytesRead           int
	buffer              []byte
}

// minBufferSize is the smallest buffer New and SwapBuffer accept: the
// standard header plus the maximum standard payload. It does not include
// the checksum byte.
func minBufferSize() int {
	return frame.HeaderSize + frame.MaxStandardPayload
}

// New creates a Decoder that fills buffer in place. buffer must be at
// least frame.HeaderSize + frame.MaxStandardPayload bytes long; a frame is
// decoded only if header, payload and checksum all fit in buffer, so use a
// larger buffer for the largest standard frames and for extended-length
// frames up to frame.MaxExtendedPayload.
func New(buffer []byte) (*Decoder, error) {
	if len(buffer) < minBufferSize() {
		return nil, ErrInsufficientBufferSize
	}
	return &Decoder{buffer: buffer}, nil
}

// Reset discards any partially decoded frame and returns the decoder to
// its initial state, awaiting a preamble. Count and InvalidCount are
// unaffected.
func (d *Decoder) Reset() {
	d.state = statePreamble
	d.accumulatedChecksum = 0
	d.rawPayloadLen = 0
	d.expectedFrameSize = 0
	d.bytesRead = 0
}

// SwapBuffer replaces the decoder's backing buffer and resets decoding
// state, returning the old buffer. Any Frame previously returned by Decode
// becomes invalid. Count and InvalidCount are unaffected.
func (d *Decoder) SwapBuffer(buffer []byte) ([]byte, error) {
	if len(buffer) < minBufferSize() {
		return nil, ErrInsufficientBufferSize
	}
	old := d.buffer
	d.buffer = buffer
	d.Reset()
	log.Debugf("xsensmti/decoder: swapped %d-byte buffer for %d-byte buffer", len(old), len(buffer))
	return old, nil
}

// Count returns the number of frames successfully decoded so far.
// Saturates rather than wraps.
func (d *Decoder) Count() int {
	return d.count
}

// InvalidCount returns the number of times a frame was discarded due to a
// bad checksum or an out-of-range extended length. Saturates rather than
// wraps.
func (d *Decoder) InvalidCount() int {
	return d.invalidCount
}

// Decode feeds one byte into the state machine. It returns a non-nil Frame
// exactly when byte completes a checksum-valid frame; the returned Frame
// borrows the decoder's buffer and is invalidated by the next Decode or
// SwapBuffer call. A malformed frame (bad checksum, out-of-range extended
// length) is silently discarded and counted in InvalidCount; Decode never
// returns an error for malformed wire data, only for buffer exhaustion.
// Decode itself never logs or allocates; discards surface through
// InvalidCount and are reported by Feed, the chunk-level boundary.
func (d *Decoder) Decode(b byte) (*frame.Frame, error) {
	switch d.state {
	case statePreamble:
		if b == frame.Preamble {
			if err := d.feed(b); err != nil {
				return nil, err
			}
			// the checksum does not cover the preamble byte.
			d.accumulatedChecksum = 0
			d.state = stateBusID
		} else {
			d.Reset()
		}

	case stateBusID:
		if err := d.feed(b); err != nil {
			return nil, err
		}
		d.state = stateMsgID

	case stateMsgID:
		if err := d.feed(b); err != nil {
			return nil, err
		}
		d.state = stateLen

	case stateLen:
		if err := d.feed(b); err != nil {
			return nil, err
		}
		switch {
		case b == 0:
			d.rawPayloadLen = 0
			d.expectedFrameSize = frame.HeaderSize + frame.ChecksumSize
			d.state = stateChecksum
		case b == frame.StdLenIsExt:
			d.state = stateExtLenMsb
		default:
			d.rawPayloadLen = uint16(b)
			d.expectedFrameSize = frame.HeaderSize + frame.ChecksumSize + int(b)
			d.state = statePayload
		}

	case stateExtLenMsb:
		if err := d.feed(b); err != nil {
			return nil, err
		}
		d.rawPayloadLen = uint16(b)
		d.state = stateExtLenLsb

	case stateExtLenLsb:
		if err := d.feed(b); err != nil {
			return nil, err
		}
		d.rawPayloadLen = d.rawPayloadLen<<8 | uint16(b)
		if d.rawPayloadLen > frame.MaxExtendedPayload {
			d.Reset()
			d.incInvalidCount()
			return nil, nil
		}
		d.expectedFrameSize = frame.ExtHeaderSize + frame.ChecksumSize + int(d.rawPayloadLen)
		d.state = statePayload

	case statePayload:
		if err := d.feed(b); err != nil {
			return nil, err
		}
		if d.bytesRead+1 >= d.expectedFrameSize {
			d.state = stateChecksum
		}

	case stateChecksum:
		if err := d.feed(b); err != nil {
			return nil, err
		}
		sum := d.accumulatedChecksum
		bytesRead := d.bytesRead
		d.Reset()
		if sum&0xFF == 0 {
			f, err := frame.New(d.buffer[:bytesRead])
			if err != nil {
				d.incInvalidCount()
				return nil, nil
			}
			d.incCount()
			return &f, nil
		}
		d.incInvalidCount()
	}
	return nil, nil
}

// Feed decodes every byte in data, invoking fn for each complete frame
// before the following byte can overwrite it. data is typically whatever
// the transport's last read returned. Feed is the component boundary where
// decode outcomes are logged: frames discarded inside the chunk are
// reported with a single warning here, keeping the per-byte Decode loop
// free of logging and allocation. Feeding stops at the first buffer
// exhaustion error.
func (d *Decoder) Feed(data []byte, fn func(frame.Frame)) error {
	invalidBefore := d.invalidCount
	for i, b := range data {
		f, err := d.Decode(b)
		if err != nil {
			log.Warnf("xsensmti/decoder: %v at byte %d of %d-byte chunk", err, i, len(data))
			return err
		}
		if f != nil {
			log.Debugf("xsensmti/decoder: decoded %s", f.String())
			if fn != nil {
				fn(*f)
			}
		}
	}
	if n := d.invalidCount - invalidBefore; n > 0 {
		log.Warnf("xsensmti/decoder: discarded %d invalid frames in %d-byte chunk", n, len(data))
	}
	return nil
}

func (d *Decoder) feed(b byte) error {
	if d.bytesRead >= len(d.buffer) {
		// Drop the partial frame so the next preamble byte starts a fresh
		// attempt even if the caller keeps feeding after the error.
		d.Reset()
		return ErrInsufficientBufferSize
	}
	d.accumulatedChecksum += uint16(b)
	d.buffer[d.bytesRead] = b
	d.bytesRead++
	return nil
}

func (d *Decoder) incCount() {
	if d.count < int(^uint(0)>>1) {
		d.count++
	}
}

func (d *Decoder) incInvalidCount() {
	if d.invalidCount < int(^uint(0)>>1) {
		d.invalidCount++
	}
}
