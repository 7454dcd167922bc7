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

// Package frame implements the outer MT message envelope: preamble, bus id,
// message id, standard/extended length, payload, and checksum.
package frame

import "errors"

// Centralized error variables returned by Frame validation.
var (
	// ErrMissingHeader indicates the buffer is too short to hold even the
	// standard 4-byte header.
	ErrMissingHeader = errors.New("frame: missing header")
	// ErrMissingChecksum indicates the buffer is too short to hold a
	// trailing checksum byte after the header.
	ErrMissingChecksum = errors.New("frame: missing checksum")
	// ErrInvalidPreamble indicates the first byte is not 0xFA.
	ErrInvalidPreamble = errors.New("frame: invalid preamble")
	// ErrInvalidPayloadLength indicates an extended length exceeds
	// MaxExtendedPayload.
	ErrInvalidPayloadLength = errors.New("frame: invalid payload length")
	// ErrIncompletePayload indicates the declared payload plus checksum
	// byte would overrun the buffer.
	ErrIncompletePayload = errors.New("frame: incomplete payload")
	// ErrInvalidChecksum indicates the checksum byte sum modulo 256 is
	// nonzero.
	ErrInvalidChecksum = errors.New("frame: invalid checksum")
)
