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
	"fmt"

	"github.com/cybergarage/go-xsens-mti/xsensmti/wire"
)

// StatusWordWireSize is the on-wire byte size of a StatusWord packet payload.
const StatusWordWireSize = 4

// StatusWord is the device's 32-bit status bitfield. Only the low three
// bits are defined by this decoder; the remaining bits are preserved in
// the StatusWord value itself for callers that need them.
type StatusWord uint32

// StatusWordFromBESlice decodes a StatusWord from big-endian bytes.
func StatusWordFromBESlice(bytes []byte) (StatusWord, error) {
	v, err := wire.ReadUint32(bytes)
	if err != nil {
		return 0, err
	}
	return StatusWord(v), nil
}

// SelfTestOk reports whether the device passed its self test (bit 0).
func (s StatusWord) SelfTestOk() bool { return s&0x01 != 0 }

// FilterValid reports whether the orientation filter has converged (bit 1).
func (s StatusWord) FilterValid() bool { return s&0x02 != 0 }

// GnssFix reports whether the GNSS receiver has a fix (bit 2).
func (s StatusWord) GnssFix() bool { return s&0x04 != 0 }

func (s StatusWord) String() string {
	return fmt.Sprintf("StatusWord(0x%08X: SelfTest(%t), FilterValid(%t), GnssFix(%t))",
		uint32(s), s.SelfTestOk(), s.FilterValid(), s.GnssFix())
}
