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

import "github.com/cybergarage/go-xsens-mti/xsensmti/wire"

// PacketCounterWireSize is the on-wire byte size of a PacketCounter packet payload.
const PacketCounterWireSize = 2

// PacketCounterFromBESlice decodes a free-running 16-bit packet counter
// from big-endian bytes. Wraps at 0xFFFF back to 0.
func PacketCounterFromBESlice(bytes []byte) (uint16, error) {
	return wire.ReadUint16(bytes)
}
