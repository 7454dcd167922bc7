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

// SampleTimeWireSize is the on-wire byte size of both SampleTimeFine and
// SampleTimeCoarse packet payloads.
const SampleTimeWireSize = 4

// SampleTimeFineFromBESlice decodes the sample time, in units of 100
// microseconds, counted from device startup or last sync/reset.
func SampleTimeFineFromBESlice(bytes []byte) (uint32, error) {
	return wire.ReadUint32(bytes)
}

// SampleTimeCoarseFromBESlice decodes the sample time, in whole seconds,
// counted from device startup or last sync/reset.
func SampleTimeCoarseFromBESlice(bytes []byte) (uint32, error) {
	return wire.ReadUint32(bytes)
}
