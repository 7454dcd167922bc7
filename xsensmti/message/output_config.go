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

package message

import (
	"fmt"

	"github.com/cybergarage/go-xsens-mti/xsensmti/wire"
)

// OutputFrequency is the requested output rate for one data type, in Hz.
// 0 or OutputFrequencyMax both mean "as fast as possible".
type OutputFrequency uint16

// OutputFrequencyMax requests the maximum supported output frequency.
const OutputFrequencyMax OutputFrequency = 0xFFFF

// OutputConfiguration pairs a DataId with the frequency it should be
// streamed at.
type OutputConfiguration struct {
	DataID          wire.DataId
	OutputFrequency OutputFrequency
}

// OutputConfigurationWireSize is the on-wire byte size of one
// OutputConfiguration entry: a DataId followed by a uint16 frequency.
const OutputConfigurationWireSize = wire.DataIdWireSize + 2

// WriteOutputConfiguration encodes c into the leading
// OutputConfigurationWireSize bytes of buf.
func WriteOutputConfiguration(buf []byte, c OutputConfiguration) error {
	if len(buf) < OutputConfigurationWireSize {
		return wire.ErrMissingBytes
	}
	if err := wire.WriteDataId(buf, c.DataID); err != nil {
		return err
	}
	return wire.WriteUint16(buf[wire.DataIdWireSize:], uint16(c.OutputFrequency))
}

// ReadOutputConfiguration decodes one OutputConfiguration from the leading
// OutputConfigurationWireSize bytes of buf.
func ReadOutputConfiguration(buf []byte) (OutputConfiguration, error) {
	if len(buf) < OutputConfigurationWireSize {
		return OutputConfiguration{}, wire.ErrMissingBytes
	}
	id, err := wire.ReadDataId(buf)
	if err != nil {
		return OutputConfiguration{}, err
	}
	freq, err := wire.ReadUint16(buf[wire.DataIdWireSize:])
	if err != nil {
		return OutputConfiguration{}, err
	}
	return OutputConfiguration{DataID: id, OutputFrequency: OutputFrequency(freq)}, nil
}

func (c OutputConfiguration) String() string {
	return fmt.Sprintf("OutputConfiguration(%s, %dHz)", c.DataID, c.OutputFrequency)
}

// OutputConfigurationIter iterates fixed-size OutputConfiguration entries
// packed back-to-back, as carried in a SetOutputConfigurationAck payload.
type OutputConfigurationIter struct {
	buf []byte
}

// NewOutputConfigurationIter creates an iterator over buf.
func NewOutputConfigurationIter(buf []byte) *OutputConfigurationIter {
	return &OutputConfigurationIter{buf: buf}
}

// Next returns the next entry, or ok=false once fewer than
// OutputConfigurationWireSize bytes remain. A trailing partial entry is
// silently dropped.
func (it *OutputConfigurationIter) Next() (c OutputConfiguration, ok bool) {
	if len(it.buf) < OutputConfigurationWireSize {
		return OutputConfiguration{}, false
	}
	c, err := ReadOutputConfiguration(it.buf)
	if err != nil {
		return OutputConfiguration{}, false
	}
	it.buf = it.buf[OutputConfigurationWireSize:]
	return c, true
}
