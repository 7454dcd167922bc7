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
	"errors"

	"github.com/cybergarage/go-xsens-mti/xsensmti/frame"
)

// MaxOutputSettings is the largest number of OutputConfiguration entries a
// single SetOutputConfiguration message may carry: at MaxOutputSettings
// entries of OutputConfigurationWireSize bytes each, the payload still
// fits comfortably within a standard-length frame.
const MaxOutputSettings = 32

// ErrTooManyOutputConfigurations is returned by NewSetOutputConfiguration
// when more than MaxOutputSettings entries are supplied.
var ErrTooManyOutputConfigurations = errors.New("message: too many output configurations")

// SetOutputConfiguration requests the device stream the named data types
// at the given frequencies, replacing its current output configuration.
type SetOutputConfiguration struct {
	Settings []OutputConfiguration
}

// ID returns the message id SetOutputConfiguration frames carry.
func (SetOutputConfiguration) ID() ID { return IDSetOutputConfiguration }

// NewSetOutputConfiguration builds a SetOutputConfiguration, failing if
// settings holds more than MaxOutputSettings entries.
func NewSetOutputConfiguration(settings []OutputConfiguration) (SetOutputConfiguration, error) {
	if len(settings) > MaxOutputSettings {
		return SetOutputConfiguration{}, ErrTooManyOutputConfigurations
	}
	return SetOutputConfiguration{Settings: settings}, nil
}

// EncodeFrame writes the message id, payload length, and packed
// OutputConfiguration entries into f. f's backing buffer must be at least
// frame.BufferLen(OutputConfigurationWireSize*len(m.Settings)) long.
func (m SetOutputConfiguration) EncodeFrame(f frame.Frame) error {
	if len(m.Settings) > MaxOutputSettings {
		return ErrTooManyOutputConfigurations
	}
	pl, err := frame.NewPayloadLength(OutputConfigurationWireSize * len(m.Settings))
	if err != nil {
		return err
	}
	f.SetMessageID(uint8(IDSetOutputConfiguration))
	f.SetPayloadLength(pl)
	payload, err := f.PayloadMut()
	if err != nil {
		return err
	}
	for i, s := range m.Settings {
		off := i * OutputConfigurationWireSize
		if err := WriteOutputConfiguration(payload[off:], s); err != nil {
			return err
		}
	}
	return nil
}

// SetOutputConfigurationAck is the device's reply to SetOutputConfiguration,
// echoing back the output configuration actually in effect.
type SetOutputConfigurationAck struct {
	Payload []byte
}

// ID returns the message id SetOutputConfigurationAck frames carry.
func (SetOutputConfigurationAck) ID() ID { return IDSetOutputConfigAck }

// NewSetOutputConfigurationAckFromFrame decodes an ack from f, failing
// with ErrUnexpectedMessageID if f carries some other message. The ack
// borrows f's payload bytes.
func NewSetOutputConfigurationAckFromFrame(f frame.Frame) (SetOutputConfigurationAck, error) {
	if f.MessageID() != uint8(IDSetOutputConfigAck) {
		return SetOutputConfigurationAck{}, ErrUnexpectedMessageID
	}
	payload, err := f.Payload()
	if err != nil {
		return SetOutputConfigurationAck{}, err
	}
	return SetOutputConfigurationAck{Payload: payload}, nil
}

// Iter returns an iterator over the acknowledged OutputConfiguration
// entries.
func (a SetOutputConfigurationAck) Iter() *OutputConfigurationIter {
	return NewOutputConfigurationIter(a.Payload)
}
