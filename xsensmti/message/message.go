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

// Package message implements the fixed command and acknowledgement
// messages carried in a frame's message id byte and payload, built on top
// of the frame and mtdata2 packages.
package message

import (
	"errors"

	"github.com/cybergarage/go-xsens-mti/xsensmti/frame"
)

// ErrUnexpectedMessageID is returned when a frame does not carry the
// message id the decoder was asked for.
var ErrUnexpectedMessageID = errors.New("message: unexpected message id")

// ID identifies the kind of message a frame carries.
type ID uint8

// Known message ids.
const (
	IDGoToMeasurement        ID = 0x10
	IDGoToMeasurementAck     ID = 0x11
	IDGoToConfig             ID = 0x30
	IDGoToConfigAck          ID = 0x31
	IDSetOutputConfiguration ID = 0xC0
	IDSetOutputConfigAck     ID = 0xC1
	IDMTData2                ID = 0x36
)

// GoToConfig switches the device from Measurement State to Config State.
// Sent in Measurement State as a command, or in Config State to confirm
// that Config State is already active.
type GoToConfig struct{}

// ID returns the message id GoToConfig frames carry.
func (GoToConfig) ID() ID { return IDGoToConfig }

// EncodeFrame writes GoToConfig's message id and empty payload into f.
func (GoToConfig) EncodeFrame(f frame.Frame) {
	f.SetMessageID(uint8(IDGoToConfig))
	f.SetPayloadLength(mustStandardLength(0))
}

// GoToConfigAck confirms a GoToConfig request.
type GoToConfigAck struct{}

// ID returns the message id GoToConfigAck frames carry.
func (GoToConfigAck) ID() ID { return IDGoToConfigAck }

// EncodeFrame writes GoToConfigAck's message id and empty payload into f.
func (GoToConfigAck) EncodeFrame(f frame.Frame) {
	f.SetMessageID(uint8(IDGoToConfigAck))
	f.SetPayloadLength(mustStandardLength(0))
}

// NewGoToConfigAckFromFrame decodes a GoToConfigAck from f, failing with
// ErrUnexpectedMessageID if f carries some other message.
func NewGoToConfigAckFromFrame(f frame.Frame) (GoToConfigAck, error) {
	if f.MessageID() != uint8(IDGoToConfigAck) {
		return GoToConfigAck{}, ErrUnexpectedMessageID
	}
	return GoToConfigAck{}, nil
}

// GoToMeasurement switches the device from Config State to Measurement
// State, where it begins streaming MTData2 messages.
type GoToMeasurement struct{}

// ID returns the message id GoToMeasurement frames carry.
func (GoToMeasurement) ID() ID { return IDGoToMeasurement }

// EncodeFrame writes GoToMeasurement's message id and empty payload into f.
func (GoToMeasurement) EncodeFrame(f frame.Frame) {
	f.SetMessageID(uint8(IDGoToMeasurement))
	f.SetPayloadLength(mustStandardLength(0))
}

// GoToMeasurementAck confirms a GoToMeasurement request.
type GoToMeasurementAck struct{}

// ID returns the message id GoToMeasurementAck frames carry.
func (GoToMeasurementAck) ID() ID { return IDGoToMeasurementAck }

// EncodeFrame writes GoToMeasurementAck's message id and empty payload into f.
func (GoToMeasurementAck) EncodeFrame(f frame.Frame) {
	f.SetMessageID(uint8(IDGoToMeasurementAck))
	f.SetPayloadLength(mustStandardLength(0))
}

// NewGoToMeasurementAckFromFrame decodes a GoToMeasurementAck from f,
// failing with ErrUnexpectedMessageID if f carries some other message.
func NewGoToMeasurementAckFromFrame(f frame.Frame) (GoToMeasurementAck, error) {
	if f.MessageID() != uint8(IDGoToMeasurementAck) {
		return GoToMeasurementAck{}, ErrUnexpectedMessageID
	}
	return GoToMeasurementAck{}, nil
}

func mustStandardLength(n uint8) frame.PayloadLength {
	pl, err := frame.NewStandardPayloadLength(n)
	if err != nil {
		// n is always a compile-time-known small constant here.
		panic(err)
	}
	return pl
}
