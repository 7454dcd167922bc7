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
	"testing"

	"github.com/cybergarage/go-xsens-mti/xsensmti/frame"
	"github.com/cybergarage/go-xsens-mti/xsensmti/wire"
	"github.com/stretchr/testify/require"
)

func TestNewSetOutputConfigurationRejectsTooMany(t *testing.T) {
	settings := make([]OutputConfiguration, MaxOutputSettings+1)
	_, err := NewSetOutputConfiguration(settings)
	require.ErrorIs(t, err, ErrTooManyOutputConfigurations)
}

func TestSetOutputConfigurationEncodeFrame(t *testing.T) {
	settings := []OutputConfiguration{
		{DataID: wire.NewDataIdFromType(wire.DataTypeAcceleration), OutputFrequency: 100},
		{DataID: wire.NewDataIdFromType(wire.DataTypeEulerAngles), OutputFrequency: 100},
	}
	m, err := NewSetOutputConfiguration(settings)
	require.NoError(t, err)

	buf := make([]byte, frame.BufferLen(OutputConfigurationWireSize*len(settings)))
	f := frame.NewUnchecked(buf)
	f.SetPreamble()
	f.SetBusID(0x01)
	require.NoError(t, m.EncodeFrame(f))

	require.Equal(t, uint8(IDSetOutputConfiguration), f.MessageID())
	payload, err := f.Payload()
	require.NoError(t, err)
	require.Len(t, payload, OutputConfigurationWireSize*len(settings))

	sum, err := f.ComputeChecksum()
	require.NoError(t, err)
	require.NoError(t, f.SetChecksum(uint8(-int(sum))))

	parsed, err := frame.New(buf)
	require.NoError(t, err)
	parsedPayload, err := parsed.Payload()
	require.NoError(t, err)

	it := NewOutputConfigurationIter(parsedPayload)
	var got []OutputConfiguration
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, c)
	}
	require.Equal(t, settings, got)
}

func TestSetOutputConfigurationAckFromFrame(t *testing.T) {
	payload := make([]byte, OutputConfigurationWireSize)
	require.NoError(t, WriteOutputConfiguration(payload, OutputConfiguration{
		DataID:          wire.NewDataIdFromType(wire.DataTypeLatLon),
		OutputFrequency: 4,
	}))

	buf := make([]byte, frame.BufferLen(len(payload)))
	f := frame.NewUnchecked(buf)
	f.SetPreamble()
	f.SetBusID(0xFF)
	f.SetMessageID(uint8(IDSetOutputConfigAck))
	pl, err := frame.NewPayloadLength(len(payload))
	require.NoError(t, err)
	f.SetPayloadLength(pl)
	mut, err := f.PayloadMut()
	require.NoError(t, err)
	copy(mut, payload)
	sum, err := f.ComputeChecksum()
	require.NoError(t, err)
	require.NoError(t, f.SetChecksum(uint8(-int(sum))))

	parsed, err := frame.New(buf)
	require.NoError(t, err)
	ack, err := NewSetOutputConfigurationAckFromFrame(parsed)
	require.NoError(t, err)
	c, ok := ack.Iter().Next()
	require.True(t, ok)
	require.Equal(t, wire.DataTypeLatLon, c.DataID.DataType)
	require.Equal(t, OutputFrequency(4), c.OutputFrequency)
}

func TestSetOutputConfigurationAckIter(t *testing.T) {
	settings := []OutputConfiguration{
		{DataID: wire.NewDataIdFromType(wire.DataTypeAcceleration), OutputFrequency: 100},
	}
	buf := make([]byte, OutputConfigurationWireSize)
	require.NoError(t, WriteOutputConfiguration(buf, settings[0]))

	ack := SetOutputConfigurationAck{Payload: buf}
	c, ok := ack.Iter().Next()
	require.True(t, ok)
	require.Equal(t, settings[0], c)
}
