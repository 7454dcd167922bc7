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
	"github.com/cybergarage/go-xsens-mti/xsensmti/mtdata2"
)

// ErrNotMTData2 is returned by NewMTData2FromFrame when f's message id is
// not IDMTData2.
var ErrNotMTData2 = errors.New("message: frame is not an MTData2 message")

// MTData2 wraps a frame whose message id is IDMTData2, exposing its payload
// as a sequence of nested measurement packets.
type MTData2 struct {
	payload []byte
}

// ID returns the message id MTData2 frames carry.
func (MTData2) ID() ID { return IDMTData2 }

// NewMTData2FromFrame wraps f as an MTData2 message, failing with
// ErrNotMTData2 if f does not carry that message id.
func NewMTData2FromFrame(f frame.Frame) (MTData2, error) {
	if f.MessageID() != uint8(IDMTData2) {
		return MTData2{}, ErrNotMTData2
	}
	payload, err := f.Payload()
	if err != nil {
		return MTData2{}, err
	}
	return MTData2{payload: payload}, nil
}

// Packets returns an iterator over the message's concatenated measurement
// packets. See mtdata2.Iter for the iteration discipline (a truncated
// trailing packet stops iteration; Iter.Err reports it).
func (m MTData2) Packets() *mtdata2.Iter {
	return mtdata2.NewIter(m.payload)
}
