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

// UtcTimeFlags is the UtcTime packet's trailing status bitfield.
type UtcTimeFlags uint8

// TimeOfWeekValid reports whether the time-of-week field is valid.
func (f UtcTimeFlags) TimeOfWeekValid() bool { return f&0x01 != 0 }

// WeekNumberValid reports whether the week-number field is valid.
func (f UtcTimeFlags) WeekNumberValid() bool { return f&0x02 != 0 }

// UtcValid reports whether the UTC time itself is valid. Note: per the
// device manual, it takes up to 12.5 minutes after acquiring a fix for this
// flag to go valid, correcting for receiver clock bias; synchronizing
// against UTC should wait for this flag.
func (f UtcTimeFlags) UtcValid() bool { return f&0x04 != 0 }

func (f UtcTimeFlags) String() string {
	return fmt.Sprintf("Flags(0x%02X: ToW(%t), WN(%t), UTC(%t))", uint8(f), f.TimeOfWeekValid(), f.WeekNumberValid(), f.UtcValid())
}

// UtcTime is the timestamp expressed as UTC time.
type UtcTime struct {
	Year   uint16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
	Ns     uint32
	Flags  UtcTimeFlags
}

// UtcTimeWireSize is the on-wire byte size of a UtcTime packet payload.
const UtcTimeWireSize = 12

const (
	utcFieldNs     = 0 // 0:4
	utcFieldYear   = 4 // 4:6
	utcFieldMonth  = 6
	utcFieldDay    = 7
	utcFieldHour   = 8
	utcFieldMinute = 9
	utcFieldSecond = 10
	utcFieldFlags  = 11
)

// UtcTimeFromBESlice decodes a UtcTime from big-endian bytes.
func UtcTimeFromBESlice(bytes []byte) (UtcTime, error) {
	if len(bytes) < UtcTimeWireSize {
		return UtcTime{}, wire.ErrMissingBytes
	}
	ns, err := wire.ReadUint32(bytes[utcFieldNs : utcFieldNs+4])
	if err != nil {
		return UtcTime{}, err
	}
	year, err := wire.ReadUint16(bytes[utcFieldYear : utcFieldYear+2])
	if err != nil {
		return UtcTime{}, err
	}
	return UtcTime{
		Ns:     ns,
		Year:   year,
		Month:  bytes[utcFieldMonth],
		Day:    bytes[utcFieldDay],
		Hour:   bytes[utcFieldHour],
		Minute: bytes[utcFieldMinute],
		Second: bytes[utcFieldSecond],
		Flags:  UtcTimeFlags(bytes[utcFieldFlags]),
	}, nil
}

func (t UtcTime) String() string {
	return fmt.Sprintf("%s %04d-%02d-%02d %02d:%02d:%02d.%d", t.Flags, t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second, t.Ns)
}
