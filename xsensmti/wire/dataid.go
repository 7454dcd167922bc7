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

package wire

import "fmt"

// dataTypeMask names the type and group bits that identify a DataType:
// bits 4-7 and 11-15. Every named DataType constant fits this mask; bits
// 8-10 are reserved and zero in all of them.
const dataTypeMask uint16 = 0b1111_1000_1111_0000

// lowFieldsMask covers the precision bits (B0:B1) and the coordinate
// system bits (B2:B3). Everything above it, reserved bits included, is
// carried in the DataType field so an identifier round-trips losslessly.
const lowFieldsMask uint16 = 0b1111

// Precision identifies the numeric representation of a measurement's field
// values. The field is two bits wide and all four values are defined, so
// there is no unknown case.
type Precision uint8

// Known Precision values, bits 0-1 of a DataId's low byte.
const (
	PrecisionFloat32 Precision = 0x0
	PrecisionFp1220  Precision = 0x1
	PrecisionFp1632  Precision = 0x2
	PrecisionFloat64 Precision = 0x3
)

// precisionMask isolates the 2-bit precision field.
const precisionMask uint16 = 0b11

// NewPrecision converts a raw 2-bit value into a Precision. All four
// possible values are known, so this never produces an unrecognized
// variant, but the function is kept symmetric with CoordinateSystem and
// DataType for callers that treat the three fields uniformly.
func NewPrecision(raw uint8) Precision {
	return Precision(raw & 0x3)
}

// Raw returns the wire-level 2-bit value of the precision.
func (p Precision) Raw() uint8 {
	return uint8(p) & 0x3
}

// WireSize returns the byte width of a field encoded with this precision.
func (p Precision) WireSize() int {
	switch p {
	case PrecisionFloat32, PrecisionFp1220:
		return 4
	case PrecisionFloat64, PrecisionFp1632:
		return 8
	default:
		return 4
	}
}

func (p Precision) String() string {
	switch p {
	case PrecisionFloat32:
		return "Float32"
	case PrecisionFp1220:
		return "Fp1220"
	case PrecisionFp1632:
		return "Fp1632"
	case PrecisionFloat64:
		return "Float64"
	default:
		return fmt.Sprintf("Precision(0x%X)", uint8(p))
	}
}

// CoordinateSystem is the axis convention a measurement is expressed in.
// Unknown raw values (anything other than 0x0/0x4/0x8) are preserved as-is.
type CoordinateSystem uint8

// Known CoordinateSystem values, bits 2-3 of a DataId's low byte.
const (
	CoordinateSystemENU CoordinateSystem = 0x0
	CoordinateSystemNED CoordinateSystem = 0x4
	CoordinateSystemNWU CoordinateSystem = 0x8
)

// coordinateSystemMask isolates the coordinate system bits within the low byte.
const coordinateSystemMask uint16 = 0b1100

// NewCoordinateSystem converts a raw value masked to bits 2-3 but not
// shifted (one of 0x0/0x4/0x8/0xC) into a CoordinateSystem, preserving
// any value outside the three known ones.
func NewCoordinateSystem(raw uint8) CoordinateSystem {
	return CoordinateSystem(raw)
}

// Raw returns the wire-level value of the coordinate system.
func (c CoordinateSystem) Raw() uint8 {
	return uint8(c)
}

// Known reports whether c is one of the three defined coordinate systems.
func (c CoordinateSystem) Known() bool {
	switch c {
	case CoordinateSystemENU, CoordinateSystemNED, CoordinateSystemNWU:
		return true
	default:
		return false
	}
}

func (c CoordinateSystem) String() string {
	switch c {
	case CoordinateSystemENU:
		return "ENU"
	case CoordinateSystemNED:
		return "NED"
	case CoordinateSystemNWU:
		return "NWU"
	default:
		return fmt.Sprintf("CoordinateSystem(0x%X)", uint8(c))
	}
}

// DataType identifies the kind of measurement an MTData2 packet carries.
// Values outside the named set are preserved as-is so protocol evolution
// never forces a decode failure at this layer.
type DataType uint16

// Known DataType values. Comments note the XDI group each belongs to.
const (
	DataTypeTemperature       DataType = 0x0810 // TemperatureGroup
	DataTypeUtcTime           DataType = 0x1010 // TimestampGroup
	DataTypePacketCounter     DataType = 0x1020
	DataTypeSampleTimeFine    DataType = 0x1060
	DataTypeSampleTimeCoarse  DataType = 0x1070
	DataTypeQuaternion        DataType = 0x2010 // OrientationGroup
	DataTypeEulerAngles       DataType = 0x2030
	DataTypeAcceleration      DataType = 0x4020 // AccelerationGroup
	DataTypeAltitudeEllipsoid DataType = 0x5020 // PositionGroup
	DataTypePositionEcef      DataType = 0x5030
	DataTypeLatLon            DataType = 0x5040
	DataTypeRateOfTurn        DataType = 0x8020 // AngularVelocityGroup
	DataTypeMagneticField     DataType = 0xC020 // MagneticGroup
	DataTypeVelocityXYZ       DataType = 0xD010 // VelocityGroup
	DataTypeStatusByte        DataType = 0xE010 // StatusGroup
	DataTypeStatusWord        DataType = 0xE020
)

var dataTypeNames = map[DataType]string{
	DataTypeTemperature:       "Temperature",
	DataTypeUtcTime:           "UtcTime",
	DataTypePacketCounter:     "PacketCounter",
	DataTypeSampleTimeFine:    "SampleTimeFine",
	DataTypeSampleTimeCoarse:  "SampleTimeCoarse",
	DataTypeQuaternion:        "Quaternion",
	DataTypeEulerAngles:       "EulerAngles",
	DataTypeAcceleration:      "Acceleration",
	DataTypeAltitudeEllipsoid: "AltitudeEllipsoid",
	DataTypePositionEcef:      "PositionEcef",
	DataTypeLatLon:            "LatLon",
	DataTypeRateOfTurn:        "RateOfTurn",
	DataTypeMagneticField:     "MagneticField",
	DataTypeVelocityXYZ:       "VelocityXYZ",
	DataTypeStatusByte:        "StatusByte",
	DataTypeStatusWord:        "StatusWord",
}

// NewDataType strips the precision and coordinate system bits from raw and
// reports the known DataType the rest names, or that value itself if it
// names none. Reserved bits 8-10 make a value unknown rather than being
// discarded, so conversion back to the wire reproduces them.
func NewDataType(raw uint16) DataType {
	return DataType(raw &^ lowFieldsMask)
}

// Raw returns the wire-level bits of the data type.
func (d DataType) Raw() uint16 {
	return uint16(d) &^ lowFieldsMask
}

// Known reports whether d is one of the data types this package names.
func (d DataType) Known() bool {
	_, ok := dataTypeNames[d]
	return ok
}

func (d DataType) String() string {
	if name, ok := dataTypeNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%04X)", uint16(d))
}

// DataId is the 16-bit composite identifier at the head of every MTData2
// packet: a DataType (bits 4-15; named types use only bits 4-7 and 11-15),
// a CoordinateSystem (bits 2-3), and a Precision (bits 0-1).
type DataId struct {
	DataType         DataType
	Precision        Precision
	CoordinateSystem CoordinateSystem
}

// NewDataId builds a DataId from its three components.
func NewDataId(dataType DataType, precision Precision, coordinateSystem CoordinateSystem) DataId {
	return DataId{DataType: dataType, Precision: precision, CoordinateSystem: coordinateSystem}
}

// NewDataIdFromType builds a DataId for dataType with the default precision
// (Float32) and coordinate system (ENU), for callers that only know the
// data type ahead of time (e.g. building an output-configuration request).
func NewDataIdFromType(dataType DataType) DataId {
	return DataId{DataType: dataType, Precision: PrecisionFloat32, CoordinateSystem: CoordinateSystemENU}
}

// FromWire decomposes a raw 16-bit wire value into a DataId. Values whose
// data type, precision, or coordinate system lies outside the known set are
// preserved as-is, so ToWire(FromWire(w)) == w for every w.
func FromWire(value uint16) DataId {
	return DataId{
		DataType:         NewDataType(value),
		Precision:        NewPrecision(uint8(value & precisionMask)),
		CoordinateSystem: NewCoordinateSystem(uint8(value & coordinateSystemMask)),
	}
}

// ToWire encodes the DataId back into its 16-bit wire representation.
func (d DataId) ToWire() uint16 {
	groupType := d.DataType.Raw()
	precision := precisionMask & uint16(d.Precision.Raw())
	coordinateSystem := coordinateSystemMask & uint16(d.CoordinateSystem.Raw())
	return groupType | coordinateSystem | precision
}

func (d DataId) String() string {
	return fmt.Sprintf("DataId(0x%04X, %s, %s, %s)", d.ToWire(), d.DataType, d.Precision, d.CoordinateSystem)
}

// DataIdWireSize is the on-wire byte width of a DataId field.
const DataIdWireSize = 2

// ReadDataId reads a DataId from the leading two bytes of buf.
func ReadDataId(buf []byte) (DataId, error) {
	v, err := ReadUint16(buf)
	if err != nil {
		return DataId{}, err
	}
	return FromWire(v), nil
}

// WriteDataId writes d into the leading two bytes of buf.
func WriteDataId(buf []byte, d DataId) error {
	return WriteUint16(buf, d.ToWire())
}
