package gosnmp

// Copyright 2012-2016 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

import "fmt"

// ValueKind discriminates the possible contents of a Value.
type ValueKind int

// The tagged union of values a variable binding may carry.
const (
	ValueBool ValueKind = iota
	ValueInt
	ValueNull
	ValueOctetString
	ValueOid
	ValueObjectDescriptor
	ValueReal
	ValueIPAddress
	ValueCounter32
	ValueGauge32
	ValueTimeTicks
	ValueOpaque
	ValueCounter64
	ValueUInteger32
	ValueNoSuchObject
	ValueNoSuchInstance
	ValueEndOfMibView
)

// Value is the tagged union returned inside a variable binding. Only
// the field matching Kind is meaningful. Byte-slice and ObjectID fields
// borrow from the receive buffer until the caller copies them.
type Value struct {
	Kind ValueKind

	boolVal       bool
	intVal        int64
	octetString   []byte
	oid           ObjectID
	descriptor    []byte
	realVal       float64
	ipAddress     IPAddress
	counter32     uint32
	gauge32       uint32
	timeTicks     uint32
	opaque        []byte
	counter64     uint64
	uinteger32    uint32
}

func NewBoolValue(v bool) Value         { return Value{Kind: ValueBool, boolVal: v} }
func NewIntValue(v int64) Value         { return Value{Kind: ValueInt, intVal: v} }
func NewNullValue() Value               { return Value{Kind: ValueNull} }
func NewOctetStringValue(v []byte) Value { return Value{Kind: ValueOctetString, octetString: v} }
func NewOidValue(v ObjectID) Value      { return Value{Kind: ValueOid, oid: v} }
func NewObjectDescriptorValue(v []byte) Value {
	return Value{Kind: ValueObjectDescriptor, descriptor: v}
}
func NewRealValue(v float64) Value            { return Value{Kind: ValueReal, realVal: v} }
func NewIPAddressValue(v IPAddress) Value     { return Value{Kind: ValueIPAddress, ipAddress: v} }
func NewCounter32Value(v uint32) Value        { return Value{Kind: ValueCounter32, counter32: v} }
func NewGauge32Value(v uint32) Value          { return Value{Kind: ValueGauge32, gauge32: v} }
func NewTimeTicksValue(v uint32) Value        { return Value{Kind: ValueTimeTicks, timeTicks: v} }
func NewOpaqueValue(v []byte) Value           { return Value{Kind: ValueOpaque, opaque: v} }
func NewCounter64Value(v uint64) Value        { return Value{Kind: ValueCounter64, counter64: v} }
func NewUInteger32Value(v uint32) Value       { return Value{Kind: ValueUInteger32, uinteger32: v} }
func NewNoSuchObjectValue() Value             { return Value{Kind: ValueNoSuchObject} }
func NewNoSuchInstanceValue() Value           { return Value{Kind: ValueNoSuchInstance} }
func NewEndOfMibViewValue() Value             { return Value{Kind: ValueEndOfMibView} }

func (v Value) Bool() bool             { return v.boolVal }
func (v Value) Int() int64             { return v.intVal }
func (v Value) OctetString() []byte    { return v.octetString }
func (v Value) Oid() ObjectID          { return v.oid }
func (v Value) ObjectDescriptor() []byte { return v.descriptor }
func (v Value) Real() float64          { return v.realVal }
func (v Value) IPAddress() IPAddress   { return v.ipAddress }
func (v Value) Counter32() uint32      { return v.counter32 }
func (v Value) Gauge32() uint32        { return v.gauge32 }
func (v Value) TimeTicks() uint32      { return v.timeTicks }
func (v Value) Opaque() []byte         { return v.opaque }
func (v Value) Counter64() uint64      { return v.counter64 }
func (v Value) UInteger32() uint32     { return v.uinteger32 }

// IsExceptional reports whether the value is one of the three
// context-tagged placeholders a GetResponse may return instead of real
// data (NoSuchObject, NoSuchInstance, EndOfMibView).
func (v Value) IsExceptional() bool {
	switch v.Kind {
	case ValueNoSuchObject, ValueNoSuchInstance, ValueEndOfMibView:
		return true
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.Kind {
	case ValueBool:
		return fmt.Sprintf("%v", v.boolVal)
	case ValueInt:
		return fmt.Sprintf("%d", v.intVal)
	case ValueNull:
		return "NULL"
	case ValueOctetString:
		return fmt.Sprintf("%q", v.octetString)
	case ValueOid:
		return v.oid.String()
	case ValueObjectDescriptor:
		return string(v.descriptor)
	case ValueReal:
		return fmt.Sprintf("%g", v.realVal)
	case ValueIPAddress:
		return v.ipAddress.String()
	case ValueCounter32:
		return fmt.Sprintf("%d", v.counter32)
	case ValueGauge32:
		return fmt.Sprintf("%d", v.gauge32)
	case ValueTimeTicks:
		return fmt.Sprintf("%d", v.timeTicks)
	case ValueOpaque:
		return fmt.Sprintf("%x", v.opaque)
	case ValueCounter64:
		return fmt.Sprintf("%d", v.counter64)
	case ValueUInteger32:
		return fmt.Sprintf("%d", v.uinteger32)
	case ValueNoSuchObject:
		return "noSuchObject"
	case ValueNoSuchInstance:
		return "noSuchInstance"
	case ValueEndOfMibView:
		return "endOfMibView"
	default:
		return "<unknown>"
	}
}

// decodeValue peeks the header of data and dispatches to the matching
// decoder, covering every member of the SnmpValue union.
func decodeValue(data []byte) (Value, []byte, error) {
	h, err := parseHeader(data)
	if err != nil {
		return Value{}, nil, err
	}
	switch h.class {
	case ClassUniversal:
		switch h.tag {
		case tagBoolean:
			v, rest, err := decodeBoolean(data)
			return NewBoolValue(v), rest, err
		case tagInteger:
			v, rest, err := decodeInteger(data)
			return NewIntValue(v), rest, err
		case tagNull:
			rest, err := decodeNull(data)
			return NewNullValue(), rest, err
		case tagOctetString:
			v, rest, err := decodeOctetString(data)
			return NewOctetStringValue(v), rest, err
		case tagObjectIdentifier:
			v, rest, err := decodeObjectID(data)
			return NewOidValue(v), rest, err
		case tagObjectDescriptor:
			v, rest, err := decodeObjectDescriptor(data)
			return NewObjectDescriptorValue(v), rest, err
		case tagReal:
			v, rest, err := decodeReal(data)
			return NewRealValue(v), rest, err
		default:
			return Value{}, nil, newErr(KindUnexpectedTag, "unsupported universal value tag")
		}
	case ClassApplication:
		switch h.tag {
		case tagIPAddress:
			v, rest, err := decodeIPAddress(data)
			return NewIPAddressValue(v), rest, err
		case tagCounter32:
			v, rest, err := decodeCounter32(data)
			return NewCounter32Value(v), rest, err
		case tagGauge32:
			v, rest, err := decodeGauge32(data)
			return NewGauge32Value(v), rest, err
		case tagTimeTicks:
			v, rest, err := decodeTimeTicks(data)
			return NewTimeTicksValue(v), rest, err
		case tagOpaque:
			v, rest, err := decodeOpaque(data)
			return NewOpaqueValue(v), rest, err
		case tagCounter64:
			v, rest, err := decodeCounter64(data)
			return NewCounter64Value(v), rest, err
		case tagUInteger32:
			v, rest, err := decodeUInteger32(data)
			return NewUInteger32Value(v), rest, err
		default:
			return Value{}, nil, newErr(KindUnexpectedTag, "unsupported application value tag")
		}
	case ClassContext:
		switch h.tag {
		case tagNoSuchObject:
			rest, err := decodeContextPrimitive(data, tagNoSuchObject)
			return NewNoSuchObjectValue(), rest, err
		case tagNoSuchInstance:
			rest, err := decodeContextPrimitive(data, tagNoSuchInstance)
			return NewNoSuchInstanceValue(), rest, err
		case tagEndOfMibView:
			rest, err := decodeContextPrimitive(data, tagEndOfMibView)
			return NewEndOfMibViewValue(), rest, err
		default:
			return Value{}, nil, newErr(KindUnexpectedTag, "unsupported context value tag")
		}
	default:
		return Value{}, nil, newErr(KindUnexpectedTag, "unsupported value class")
	}
}

// encodeValue dispatches Value.Kind to the matching encoder.
func encodeValue(buf *Buffer, v Value) error {
	switch v.Kind {
	case ValueBool:
		return encodeBoolean(buf, v.boolVal)
	case ValueInt:
		return encodeInteger(buf, v.intVal)
	case ValueNull:
		return encodeNull(buf)
	case ValueOctetString:
		return encodeOctetString(buf, v.octetString)
	case ValueOid:
		return encodeObjectID(buf, v.oid)
	case ValueObjectDescriptor:
		return encodeObjectDescriptor(buf, v.descriptor)
	case ValueReal:
		return encodeReal(buf, v.realVal)
	case ValueIPAddress:
		return encodeIPAddress(buf, v.ipAddress)
	case ValueCounter32:
		return encodeUnsignedApplication(buf, tagCounter32, v.counter32)
	case ValueGauge32:
		return encodeUnsignedApplication(buf, tagGauge32, v.gauge32)
	case ValueTimeTicks:
		return encodeUnsignedApplication(buf, tagTimeTicks, v.timeTicks)
	case ValueOpaque:
		return encodeOpaque(buf, v.opaque)
	case ValueCounter64:
		return encodeCounter64(buf, v.counter64)
	case ValueUInteger32:
		return encodeUnsignedApplication(buf, tagUInteger32, v.uinteger32)
	case ValueNoSuchObject:
		return encodeContextPrimitive(buf, tagNoSuchObject)
	case ValueNoSuchInstance:
		return encodeContextPrimitive(buf, tagNoSuchInstance)
	case ValueEndOfMibView:
		return encodeContextPrimitive(buf, tagEndOfMibView)
	default:
		return newErr(KindInvalidData, "unknown value kind")
	}
}
