package snmp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/damianoneill/go-snmp/snmp/ber"
)

// DataType identifies which ObjectSyntax variant a value holds. It mirrors
// the teacher's DataType enumeration, extended with the three exception
// singletons spec.md §3 requires.
type DataType int

// Supported ObjectSyntax variants.
const (
	TypeInteger DataType = iota
	TypeOctetString
	TypeNull
	TypeObjectIdentifier
	TypeIPAddress
	TypeCounter32
	TypeGauge32
	TypeTimeTicks
	TypeOpaque
	TypeCounter64

	TypeNoSuchObject
	TypeNoSuchInstance
	TypeEndOfMib
)

// ObjectSyntax is the closed, tagged-variant value type for every SNMP
// variable value this manager understands (spec.md §3). At most one of
// the typed accessors below is valid for a given Type; Null and the three
// exception variants have none.
type ObjectSyntax struct {
	Type DataType

	intValue    int32
	uint32Value uint32
	uint64Value uint64
	bytesValue  []byte
	oidValue    []uint32
}

// Integer constructs an ObjectSyntax holding a signed 32-bit integer.
func Integer(v int32) ObjectSyntax { return ObjectSyntax{Type: TypeInteger, intValue: v} }

// OctetString constructs an ObjectSyntax holding an opaque byte string.
func OctetString(v []byte) ObjectSyntax { return ObjectSyntax{Type: TypeOctetString, bytesValue: v} }

// NullValue is the singleton Null ObjectSyntax, used as the placeholder
// value of a request VarBind.
var NullValue = ObjectSyntax{Type: TypeNull}

// ObjectIdentifierValue constructs an ObjectSyntax holding an OID value.
func ObjectIdentifierValue(v []uint32) ObjectSyntax {
	return ObjectSyntax{Type: TypeObjectIdentifier, oidValue: v}
}

// IPAddressValue constructs an ObjectSyntax holding a 4-byte IPv4 address.
func IPAddressValue(v []byte) ObjectSyntax { return ObjectSyntax{Type: TypeIPAddress, bytesValue: v} }

// Counter32Value constructs an ObjectSyntax holding an unsigned 32-bit counter.
func Counter32Value(v uint32) ObjectSyntax { return ObjectSyntax{Type: TypeCounter32, uint32Value: v} }

// Gauge32Value constructs an ObjectSyntax holding an unsigned 32-bit gauge.
func Gauge32Value(v uint32) ObjectSyntax { return ObjectSyntax{Type: TypeGauge32, uint32Value: v} }

// TimeTicksValue constructs an ObjectSyntax holding hundredths of a second.
func TimeTicksValue(v uint32) ObjectSyntax { return ObjectSyntax{Type: TypeTimeTicks, uint32Value: v} }

// OpaqueValue constructs an ObjectSyntax holding an opaque-encoded blob.
func OpaqueValue(v []byte) ObjectSyntax { return ObjectSyntax{Type: TypeOpaque, bytesValue: v} }

// Counter64Value constructs an ObjectSyntax holding an unsigned 64-bit counter.
func Counter64Value(v uint64) ObjectSyntax {
	return ObjectSyntax{Type: TypeCounter64, uint64Value: v}
}

// NoSuchObjectValue, NoSuchInstanceValue, and EndOfMibValue are the three
// exception singletons a GetNext/GetBulk response may carry in place of a
// value, per spec.md §3.
var (
	NoSuchObjectValue   = ObjectSyntax{Type: TypeNoSuchObject}
	NoSuchInstanceValue = ObjectSyntax{Type: TypeNoSuchInstance}
	EndOfMibValue       = ObjectSyntax{Type: TypeEndOfMib}
)

// Int returns the signed integer payload. Panics if Type != TypeInteger.
func (v ObjectSyntax) Int() int32 {
	if v.Type != TypeInteger {
		panic(fmt.Errorf("snmp: Int() called on %v", v.Type))
	}
	return v.intValue
}

// Bytes returns the byte-string payload (OctetString, IpAddress, Opaque).
func (v ObjectSyntax) Bytes() []byte {
	switch v.Type { //nolint: exhaustive
	case TypeOctetString, TypeIPAddress, TypeOpaque:
		return v.bytesValue
	}
	panic(fmt.Errorf("snmp: Bytes() called on %v", v.Type))
}

// Uint32 returns the unsigned 32-bit payload (Counter32, Gauge32, TimeTicks).
func (v ObjectSyntax) Uint32() uint32 {
	switch v.Type { //nolint: exhaustive
	case TypeCounter32, TypeGauge32, TypeTimeTicks:
		return v.uint32Value
	}
	panic(fmt.Errorf("snmp: Uint32() called on %v", v.Type))
}

// Uint64 returns the Counter64 payload.
func (v ObjectSyntax) Uint64() uint64 {
	if v.Type != TypeCounter64 {
		panic(fmt.Errorf("snmp: Uint64() called on %v", v.Type))
	}
	return v.uint64Value
}

// OID returns the ObjectIdentifier payload.
func (v ObjectSyntax) OID() []uint32 {
	if v.Type != TypeObjectIdentifier {
		panic(fmt.Errorf("snmp: OID() called on %v", v.Type))
	}
	return v.oidValue
}

// IsException reports whether v is one of the three protocol exception
// markers (NoSuchObject, NoSuchInstance, EndOfMib) rather than a value.
func (v ObjectSyntax) IsException() bool {
	switch v.Type { //nolint: exhaustive
	case TypeNoSuchObject, TypeNoSuchInstance, TypeEndOfMib:
		return true
	}
	return false
}

// String renders the value for diagnostics/logging, matching the register
// of the teacher's TypedValue.String.
func (v ObjectSyntax) String() string {
	switch v.Type {
	case TypeInteger:
		return strconv.FormatInt(int64(v.intValue), 10)
	case TypeOctetString:
		return string(v.bytesValue)
	case TypeNull:
		return "Null"
	case TypeObjectIdentifier:
		return oidString(v.oidValue)
	case TypeIPAddress:
		return ipAddressString(v.bytesValue)
	case TypeCounter32, TypeGauge32:
		return strconv.FormatUint(uint64(v.uint32Value), 10)
	case TypeTimeTicks:
		return (time.Duration(v.uint32Value) * 10 * time.Millisecond).String()
	case TypeOpaque:
		return fmt.Sprintf("%x", v.bytesValue)
	case TypeCounter64:
		return strconv.FormatUint(v.uint64Value, 10)
	case TypeNoSuchObject:
		return "No Such Object"
	case TypeNoSuchInstance:
		return "No Such Instance"
	case TypeEndOfMib:
		return "End of MIB View"
	}
	return fmt.Sprintf("unrecognised data type %d", v.Type)
}

func ipAddressString(b []byte) string {
	parts := make([]string, len(b))
	for i, octet := range b {
		parts[i] = strconv.Itoa(int(octet))
	}
	return strings.Join(parts, ".")
}

// writeToBuf appends the BER encoding of v to buf, dispatching to the ber
// package's writer primitives per the variant carried.
func (v ObjectSyntax) writeToBuf(buf []byte) []byte {
	switch v.Type {
	case TypeInteger:
		return ber.EncodeInteger(buf, v.intValue)
	case TypeOctetString:
		return encodeOctetString(buf, v.bytesValue)
	case TypeNull:
		return encodeNull(buf)
	case TypeObjectIdentifier:
		return ber.EncodeOID(buf, v.oidValue)
	case TypeIPAddress:
		return encodeBytesWithTag(buf, ber.IPAddress, v.bytesValue)
	case TypeCounter32:
		return ber.EncodeUnsigned32(buf, ber.Counter32, v.uint32Value)
	case TypeGauge32:
		return ber.EncodeUnsigned32(buf, ber.Gauge32, v.uint32Value)
	case TypeTimeTicks:
		return ber.EncodeUnsigned32(buf, ber.TimeTicks, v.uint32Value)
	case TypeOpaque:
		return encodeBytesWithTag(buf, ber.Opaque, v.bytesValue)
	case TypeCounter64:
		return ber.EncodeUnsigned64(buf, ber.Counter64, v.uint64Value)
	case TypeNoSuchObject:
		return append(buf, byte(ber.NoSuchObject), 0x00)
	case TypeNoSuchInstance:
		return append(buf, byte(ber.NoSuchInstance), 0x00)
	case TypeEndOfMib:
		return append(buf, byte(ber.EndOfMib), 0x00)
	}
	panic(fmt.Errorf("snmp: cannot encode data type %d", v.Type))
}

func encodeOctetString(buf []byte, value []byte) []byte {
	buf = append(buf, byte(ber.OctetString))
	buf = ber.EncodeLength(buf, len(value))
	return append(buf, value...)
}

func encodeNull(buf []byte) []byte {
	return append(buf, byte(ber.Null), 0x00)
}

func encodeBytesWithTag(buf []byte, tag ber.Tag, value []byte) []byte {
	buf = append(buf, byte(tag))
	buf = ber.EncodeLength(buf, len(value))
	return append(buf, value...)
}

// objectSyntaxFromBER interprets a parsed BER object per its tag, per the
// dispatch table in spec.md §3/§4.6. Grounded in
// original_source/src/snmp/pdu.rs::ObjectSyntax::from_ber.
func objectSyntaxFromBER(obj ber.Object) (ObjectSyntax, error) {
	switch obj.Tag {
	case ber.Integer:
		val, err := ber.DecodeInteger(obj.Value)
		if err != nil {
			return ObjectSyntax{}, err
		}
		return Integer(val), nil

	case ber.OctetString:
		return OctetString(cloneBytes(obj.Value)), nil

	case ber.Null:
		return NullValue, nil

	case ber.ObjectIdentifier:
		oid, err := ber.DecodeOID(obj.Value)
		if err != nil {
			return ObjectSyntax{}, err
		}
		return ObjectIdentifierValue(oid), nil

	case ber.IPAddress:
		return IPAddressValue(cloneBytes(obj.Value)), nil

	case ber.Counter32:
		val, err := ber.DecodeUnsignedInteger(obj.Value)
		if err != nil {
			return ObjectSyntax{}, err
		}
		return Counter32Value(val), nil

	case ber.Gauge32:
		val, err := ber.DecodeUnsignedInteger(obj.Value)
		if err != nil {
			return ObjectSyntax{}, err
		}
		return Gauge32Value(val), nil

	case ber.TimeTicks:
		val, err := ber.DecodeUnsignedInteger(obj.Value)
		if err != nil {
			return ObjectSyntax{}, err
		}
		return TimeTicksValue(val), nil

	case ber.Opaque:
		return OpaqueValue(cloneBytes(obj.Value)), nil

	case ber.Counter64:
		val, err := ber.DecodeUnsignedInteger64(obj.Value)
		if err != nil {
			return ObjectSyntax{}, err
		}
		return Counter64Value(val), nil

	case ber.NoSuchObject:
		return NoSuchObjectValue, nil

	case ber.NoSuchInstance:
		return NoSuchInstanceValue, nil

	case ber.EndOfMib:
		return EndOfMibValue, nil
	}

	return ObjectSyntax{}, &ber.UnsupportedTypeError{Byte: byte(obj.Tag)}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// oidString renders an OID in conventional dotted-decimal notation.
func oidString(oid []uint32) string {
	parts := make([]string, len(oid))
	for i, sub := range oid {
		parts[i] = strconv.FormatUint(uint64(sub), 10)
	}
	return strings.Join(parts, ".")
}
