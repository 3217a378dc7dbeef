// Package ber implements the subset of ASN.1 Basic Encoding Rules used by
// SNMP, as described by RFC 1157 and RFC 3416: tag/length/value parsing,
// signed and unsigned integer normalisation, and OID subidentifier encoding.
package ber

import "fmt"

// ErrIncompleteData is returned when fewer bytes remain in the input than a
// decode operation needs to make progress.
var ErrIncompleteData = fmt.Errorf("ber: incomplete data")

// ErrMalformedLength is returned for a length octet this codec rejects:
// indefinite length (0x80), the reserved octet (0xFF), or a long-form
// length whose byte count exceeds 8 or overruns the input.
var ErrMalformedLength = fmt.Errorf("ber: malformed length")

// ErrMalformedTag is returned when a tag byte cannot be interpreted at all.
var ErrMalformedTag = fmt.Errorf("ber: malformed tag")

// ErrUnexpectedEOF is returned when the input ends where a nested structure
// is still expected to continue.
var ErrUnexpectedEOF = fmt.Errorf("ber: unexpected end of data")

// ErrIntegerOverflow is returned when an integer or OID subidentifier
// encoding is longer than this codec will accept.
var ErrIntegerOverflow = fmt.Errorf("ber: integer overflow")

// ErrTrailingData is returned when bytes remain after a structure that
// should have consumed the whole of its input has been fully parsed.
var ErrTrailingData = fmt.Errorf("ber: trailing data")

// UnsupportedTypeError is returned by ParseTag for a tag byte outside the
// closed enumeration this manager recognises.
type UnsupportedTypeError struct {
	Byte byte
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("ber: unsupported type tag 0x%02x", e.Byte)
}

// UnexpectedTagError is returned when a decoder finds a tag other than the
// one required at that wire position.
type UnexpectedTagError struct {
	Expected, Got Tag
}

func (e *UnexpectedTagError) Error() string {
	return fmt.Sprintf("ber: unexpected tag: expected %s, got %s", e.Expected, e.Got)
}

// InvalidEnumValueError is returned when an integer decodes successfully but
// is out of range for the closed enumeration it is meant to populate
// (currently only ErrorStatus).
type InvalidEnumValueError struct {
	Value int32
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("ber: invalid enum value %d", e.Value)
}
