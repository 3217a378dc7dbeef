package ber

// EncodeOID appends the BER object identifier encoding of oid to buf. The
// first two subidentifiers are compressed into a single byte
// first*40+second; each remaining subidentifier is emitted in base-128,
// most-significant-group first, with the continuation bit (0x80) set on
// every group but the last.
//
// Earlier drafts of this encoder computed the continuation byte as
// (subID * 0x7F) | 0x80 — a multiplication where a bitwise OR with the
// shifted remainder was meant. That produced a wire format indistinguishable
// from a correct encoder only for single-byte subidentifiers and corrupted
// every larger one; this encoder shifts and ORs instead.
func EncodeOID(buf []byte, oid []uint32) []byte {
	value := make([]byte, 0, len(oid)+2)
	value = append(value, byte(oid[0]*40+oid[1]))

	for _, subID := range oid[2:] {
		value = encodeSubID(value, subID)
	}

	buf = append(buf, byte(ObjectIdentifier))
	buf = EncodeLength(buf, len(value))
	return append(buf, value...)
}

func encodeSubID(buf []byte, subID uint32) []byte {
	if subID == 0 {
		return append(buf, 0x00)
	}

	var groups [5]byte
	n := 0
	for subID > 0 {
		groups[n] = byte(subID & 0x7F)
		subID >>= 7
		n++
	}

	// groups were filled least-significant-first; emit most-significant-first,
	// with the continuation bit set on every group but the last.
	for i := n - 1; i >= 0; i-- {
		b := groups[i]
		if i != 0 {
			b |= 0x80
		}
		buf = append(buf, b)
	}
	return buf
}

// DecodeOID reverses EncodeOID. The first byte splits into (b/40, b%40)
// for the first two subidentifiers — a simplification that matches the
// ASN.1 rule for encoded bytes below 120 but not from 120 up (first
// subidentifier 2 with second >=40, which decodes with a first
// subidentifier above 2); spec.md §4.5/§9 directs this dialect to retain
// it. Subsequent bytes accumulate 7 bits at a time until one with its
// continuation bit clear terminates the subidentifier.
func DecodeOID(input []byte) ([]uint32, error) {
	if len(input) == 0 {
		return nil, ErrIncompleteData
	}

	oid := make([]uint32, 0, 10)
	oid = append(oid, uint32(input[0])/40, uint32(input[0])%40)

	rest := input[1:]
	for len(rest) > 0 {
		subID, next, err := decodeSubID(rest)
		if err != nil {
			return nil, err
		}
		oid = append(oid, subID)
		rest = next
	}
	return oid, nil
}

func decodeSubID(input []byte) (uint32, []byte, error) {
	var subID uint32
	for i, b := range input {
		if i+1 > 5 {
			return 0, nil, ErrIntegerOverflow
		}
		subID = (subID << 7) | uint32(b&0x7F)
		if b&0x80 == 0 {
			return subID, input[i+1:], nil
		}
	}
	return 0, nil, ErrIncompleteData
}
