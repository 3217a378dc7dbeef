package ber

// Object is the parse-time view of one BER TLV record: the decoded tag, the
// number of header bytes (tag + length octets) consumed to produce it, the
// declared value length, and a borrowed window into the caller's input
// holding exactly that many value bytes.
//
// Invariant: HeaderLen + ValueLen bytes were consumed from the input that
// produced this Object; EncodeContainer is the writer-side inverse.
type Object struct {
	Tag       Tag
	HeaderLen int
	ValueLen  int
	Value     []byte
}

// ParseObject composes ParseTag and ParseLength, then slices ValueLen bytes
// of value from the remainder. It fails ErrIncompleteData if fewer bytes
// remain than the decoded length promises.
func ParseObject(input []byte) (Object, []byte, error) {
	tag, afterTag, err := ParseTag(input)
	if err != nil {
		return Object{}, nil, err
	}

	length, afterLength, err := ParseLength(afterTag)
	if err != nil {
		return Object{}, nil, err
	}

	headerLen := len(input) - len(afterLength)

	if len(afterLength) < length {
		return Object{}, nil, ErrIncompleteData
	}

	value, rest := afterLength[:length], afterLength[length:]

	return Object{
		Tag:       tag,
		HeaderLen: headerLen,
		ValueLen:  length,
		Value:     value,
	}, rest, nil
}

// Expect returns UnexpectedTagError unless obj.Tag == want.
func (obj Object) Expect(want Tag) error {
	if obj.Tag != want {
		return &UnexpectedTagError{Expected: want, Got: obj.Tag}
	}
	return nil
}

// EncodeContainer runs build into a fresh inner buffer, measures its
// length, then appends tag, the BER length of the inner content, and the
// inner content itself to buf. This is the "fresh inner buffer" strategy
// spec.md §9 calls the reference scoped-container emission pattern: the
// alternative (placeholder length patched in place) is only worthwhile when
// avoiding the inner allocation matters, which it does not at SNMP message
// sizes.
func EncodeContainer(buf []byte, tag Tag, build func(inner []byte) []byte) []byte {
	inner := build(nil)
	buf = append(buf, byte(tag))
	buf = EncodeLength(buf, len(inner))
	return append(buf, inner...)
}

// EncodeSequence is EncodeContainer specialised to the universal Sequence
// tag, used for VarBind, VarBind list, and Message framing.
func EncodeSequence(buf []byte, build func(inner []byte) []byte) []byte {
	return EncodeContainer(buf, Sequence, build)
}
