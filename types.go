/*
Copyright 2024 The stdf2atdf Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package stdf

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// DType is one of the STDF primitive type codes: U1/U2/U4/U8, I1/I2/I4/I8,
// R4/R8, Cn, Cf, Bn, Dn, Nibble, Bit, Vn, or an array of one of the above
// spelled "kx" + the element type, e.g. "kxU2".
//
// A single function decodes the whole alphabet rather than one type per
// concrete Go type: the STDF type system has no behavior beyond "read N
// bytes and interpret them", so a table-driven decoder keeps the ~24 record
// templates from needing a parallel hierarchy of decoder types.
type DType string

const (
	DU1     DType = "U1"
	DU2     DType = "U2"
	DU4     DType = "U4"
	DU8     DType = "U8"
	DI1     DType = "I1"
	DI2     DType = "I2"
	DI4     DType = "I4"
	DI8     DType = "I8"
	DR4     DType = "R4"
	DR8     DType = "R8"
	DCn     DType = "Cn"
	DCf     DType = "Cf"
	DBn     DType = "Bn"
	DDn     DType = "Dn"
	DNibble DType = "Nibble"
	DBit    DType = "Bit"
	DVn     DType = "Vn"

	// DGc is a self-describing group of character tokens: a leading U1
	// token count, then that many Cf strings. It exists to decode PLR's
	// PGM_CHAR/PGM_CHAL/RTN_CHAR/RTN_CHAL fields, whose per-group pin-state
	// tokens are not fixed in count by any prior field. Not part of the
	// general STDF type alphabet, only ever used as the element type of an
	// array ref'd to PLR's group count.
	DGc DType = "Gc"
)

// arrayOf returns the array DType for elem, i.e. "kx" + elem.
func arrayOf(elem DType) DType {
	return DType("kx" + string(elem))
}

// IsArray reports whether d denotes an array of some element type, per the
// "kxTYPE" notation.
func (d DType) IsArray() bool {
	return strings.HasPrefix(string(d), "kx")
}

// Elem returns the element type of an array DType. For a non-array type it
// returns d unchanged; callers should check IsArray first.
func (d DType) Elem() DType {
	return DType(strings.TrimPrefix(string(d), "kx"))
}

// decodeValue decodes a single value of type dtype from data[offset:] using
// the given byte order, returning the decoded value and the offset just
// past it.
//
// n carries the dependent-length parameter from the field's ref: for
// Cn and Bn it is the fixed byte count; for an array type it is the element
// count k (0 meaning an empty array); it is ignored by self-describing
// types (Cf, Dn, Vn) and fixed-width scalars.
func decodeValue(dtype DType, data []byte, order binary.ByteOrder, offset int, n int) (value any, next int, err error) {
	if dtype.IsArray() {
		return decodeArray(dtype.Elem(), data, order, offset, n)
	}

	switch dtype {
	case DU1:
		if err = need(data, offset, 1); err != nil {
			return nil, offset, err
		}
		return uint64(data[offset]), offset + 1, nil
	case DU2:
		if err = need(data, offset, 2); err != nil {
			return nil, offset, err
		}
		return uint64(order.Uint16(data[offset : offset+2])), offset + 2, nil
	case DU4:
		if err = need(data, offset, 4); err != nil {
			return nil, offset, err
		}
		return uint64(order.Uint32(data[offset : offset+4])), offset + 4, nil
	case DU8:
		if err = need(data, offset, 8); err != nil {
			return nil, offset, err
		}
		return order.Uint64(data[offset : offset+8]), offset + 8, nil
	case DI1:
		if err = need(data, offset, 1); err != nil {
			return nil, offset, err
		}
		return int64(int8(data[offset])), offset + 1, nil
	case DI2:
		if err = need(data, offset, 2); err != nil {
			return nil, offset, err
		}
		return int64(int16(order.Uint16(data[offset : offset+2]))), offset + 2, nil
	case DI4:
		if err = need(data, offset, 4); err != nil {
			return nil, offset, err
		}
		return int64(int32(order.Uint32(data[offset : offset+4]))), offset + 4, nil
	case DI8:
		if err = need(data, offset, 8); err != nil {
			return nil, offset, err
		}
		return int64(order.Uint64(data[offset : offset+8])), offset + 8, nil
	case DR4:
		if err = need(data, offset, 4); err != nil {
			return nil, offset, err
		}
		return float64(math.Float32frombits(order.Uint32(data[offset : offset+4]))), offset + 4, nil
	case DR8:
		if err = need(data, offset, 8); err != nil {
			return nil, offset, err
		}
		return math.Float64frombits(order.Uint64(data[offset : offset+8])), offset + 8, nil
	case DCn:
		if n < 0 {
			n = 0
		}
		if err = need(data, offset, n); err != nil {
			return nil, offset, err
		}
		return string(data[offset : offset+n]), offset + n, nil
	case DCf:
		if err = need(data, offset, 1); err != nil {
			return nil, offset, err
		}
		length := int(data[offset])
		offset++
		if err = need(data, offset, length); err != nil {
			return nil, offset, err
		}
		return string(data[offset : offset+length]), offset + length, nil
	case DBn:
		if n < 0 {
			n = 0
		}
		if err = need(data, offset, n); err != nil {
			return nil, offset, err
		}
		return hexBytes(data[offset : offset+n]), offset + n, nil
	case DDn:
		if err = need(data, offset, 2); err != nil {
			return nil, offset, err
		}
		bits := int(order.Uint16(data[offset : offset+2]))
		offset += 2
		nbytes := (bits + 7) / 8
		if err = need(data, offset, nbytes); err != nil {
			return nil, offset, err
		}
		s := binaryString(data[offset:offset+nbytes], bits)
		return s, offset + nbytes, nil
	case DNibble:
		if err = need(data, offset, 1); err != nil {
			return nil, offset, err
		}
		return binaryString([]byte{data[offset] & 0x0F}, 4), offset + 1, nil
	case DBit:
		if err = need(data, offset, 1); err != nil {
			return nil, offset, err
		}
		return binaryString(data[offset:offset+1], 8), offset + 1, nil
	case DVn:
		return decodeVariant(data, order, offset)
	case DGc:
		return decodeCharGroup(data, order, offset)
	default:
		return nil, offset, UnknownDType(string(dtype))
	}
}

// decodeCharGroup decodes one DGc group: a U1 token count followed by that
// many Cf strings, returning them as a []string.
func decodeCharGroup(data []byte, order binary.ByteOrder, offset int) (any, int, error) {
	if err := need(data, offset, 1); err != nil {
		return nil, offset, err
	}
	count := int(data[offset])
	offset++
	tokens := make([]string, 0, count)
	for i := 0; i < count; i++ {
		v, next, err := decodeValue(DCf, data, order, offset, 0)
		if err != nil {
			return tokens, offset, err
		}
		tokens = append(tokens, v.(string))
		offset = next
	}
	return tokens, offset, nil
}

// decodeArray decodes k elements of elem starting at offset, returning them
// as a []any in wire order. k<=0 yields an empty, non-nil slice.
func decodeArray(elem DType, data []byte, order binary.ByteOrder, offset int, k int) (any, int, error) {
	if k <= 0 {
		return []any{}, offset, nil
	}
	out := make([]any, 0, k)
	cur := offset
	for i := 0; i < k; i++ {
		v, next, err := decodeValue(elem, data, order, cur, 0)
		if err != nil {
			return out, cur, err
		}
		out = append(out, v)
		cur = next
	}
	return out, cur, nil
}

// decodeVariant decodes a Vn (tagged variant) value: a leading U1 selects
// the branch type, per STDF V4's generic data field. Advancing the cursor
// correctly matters more than the concrete value, which only ever reaches
// the generic_data transform's string join.
func decodeVariant(data []byte, order binary.ByteOrder, offset int) (any, int, error) {
	if err := need(data, offset, 1); err != nil {
		return nil, offset, err
	}
	tag := data[offset]
	offset++
	switch tag {
	case 0: // B0 - pad, no data
		return nil, offset, nil
	case 1:
		return decodeValue(DU1, data, order, offset, 0)
	case 2:
		return decodeValue(DU2, data, order, offset, 0)
	case 3:
		return decodeValue(DU4, data, order, offset, 0)
	case 4:
		return decodeValue(DI1, data, order, offset, 0)
	case 5:
		return decodeValue(DI2, data, order, offset, 0)
	case 6:
		return decodeValue(DI4, data, order, offset, 0)
	case 7:
		return decodeValue(DR4, data, order, offset, 0)
	case 8:
		return decodeValue(DR8, data, order, offset, 0)
	case 10:
		return decodeValue(DCf, data, order, offset, 0)
	case 11:
		if err := need(data, offset, 1); err != nil {
			return nil, offset, err
		}
		blen := int(data[offset])
		offset++
		return decodeValue(DBn, data, order, offset, blen)
	default:
		// Unrecognized tag: nothing more is known about its encoded length.
		// Stop advancing past the tag byte itself so the caller's overrun
		// check (offset >= len(data)) takes over on the next field.
		return nil, offset, nil
	}
}

// need reports an error if data does not have ln bytes available starting
// at offset.
func need(data []byte, offset, ln int) error {
	if ln < 0 || offset < 0 || offset+ln > len(data) {
		return ShortPayload(ln, len(data)-offset)
	}
	return nil
}

// hexBytes renders raw bytes as space-separated uppercase hex pairs, the
// STDF-view rendering of a Bn field.
func hexBytes(b []byte) string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", c)
	}
	return sb.String()
}

// binaryString renders the low `bits` bits of b (most-significant bit
// first) as a string of '0'/'1' characters. Bit-valued fields are carried
// as pre-rendered binary strings throughout this package; transforms
// read single bits back out with the bit helper.
func binaryString(b []byte, bits int) string {
	var sb strings.Builder
	sb.Grow(bits)
	for i := bits - 1; i >= 0; i-- {
		byteIdx := i / 8
		bitIdx := uint(i % 8)
		if byteIdx >= len(b) {
			sb.WriteByte('0')
			continue
		}
		if b[byteIdx]&(1<<bitIdx) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
