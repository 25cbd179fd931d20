package sexpr

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// QuotedAtomTag is the CBOR tag number wrapping the text of a quoted atom.
// Bare atoms are plain CBOR text strings and lists are CBOR arrays.
const QuotedAtomTag = 47001

var canonical = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("sexpr: canonical CBOR mode: %v", err))
	}

	return em
}()

// MarshalCBOR encodes a tree as canonical CBOR. Equal trees always produce
// identical bytes.
func MarshalCBOR(e Expr) ([]byte, error) {
	return canonical.Marshal(toCBOR(e))
}

// UnmarshalCBOR is the inverse of MarshalCBOR.
func UnmarshalCBOR(data []byte) (Expr, error) {
	var v any
	if err := cbor.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}

	return fromCBOR(v)
}

// Fingerprint is the BLAKE2b-256 digest of the canonical CBOR encoding.
func Fingerprint(e Expr) ([32]byte, error) {
	data, err := MarshalCBOR(e)
	if err != nil {
		return [32]byte{}, err
	}

	return blake2b.Sum256(data), nil
}

func toCBOR(e Expr) any {
	switch e := e.(type) {
	case Atom:
		if e.Quoted {
			return cbor.Tag{Number: QuotedAtomTag, Content: e.Text}
		}

		return e.Text
	case List:
		out := make([]any, len(e))
		for i, item := range e {
			out[i] = toCBOR(item)
		}

		return out
	default:
		return nil
	}
}

func fromCBOR(v any) (Expr, error) {
	switch v := v.(type) {
	case string:
		return Sym(v), nil
	case cbor.Tag:
		text, ok := v.Content.(string)
		if v.Number != QuotedAtomTag || !ok {
			return nil, fmt.Errorf("decode tree: unexpected CBOR tag %d", v.Number)
		}

		return Str(text), nil
	case []any:
		out := make(List, len(v))
		for i, item := range v {
			e, err := fromCBOR(item)
			if err != nil {
				return nil, err
			}

			out[i] = e
		}

		return out, nil
	default:
		return nil, fmt.Errorf("decode tree: unexpected CBOR value of type %T", v)
	}
}
