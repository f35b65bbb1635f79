// Package load implements the intake contract of spec.md §6: given a
// (title, body JSON) pair from an external dump reader, decode it into a
// Zid and the value.V it names. The dump reader itself (the XML stream and
// its embedded JSON) is explicitly out of scope (spec.md §1); this package
// only owns the JSON → value.V rules, so the evaluator core can be
// exercised from literal fixtures without a real dump file.
package load

import (
	"encoding/json"
	"fmt"

	"github.com/marius851000/wikifunction-intepreter-2/internal/kid"
	"github.com/marius851000/wikifunction-intepreter-2/internal/value"
)

// Entry is one (title, body) pair as handed over by the external loader.
type Entry struct {
	Title    string
	BodyJSON string
}

// DecodeEntry parses e.Title as a Zid and e.BodyJSON as the object
// language's JSON form, following spec.md §6's rules, and extracts the
// Z2K2 payload the way every persisted Wikifunctions object wraps its
// actual content.
func DecodeEntry(e Entry) (kid.Zid, value.V, error) {
	z, err := kid.Parse(e.Title)
	if err != nil {
		return 0, nil, fmt.Errorf("load: %q: %w", e.Title, err)
	}
	id, ok := z.AsZid()
	if !ok || !z.ZOnly() {
		return 0, nil, fmt.Errorf("load: %q: not a bare object id", e.Title)
	}

	var raw any
	if err := json.Unmarshal([]byte(e.BodyJSON), &raw); err != nil {
		return 0, nil, fmt.Errorf("load: %s: invalid JSON: %w", z, err)
	}
	envelope, err := decodeValue(raw)
	if err != nil {
		return 0, nil, fmt.Errorf("load: %s: %w", z, err)
	}

	payload, ok := envelope.Get(kid.ZK(2, 2))
	if !ok {
		return 0, nil, fmt.Errorf("load: %s: missing Z2K2 payload", z)
	}
	return id, payload, nil
}

// decodeValue applies spec.md §6's "JSON → value rules" to one decoded
// JSON value.
func decodeValue(raw any) (value.V, error) {
	switch t := raw.(type) {
	case string:
		if z, err := kid.Parse(t); err == nil {
			if id, ok := z.AsZid(); ok && z.ZOnly() {
				return value.NewReference(id), nil
			}
		}
		return value.NewStr(t), nil

	case []any:
		if len(t) == 0 {
			return nil, fmt.Errorf("load: empty array is not a valid typed list")
		}
		elemType, err := decodeValue(t[0])
		if err != nil {
			return nil, err
		}
		entries := make([]value.V, 0, len(t)-1)
		for _, raw := range t[1:] {
			v, err := decodeValue(raw)
			if err != nil {
				return nil, err
			}
			entries = append(entries, v)
		}
		return &value.TypedList{ElementType: elemType, Entries: entries}, nil

	case map[string]any:
		return decodeObject(t)

	default:
		return nil, fmt.Errorf("load: numbers, booleans, and null are not valid object-language values")
	}
}

func decodeObject(obj map[string]any) (value.V, error) {
	// The Z6 (String) shortcut: {Z1K1:"Z6", Z6K1:"<s>"} with no other keys.
	if t1, ok := obj["Z1K1"].(string); ok && t1 == "Z6" {
		if len(obj) != 2 {
			return nil, fmt.Errorf("load: Z6 shortcut record must have exactly Z1K1 and Z6K1")
		}
		text, ok := obj["Z6K1"].(string)
		if !ok {
			return nil, fmt.Errorf("load: Z6K1 must be a string")
		}
		return value.NewStr(text), nil
	}

	fields := make(map[kid.Kid]value.V, len(obj))
	for keyText, raw := range obj {
		k, err := kid.Parse(keyText)
		if err != nil {
			return nil, fmt.Errorf("load: invalid key %q: %w", keyText, err)
		}
		v, err := decodeValue(raw)
		if err != nil {
			return nil, err
		}
		fields[k] = v
	}
	return value.NewUntyped(fields), nil
}
