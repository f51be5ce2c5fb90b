package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/tidwall/jsonc"

	"github.com/eugenesimakin/bendy"
	"github.com/eugenesimakin/bendy/errors"
)

// encodeJSON converts one JSON document into canonical bencode. Comments
// and trailing commas are tolerated on the way in; numbers must be
// integers because the format has no float kind, and object keys are
// sorted by raw bytes regardless of their order in the document.
func encodeJSON(data []byte, maxDepth int) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	enc := bendy.NewEncoder().WithMaxDepth(maxDepth)
	if err := enc.EmitWith(func(s bendy.SingleItemEncoder) error {
		return emitValue(s, doc, nil)
	}); err != nil {
		return nil, err
	}
	return enc.Output()
}

func emitValue(s bendy.SingleItemEncoder, v any, path []string) error {
	switch val := v.(type) {
	case string:
		return s.EmitString(val)

	case json.Number:
		if i, err := val.Int64(); err == nil {
			return s.EmitInt(i)
		}
		if u, err := strconv.ParseUint(val.String(), 10, 64); err == nil {
			return s.EmitUint(u)
		}
		return errors.InvalidData(path, fmt.Sprintf("number %s is not an integer; bencode has no float kind", val))

	case []any:
		return s.EmitList(func(le *bendy.ListEncoder) error {
			for i, item := range val {
				elemPath := append(path, "["+strconv.Itoa(i)+"]")
				if err := le.EmitWith(func(slot bendy.SingleItemEncoder) error {
					return emitValue(slot, item, elemPath)
				}); err != nil {
					return err
				}
			}
			return nil
		})

	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return s.EmitDict(func(de *bendy.DictEncoder) error {
			for _, k := range keys {
				entryPath := append(path, k)
				if err := de.EmitPairWith([]byte(k), func(slot bendy.SingleItemEncoder) error {
					return emitValue(slot, val[k], entryPath)
				}); err != nil {
					return err
				}
			}
			return nil
		})

	case bool:
		return errors.InvalidData(path, "bencode has no boolean kind")

	case nil:
		return errors.InvalidData(path, "bencode has no null kind")

	default:
		return errors.InvalidData(path, fmt.Sprintf("unsupported JSON value of type %T", v))
	}
}
