package upstream

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Truthy reports whether raw carries data: null, false, 0, "", [] and {}
// (and an empty body) all count as no data.
func Truthy(raw json.RawMessage) bool {
	r := gjson.ParseBytes(raw)
	switch r.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	case gjson.JSON:
		nonEmpty := false
		r.ForEach(func(_, _ gjson.Result) bool {
			nonEmpty = true
			return false
		})
		return nonEmpty
	default:
		return false
	}
}
