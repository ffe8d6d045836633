// original.go — helpers for original errors.
//
// An original may be a Go error, an attribute map such as the decoded body
// of a failed API call, or any other value. These helpers give postfix
// functions and sinks one way to render it.
package errtree

import (
	"fmt"
	"reflect"
)

// OriginalMessage renders original as a short string:
//   - error          → Error()
//   - map with a string "message" entry → that entry
//   - fmt.Stringer   → String()
//   - string         → itself
//   - anything else  → fmt.Sprint
//
// A nil original renders as "" and a typed nil pointer as "<nil>".
func OriginalMessage(original any) string {
	if rv := reflect.ValueOf(original); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "<nil>"
	}
	switch o := original.(type) {
	case nil:
		return ""
	case error:
		return o.Error()
	case map[string]any:
		if m, ok := o["message"].(string); ok {
			return m
		}
		return fmt.Sprint(o)
	case Params:
		if m, ok := o["message"].(string); ok {
			return m
		}
		return fmt.Sprint(map[string]any(o))
	case fmt.Stringer:
		return o.String()
	case string:
		return o
	default:
		return fmt.Sprint(o)
	}
}

// PostfixWith returns a postfix function producing sep + OriginalMessage(o).
//
//	errtree.KindDescriptor{Name: "Front", Postfix: errtree.PostfixWith(" >>> ")}
func PostfixWith(sep string) func(original any) string {
	return func(original any) string { return sep + OriginalMessage(original) }
}
