// params.go — immutable parameter chain for errtree.
//
// Design:
//   • Params is a plain map[string]any handed to dispatchers.
//   • Merges are shallow and right-biased: keys of the newer layer win.
//   • Merges never touch either input; they always allocate a fresh map.
//
// Layer order, outermost first:
//   library defaults → WithBaseParams → root context → subcontexts → feature → call time.
package errtree

import "maps"

// Params carries metadata down the context tree and into dispatchers.
type Params map[string]any

// defaultParams is the library-level base layer. It is empty; the layer
// exists so the chain has a well-defined starting point.
func defaultParams() Params { return Params{} }

// Merge returns a NEW map holding p overlaid with over. Values of over win
// for shared keys; nested maps are not merged.
func (p Params) Merge(over Params) Params {
	out := make(Params, len(p)+len(over))
	maps.Copy(out, p)
	maps.Copy(out, over)
	return out
}

// Clone returns a shallow copy of p. A nil p yields an empty, non-nil map.
func (p Params) Clone() Params {
	return p.Merge(nil)
}

// ParamsKV builds Params from alternating key/value arguments.
//
// Rules:
//   • Pairs are read left-to-right as (key, value).
//   • A non-string key drops the ENTIRE pair, so later pairs stay aligned.
//   • A trailing key with no value becomes (key, nil).
//   • Repeated keys: last write wins.
//
// Example:
//
//	ParamsKV(123, "v1", "k2", "v2") // → {"k2": "v2"}
func ParamsKV(kv ...any) Params {
	out := make(Params, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			if i+1 < len(kv) {
				i += 2
			} else {
				i++
			}
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
			i += 2
		} else {
			i++
		}
		out[k] = v
	}
	return out
}
