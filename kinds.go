// kinds.go — kind names and the implicit fallback kind.
//
// Intent:
//   - Kinds are plain, case-sensitive strings chosen by the caller at Configure time.
//   - The only reserved name is KindUnknown, used when a feature is asked for a
//     kind its registry does not know.
//   - No central enum: taxonomies declare their own kinds.
package errtree

// Kind names a configured error category (e.g. "FrontLogic", "BackLogic").
type Kind string

// KindUnknown is the fallback kind for names absent from a registry.
const KindUnknown Kind = "UnknownError"

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// IsUnknown reports whether k is the fallback kind.
func (k Kind) IsUnknown() bool { return k == KindUnknown }

// kindNames returns the names of descs in order, keeping duplicates.
func kindNames(descs []KindDescriptor) []Kind {
	out := make([]Kind, len(descs))
	for i, d := range descs {
		out[i] = d.Name
	}
	return out
}
