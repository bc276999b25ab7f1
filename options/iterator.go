package options

import "github.com/dist-svc/dsf-core/wire"

// Iterator steps lazily through an option region. Each call to Next
// either returns the next option or reports that the region is
// exhausted. It does not support rewinding: once advanced past an
// option, that option cannot be revisited.
type Iterator struct {
	r       *wire.Reader
	strict  bool
	skipped int
	done    bool
}

// NewIterator returns an Iterator over region, a single option region's
// raw bytes (already stripped of any surrounding framing).
func NewIterator(region []byte) *Iterator {
	return &Iterator{r: wire.NewReader(region)}
}

// NewStrictIterator behaves like NewIterator, but Next returns
// ErrUnknownKind instead of silently skipping unrecognised kinds.
func NewStrictIterator(region []byte) *Iterator {
	return &Iterator{r: wire.NewReader(region), strict: true}
}

// Skipped returns the number of unknown-kind options skipped so far.
func (it *Iterator) Skipped() int { return it.skipped }

// Next returns the next option in the region, or ok=false once the
// region is exhausted. An error aborts iteration; subsequent calls to
// Next after an error return ok=false, err=nil (the iterator is
// considered done and the error is not repeated).
func (it *Iterator) Next() (opt Option, ok bool, err error) {
	for {
		if it.done || it.r.Remaining() == 0 {
			it.done = true
			return Option{}, false, nil
		}
		kindRaw, err := it.r.ReadU16BE()
		if err != nil {
			it.done = true
			return Option{}, false, err
		}
		length, err := it.r.ReadU16BE()
		if err != nil {
			it.done = true
			return Option{}, false, err
		}
		payload, err := it.r.ReadBytes(int(length))
		if err != nil {
			it.done = true
			return Option{}, false, err
		}
		if err := it.r.SkipPad(); err != nil {
			it.done = true
			return Option{}, false, err
		}
		k := Kind(kindRaw)
		if _, known := fixedLen(k); !known && !isVarKind(k) {
			if it.strict {
				it.done = true
				return Option{}, false, ErrUnknownKind
			}
			it.skipped++
			continue
		}
		if n, fixed := fixedLen(k); fixed && n != len(payload) {
			it.done = true
			return Option{}, false, ErrBodyShapeMismatch
		}
		return Option{Kind: k, Data: payload}, true, nil
	}
}

func isVarKind(k Kind) bool {
	switch k {
	case ServKind, Name, Metadata:
		return true
	default:
		return false
	}
}

// DecodeAll drains region into a slice of options, enforcing the
// duplicate policy for non-repeating kinds. It returns the parsed
// options, the count of unknown kinds skipped, and the first error
// encountered (if any).
func DecodeAll(region []byte) ([]Option, int, error) {
	it := NewIterator(region)
	var out []Option
	seen := make(map[Kind]bool)
	for {
		opt, ok, err := it.Next()
		if err != nil {
			return out, it.Skipped(), err
		}
		if !ok {
			return out, it.Skipped(), nil
		}
		if !IsRepeating(opt.Kind) {
			if seen[opt.Kind] {
				return out, it.Skipped(), ErrDuplicateOption
			}
			seen[opt.Kind] = true
		}
		out = append(out, opt)
	}
}

// FindOne returns the first option of kind k in opts, and whether one
// was found. Intended for non-repeating kinds.
func FindOne(opts []Option, k Kind) (Option, bool) {
	for _, o := range opts {
		if o.Kind == k {
			return o, true
		}
	}
	return Option{}, false
}

// IterAll returns every option of kind k in opts, in their original
// order. Intended for repeating kinds.
func IterAll(opts []Option, k Kind) []Option {
	var out []Option
	for _, o := range opts {
		if o.Kind == k {
			out = append(out, o)
		}
	}
	return out
}
