// Package keystream - stream resolution.
//
// Resolve turns a Source into a concrete []int of exactly the requested
// length, applying the policy precedence Numeric > Letters > Key.
//
// Design principles:
//   - Deterministic, side-effect free; the input Source is never mutated
//     and numeric input is copied before return.
//   - Strict sentinels from types.go; all validation happens here, before
//     any caller hands the stream to the engine.
//   - n == 0 always resolves to an empty stream (empty text is a legal
//     trivial case everywhere in cipherbox) — except for an explicit
//     numeric stream, whose length must match exactly.
package keystream

import "github.com/katalvlaran/cipherbox/alphabet"

// Resolve produces the shift stream of length n for s.
//
// Policy selection:
//   - s.Numeric != nil  → validated for exact length n and range [0,25].
//   - s.Letters != ""   → normalized, mapped through s.Ref (zero Ref ⇒
//     straight alphabet), repeated/truncated cyclically to n.
//   - s.Key != ""       → normalized, straight-alphabet codes repeated
//     cyclically to n.
//   - none of the above → ErrNoSource unless n == 0.
//
// Errors: ErrLengthMismatch, ErrShiftRange, ErrEmptyKey, ErrNoSource,
// and alphabet.ErrInvalidAlphabet for a non-zero, non-permutation Ref.
//
// Complexity: O(n) time, one O(n) allocation.
func (s Source) Resolve(n int) ([]int, error) {
	if n < 0 {
		return nil, ErrLengthMismatch
	}

	// Policy 1: explicit numeric stream.
	if s.Numeric != nil {
		if len(s.Numeric) != n {
			return nil, ErrLengthMismatch
		}
		out := make([]int, n)
		for i, k := range s.Numeric {
			if k < 0 || k >= alphabet.Size {
				return nil, ErrShiftRange
			}
			out[i] = k
		}

		return out, nil
	}

	// Empty text needs no further source: the empty stream is legal.
	if n == 0 {
		return []int{}, nil
	}

	// Policy 2: explicit keystream through a reference alphabet.
	if s.Letters != "" {
		ref := s.Ref
		if ref == (alphabet.Alphabet{}) {
			ref = alphabet.Straight()
		} else if err := ref.Validate(); err != nil {
			return nil, err
		}

		return cycle(alphabet.Normalize(s.Letters), ref, n)
	}

	// Policy 3: repeating key over the straight alphabet.
	if s.Key != "" {
		return cycle(alphabet.Normalize(s.Key), alphabet.Straight(), n)
	}

	return nil, ErrNoSource
}

// cycle maps every letter of key to its position in ref and repeats the
// resulting period cyclically to length n. key must be normalized.
func cycle(key string, ref alphabet.Alphabet, n int) ([]int, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	period := make([]int, len(key))
	for i := 0; i < len(key); i++ {
		// Normalized letters are always present in a valid alphabet.
		period[i] = ref.Index(key[i])
	}

	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = period[i%len(period)]
	}

	return out, nil
}
