// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for triplet ingestion. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts FromTriplets and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Duplicate coordinates are the normal case for interaction logs (a user
//     rating or clicking an item twice). The default policy sums them, which
//     is the standard compressed-row contract.
//   - Numeric policy is opt-in: by default values pass through untouched, the
//     same way a plain array layer would store them.
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDuplicates resolves repeated (row, col) triplets by summation.
	DefaultDuplicates = SumDuplicates

	// DefaultEliminateZeros keeps explicitly stored zeros (e.g. a +1 and a -1
	// summed into the same cell) as stored entries.
	DefaultEliminateZeros = false

	// DefaultValidateNaNInf disables finite-value validation on ingestion.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDuplicatePolicyInvalid = "sparse: WithDuplicates: unknown duplicate policy"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	duplicates     DuplicatePolicy // DefaultDuplicates
	eliminateZeros bool            // DefaultEliminateZeros
	validateNaNInf bool            // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithDuplicates selects how repeated (row, col) triplets are resolved.
// Implementation:
//   - Stage 1: validate p is one of SumDuplicates, KeepFirst, KeepLast.
//   - Stage 2: return a setter that writes p into Options.
//
// Errors:
//   - Panics with a stable message when p is unknown.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - KeepFirst/KeepLast refer to input order of the triplets, which is row
//     order of the source table.
func WithDuplicates(p DuplicatePolicy) Option {
	if p < SumDuplicates || p > KeepLast {
		panic(panicDuplicatePolicyInvalid)
	}

	return func(o *Options) { o.duplicates = p }
}

// WithEliminateZeros drops cells whose resolved value is exactly zero.
// Implementation:
//   - Stage 1: set eliminateZeros=true.
//
// Behavior highlights:
//   - Applied after duplicate resolution, so a +1/-1 pair disappears.
//   - NNZ then counts only structurally non-zero cells.
func WithEliminateZeros() Option {
	return func(o *Options) { o.eliminateZeros = true }
}

// WithKeepZeros keeps explicitly stored zeros (default).
func WithKeepZeros() Option {
	return func(o *Options) { o.eliminateZeros = false }
}

// WithValidateNaNInf enables strict finite-value validation of triplet values.
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - FromTriplets fails with ErrNaNInf on the first NaN or ±Inf value.
//   - Integer storage types are always finite; the flag is a no-op for them.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Exposed so callers (and tests) can inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Duplicates reports the effective duplicate policy.
func (o Options) Duplicates() DuplicatePolicy { return o.duplicates }

// EliminateZeros reports whether zero cells are dropped.
func (o Options) EliminateZeros() bool { return o.eliminateZeros }

// ValidateNaNInf reports whether non-finite values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from documented defaults.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		duplicates:     DefaultDuplicates,
		eliminateZeros: DefaultEliminateZeros,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
