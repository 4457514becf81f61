// Package entry defines the record types held by the registry: parameters,
// formulas, narrative sections, and the mismatch log, together with the
// enumerations (status, bound type, validation status) and the value
// equivalence rules shared by every component that compares stored values.
//
// Entries are plain data. All invariants (immutability of established
// constants, tolerance-gated overwrite logging) are enforced by the registry
// package, not here.
package entry
