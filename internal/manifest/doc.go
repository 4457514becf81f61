// Package manifest loads producer declarations from HCL files and translates
// them into a format-agnostic model.
//
// A manifest declares everything the registry needs to know about a producer
// without running it: its metadata, the parameter paths it requires, the
// paths and formulas it promises to produce, formula definitions, and
// parameter definitions (including ESTABLISHED constants with their cited
// values, which Seed writes into a registry before any producer runs).
//
// The numeric computation a producer performs is deliberately outside this
// package; manifests describe contracts, not code.
package manifest
