// Package repository owns the in-memory catalog stores.
//
// Each resource type gets one Registry: an insertion-ordered map from
// identifier to record plus the Sequence that hands out identifiers.
// All reads and writes to a registry are serialized by its own lock;
// registries never share state with each other.
package repository
