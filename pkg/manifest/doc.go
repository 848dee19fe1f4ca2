// Package manifest loads the layered devbase package manifest.
//
// A manifest is a YAML document with a "core" tool group and a "packs" map
// of optional, named tool bundles. An organization may ship an overlay
// document that is deep-merged onto the base manifest: nested maps merge
// key-by-key while scalars and lists in the overlay replace the base value
// wholesale.
//
// The merged document stays loosely typed. Category sub-maps are decoded
// into typed entries on demand and decoding is best-effort: malformed
// sub-structures produce empty or partial results, never errors. Only a
// missing base manifest is fatal.
package manifest
