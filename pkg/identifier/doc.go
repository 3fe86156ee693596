// Package identifier validates and repairs identifier-like strings used as
// symbol and attribute names in a scripting host.
//
// A valid name is one or more identifiers joined by dots, where every
// identifier matches [A-Za-z_][A-Za-z0-9_]*, and the whole string is not one
// of the reserved words (language keywords and block terminators such as
// "endfor").
//
// # Usage
//
//	import "github.com/dmitrymomot/strkit/pkg/identifier"
//
//	identifier.IsValidName("data.energy") // true
//	identifier.IsValidName("for")         // false, reserved
//	identifier.FixName("2 theta", true)   // "_2_theta"
//	identifier.FixVarname("scan-001.dat") // "scan_001_dat"
//
// # Error handling
//
// Nothing in this package returns an error. Fixers always produce a
// best-effort result: FixName output is guaranteed to satisfy IsValidName and
// FixName is idempotent.
//
// The character tables and the reserved word set are immutable and the
// package holds no other state, so all helpers are safe for concurrent use.
package identifier
