// Package hasher derives short, deterministic digests of strings and numeric
// arrays. The digests are change-detection fingerprints and session labels,
// not secrets.
//
// Every digest is SHA-256 over the UTF-8 bytes of the input, rendered in
// standard padded base32 or base64:
//
//	hasher.B32Hash("Fe K-edge") // 56 characters, A-Z2-7 and '='
//	hasher.B64Hash("Fe K-edge") // 44 characters
//
// ArrayHash formats every element of a numeric slice to a fixed width before
// hashing, so two arrays with equal formatted values always share a
// fingerprint. Tracker remembers the last fingerprint per key and reports
// whether an array changed since it was last seen.
//
// SessionID returns an 8-character label derived from the machine node id
// and the process id. It is stable for the life of the process and safe to
// use in file names and identifiers.
//
// # Error handling
//
// No function returns an error. SHA-256 is always linked into the binary.
package hasher
