// Package mapstore persists isomorphism mappings in a Badger database.
//
// Long enumerations can stream their results to disk instead of holding
// every mapping in memory. Mappings are keyed by a dense big-endian
// uint64 sequence starting at zero, stored as JSON, and replayed in
// insertion order by Each. Reopening a directory-backed store resumes
// the sequence where the previous session stopped.
package mapstore
