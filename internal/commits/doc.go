// Package commits keeps the local overlay of user annotations on top of the
// repository history.
//
// A Store maps abbreviated hashes to Records. Reconcile merges a freshly read
// log into the store: known commits get their subject and current flag
// refreshed, new commits are appended with the next sequence number, and
// commits that left the log are kept with current=false so their notes and
// selection survive a checkout, rebase or filter.
//
// The store is persisted as a CSV file that is rewritten in full on every
// save. The write is not atomic: a crash in the middle of Save can leave a
// truncated file behind. For a single-user local tool this is accepted; a
// zero-byte file loads as an empty store and any other damage is reported as
// ErrCorruptStore rather than silently dropped.
//
// Store is not safe for concurrent use. It has exactly one writer, the
// process that opened it.
package commits
