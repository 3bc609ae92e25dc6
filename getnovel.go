// Package getnovel downloads serialized web novels chapter by chapter,
// maintains an incrementally updatable local archive per novel, and
// packages the archive into an EPUB for offline reading.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, epub/).
package getnovel
