// Package lexicon collects per-language vocabulary (syntax, API and
// conceptual terms) for programming ecosystems, grouped by release version,
// and persists one normalized record per source for a browsing frontend.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/, readability/).
package lexicon
