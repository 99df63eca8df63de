// Package hellodict provides a client-side dictionary lookup engine.
// It loads a compressed headword → HTML definition corpus once, indexes it,
// and answers exact-word and wildcard-pattern queries without blocking
// callers on the load.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., zstd/, goquery/, bluemonday/).
package hellodict
