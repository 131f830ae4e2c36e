// Package snapshot assembles a typed model from a capture-session snapshot
// directory and serializes it as a canonical, deterministically ordered
// text dump.
//
// A snapshot directory contains a snapshot.ini manifest, one description
// file per device it lists, and optionally a trace-metadata file. The
// pipeline is strictly sequential:
//
//	locate manifest -> parse -> validate raw streams -> build models ->
//	canonicalize -> write dump
//
// The output file is not created until every earlier step has succeeded, so
// a failing run leaves the filesystem untouched. Canonicalization sorts all
// collections so that two snapshots with identical semantic content produce
// byte-identical output regardless of declaration order or whitespace.
//
// # Error Handling
//
// Every failure is reported as a *snapshot.Error carrying a severity, a
// stable code and a message naming the offending file or section. The first
// error aborts the run; there is no local recovery anywhere in the pipeline.
package snapshot
