// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render is the template rendering engine. It substitutes scalar
// placeholders, expands repeatable sections (education, experience,
// projects, authors) into LaTeX fragments, and splices those fragments into
// the template at an exact example block, a balanced directive such as
// \author{...}, or a fallback anchor.
//
// Everything here is a pure function of its inputs: no I/O, no caching, and
// no shared mutable state, so renders of the same template may run
// concurrently. Compiling the result is the job of package compile.
package render
