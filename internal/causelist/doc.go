// Package causelist converts the text of a daily published cause list into
// typed case records.
//
// The document is loosely structured: court-hall headings, cause-list numbers,
// judge benches, and case entries appear in document order, with fields wrapped
// across physical lines and page footers bleeding into case text. The package
// walks the normalized text once, recognizing each structural anchor
// independently, and assembles records from the surrounding context. Records
// seen before any hall heading are backfilled when the hall becomes known.
//
// Parsing is a pure transform. It performs no I/O, allocates its state fresh
// per call, and never aborts on a malformed entry; a broken anchor is skipped
// and extraction continues.
package causelist
