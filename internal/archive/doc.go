// Package archive provides JSON-based day archives of parsed cause lists.
//
// The archive package writes one file per list date (causelist_DATE.json)
// under a local data directory, preserving the parsed records alongside the
// database so each day's list survives as a reviewable artifact.
package archive
