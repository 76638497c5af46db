// Package dashboard renders the public statistics page.
//
// The dashboard package assembles the latest daily summary, judge
// performance, weekly trend, and month-to-date aggregates into a static
// HTML page suitable for publishing from a docs/ directory.
package dashboard
