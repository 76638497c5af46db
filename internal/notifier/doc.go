// Package notifier provides notification interfaces and implementations for daily court statistics.
//
// The notifier package supports posting the end-of-day summary to various
// platforms including Twitter. It handles OAuth authentication and message
// formatting, and includes a dry-run implementation for previewing posts.
package notifier
