// Package logtail reads the end of the cinefind log file.
//
// Records are written by log/slog's text handler, one key=value record per
// line. Read keeps the last N matching lines in a ring buffer so large
// rotated files are never held in memory. A Filter narrows the output to a
// minimum level or to the records of a single catalog request, which is how
// the logs command traces one search from issue to delivery.
package logtail
