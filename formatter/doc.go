// Package formatter renders the line prefixes written in front of the
// first fragment of every log line.
//
// Both sinks share a common segment, "<timestamp> <LEVEL>", followed by
// the caller label when it differs from the logger's display name. The
// file prefix is the common segment plus ": ". The console prefix puts
// the display name (when non-empty) in front of it. PLAINTEXT lines get no
// prefix at all.
//
// Timestamps are UTC and use the dd.MM.yyyy hh:mm:ss layout unless the
// Config says otherwise. TextFormatter writes into a caller-provided
// bytes.Buffer and relies on time.AppendFormat, so building a prefix does
// not allocate. GetBuffer and PutBuffer expose the package's buffer pool
// to callers assembling prefix plus fragment into a single write.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
