// Package lineio opens and decodes the text streams the scanner runs over.
//
// A Source yields newline-delimited records from a file or standard input,
// transparently decompressing gzip when auto-detection is enabled. Decode
// failures on a single record (invalid UTF-8, over-long lines) surface as
// *RecordError so the caller can report them and keep going; transport
// failures and io.EOF end iteration. A Sink writes records to a file or
// standard output, terminating every record with exactly one newline.
package lineio
