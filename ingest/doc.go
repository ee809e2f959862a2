// Package ingest reads point-set datasets from their plain-text form.
//
// One point per line, objective values separated by whitespace. One or more blank
// lines end a set; lines starting with '#' are comments and never end a set. Sets
// are numbered 1..k in input order.
//
//	# two sets of two-objective points
//	1.0 2.0
//	2.0 1.0
//
//	1.5 1.5
//
// Input compressed with gzip, zstd, lz4 (frame format) or bzip2 is detected by its
// magic bytes and decompressed on the fly.
package ingest
