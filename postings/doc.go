// Package postings implements the positional posting-list codec used to
// store, for one keyword, every (document, position) occurrence pair in a
// single immutable byte blob.
//
// # Blob layout
//
// A blob starts with one byte holding field_bits (1..8), the number of
// bits needed for the largest field identifier seen in the input. It is
// followed by the lookup table: hash_bits and offset_bits (one byte
// each), the 32-bit minimum docid, and 2^hash_bits little-endian 32-bit
// cells. The rest of the blob is the document frames, one per docid, in
// ascending docid order.
//
// # Document frames
//
// Each frame is a varint docid, a varint body size, the first position
// reordered as (in_field_pos << field_bits | field_id), varint deltas for
// the remaining positions, and a single 0x00 terminator byte. Varints
// are 7-bit little-endian groups with the high bit marking continuation;
// the value zero is escaped as the two bytes 0x80 0x00 so that a bare
// zero byte inside a frame body can never be mistaken for a terminator.
//
// # Lookup table
//
// The table cell for a docid is (docid - min_docid) >> offset_bits. Each
// populated cell holds the blob offset of the first frame hashing to it;
// empty buckets hold zero. Roughly 32 documents share a bucket: FindDoc
// resolves within a bucket by interpolating between the bucket's first
// frame and the next populated bucket, then scanning backwards for a
// frame terminator, so a denser table would only inflate the blob.
//
// # Concurrency
//
// Encoding builds a private buffer and hands it to the caller. All read
// operations (Decode, FindDoc, Lookup, Match) treat the blob as
// immutable and are safe for any number of concurrent readers.
package postings
