// Package snapshot serializes a bitlongvec.Vector to a byte stream.
//
// The format is a fixed little-endian header (magic, format version,
// compression type, bit width, length) followed by the packed word array,
// optionally compressed with LZ4 or ZSTD:
//
//	snapshot.Write(w, vec, func(o *snapshot.Options) {
//	    o.Compression = snapshot.CompressionZSTD
//	})
//
//	vec, err := snapshot.Read(r)
//
// Snapshots are self-describing: Read needs no out-of-band configuration.
package snapshot
