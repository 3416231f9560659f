// Package codec implements the binary archive format for precomputed state
// collections. An archive is a fixed preamble followed by a flat body of
// serialized states, and is only loadable by a state space whose signature
// matches the one recorded when the archive was written.
//
// # Archive Format
//
// All integers are little-endian. The layout is:
//
//	[Marker(4)][SignatureLength(4)][SignatureElements(4 each)][StateCount(8)][MetadataSize(8)][Body]
//
// Fields:
//   - Marker: fixed constant 0x4C504D4F identifying statebank archives
//   - SignatureLength: number of signature elements that follow; this is
//     element 0 of the space signature, written as part of the signature
//     block rather than as an independent field
//   - SignatureElements: the remaining signature elements, verbatim
//   - StateCount: number of serialized states in the body
//   - MetadataSize: reserved per-state side-data length, always 0 on write
//   - Body: StateCount states back-to-back at a fixed stride of
//     SerializationLength()+MetadataSize bytes, no per-state length prefix
//
// The writer emits the full signature slice as one contiguous block while
// the reader treats the first stored integer as a length field and
// cross-checks it against the current space. The asymmetry is part of the
// original OMPL archive format and is preserved for byte compatibility.
//
// # Validation
//
// ReadHeader fails closed with a typed error before any body byte is
// consumed: ErrUnavailable for an empty stream, ErrBadMagic for a wrong
// marker, ErrSignatureMismatch for any signature difference or short read
// inside the signature block, and ErrTruncated when declared lengths exceed
// the available bytes. The signature check runs before any state
// deserialization because the body layout depends on it; decoding against
// the wrong layout would produce silently corrupt states instead of a
// detectable error.
//
// # Performance
//
// Both directions use exactly one buffer allocation and one bulk I/O call
// for the body. This fixes the wire layout and avoids per-state stream
// overhead for large collections.
package codec
