// Package persist stores the amplifier's configuration backup blob.
//
// The blob is a CBOR encoding of the model snapshot plus a small
// versioned envelope. Only the save/load/reset trigger protocol is
// contractual; the on-disk shape is internal and may change between
// versions.
package persist
