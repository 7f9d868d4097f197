// File: freelist/packet.go
// License: Apache-2.0

package freelist

// PayloadSize is the fixed capacity of every packet payload, in bytes.
const PayloadSize = 10 * 1024

// Packet is a reusable fixed-capacity buffer owned by a Pool.
//
// Length counts the valid bytes at the front of Data; bytes past Length
// are stale content from previous users and must not be read. Only the
// current owner (the pool, or the caller holding it between Allocate and
// Release) may touch Length and Data.
type Packet struct {
	// Length is the number of valid bytes currently stored in Data.
	Length uint16

	// Data is the payload, carved from the pool's arena. Its length is
	// fixed at pool construction (PayloadSize by default) and it is
	// zero-filled exactly once, at Init.
	Data []byte

	owner      *Pool
	checkedOut bool
}

// Payload returns the valid prefix Data[:Length].
func (p *Packet) Payload() []byte {
	n := int(p.Length)
	if n > len(p.Data) {
		n = len(p.Data)
	}
	return p.Data[:n]
}

// Set copies b into the packet and updates Length. Returns false when b
// exceeds the payload capacity; the packet is left unchanged.
func (p *Packet) Set(b []byte) bool {
	if len(b) > len(p.Data) {
		return false
	}
	copy(p.Data, b)
	p.Length = uint16(len(b))
	return true
}

// CheckedOut reports whether the packet is currently borrowed from its
// pool.
func (p *Packet) CheckedOut() bool {
	return p.checkedOut
}
