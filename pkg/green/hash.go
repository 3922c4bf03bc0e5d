package green

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Structural hashes are 64-bit truncations of BLAKE3 digests. A token
// hashes its kind and text; a node hashes its kind and its children's
// hashes, so the hash of a whole subtree is computed incrementally in
// O(children) per node and cached at construction time.

func hashToken(kind Kind, txt string) uint64 {
	h := blake3.New()
	var kb [2]byte
	binary.LittleEndian.PutUint16(kb[:], uint16(kind))
	_, _ = h.Write(kb[:])
	_, _ = h.WriteString(txt)
	return truncateDigest(h)
}

func hashNode(kind Kind, children []Child) uint64 {
	h := blake3.New()
	var kb [2]byte
	binary.LittleEndian.PutUint16(kb[:], uint16(kind))
	_, _ = h.Write(kb[:])
	var cb [8]byte
	for _, c := range children {
		binary.LittleEndian.PutUint64(cb[:], c.elem.Hash())
		_, _ = h.Write(cb[:])
	}
	return truncateDigest(h)
}

func hashElements(kind Kind, children []Element) uint64 {
	h := blake3.New()
	var kb [2]byte
	binary.LittleEndian.PutUint16(kb[:], uint16(kind))
	_, _ = h.Write(kb[:])
	var cb [8]byte
	for _, el := range children {
		binary.LittleEndian.PutUint64(cb[:], el.Hash())
		_, _ = h.Write(cb[:])
	}
	return truncateDigest(h)
}

func truncateDigest(h *blake3.Hasher) uint64 {
	var sum [32]byte
	return binary.LittleEndian.Uint64(h.Sum(sum[:0])[:8])
}
