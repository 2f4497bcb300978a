package microdom

import "github.com/cespare/xxhash/v2"

// Hash returns a 64-bit content hash of the node: the xxhash of its
// canonical (compact, declaration-free) serialization. Two nodes with equal
// content hash identically regardless of parents or listeners, which makes
// the hash usable for cheap change detection.
func Hash(n Node) uint64 {
	d := xxhash.New()
	// Writing to the digest cannot fail and the canonical form is
	// serializable for every node kind, so the error is impossible here.
	if err := Write(d, n, Indent(0), OmitDeclaration()); err != nil {
		panic("microdom: canonical serialization failed: " + err.Error())
	}
	return d.Sum64()
}
