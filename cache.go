package polyroots

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/jonathanmweiss/go-polyroots/poly"
)

type digest [32]byte

// fingerprint hashes the exact bit patterns of p's coefficients, so two
// polynomials share a cache entry only if they are bit-identical.
func fingerprint(p *poly.Polynomial) digest {
	coeffs := p.Coefficients()

	buf := make([]byte, 8*len(coeffs))
	for i, c := range coeffs {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(c))
	}

	return blake3.Sum256(buf)
}

// rootCache keeps converged Durand-Kerner results. Entries are cloned on the
// way in and out so callers cannot corrupt them.
type rootCache struct {
	sync.Locker
	digestToRoots map[digest]ComplexRoots
}

func newRootCache() *rootCache {
	return &rootCache{
		Locker:        &sync.Mutex{},
		digestToRoots: make(map[digest]ComplexRoots),
	}
}

func (c *rootCache) storeRoots(key digest, res ComplexRoots) {
	c.Lock()
	defer c.Unlock()

	if _, ok := c.digestToRoots[key]; ok {
		return
	}

	c.digestToRoots[key] = res.clone()
}

func (c *rootCache) loadRoots(key digest) (ComplexRoots, bool) {
	c.Lock()
	defer c.Unlock()

	res, ok := c.digestToRoots[key]
	if !ok {
		return ComplexRoots{}, false
	}

	return res.clone(), true
}

func (c *rootCache) len() int {
	c.Lock()
	defer c.Unlock()

	return len(c.digestToRoots)
}
