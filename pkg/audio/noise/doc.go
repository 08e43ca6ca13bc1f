// ABOUTME: Pink noise generation package
// ABOUTME: Voss-McCartney generator with an injected random source
// Package noise synthesizes finite pink-noise buffers.
//
// The generator uses the Voss-McCartney algorithm: a set of random rows, each
// refreshed at half the rate of the previous one, summed together with a
// per-sample white-noise term. The randomness is always injected so a fixed
// seed reproduces the same buffer bit for bit.
//
// Example:
//
//	pink, err := noise.NewPink(rand.New(rand.NewSource(1)), noise.DefaultRows)
//	buf, err := pink.Generate(3, 44100)
package noise
