// Package service defines domain-level service interfaces implemented by the
// infrastructure layer.
package service

// CodeGenerator produces candidate referral codes. Generation is pure and
// side-effect free; uniqueness is enforced by the code registry, never by the
// quality of the random source.
type CodeGenerator interface {
	// Generate returns a uniformly random candidate over the code alphabet.
	Generate() string
}
