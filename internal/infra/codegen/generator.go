package codegen

import (
	"crypto/rand"
	"math/big"

	"referral/internal/domain/constants"
	"referral/internal/domain/service"
)

type randomCodeGenerator struct {
	alphabet string
	length   int
}

// New creates a CodeGenerator producing fixed-length codes over the
// uppercase alphanumeric alphabet, drawn from crypto/rand.
func New() service.CodeGenerator {
	return &randomCodeGenerator{
		alphabet: constants.CodeAlphabet,
		length:   constants.CodeLength,
	}
}

func (g *randomCodeGenerator) Generate() string {
	max := big.NewInt(int64(len(g.alphabet)))
	code := make([]byte, g.length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(err)
		}
		code[i] = g.alphabet[n.Int64()]
	}

	return string(code)
}
