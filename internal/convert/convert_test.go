package convert

import (
	"math/big"
	"testing"
	"testing/quick"

	"github.com/dsprenkels/curve13318/internal/fe10"
	"github.com/dsprenkels/curve13318/internal/fe12"
	"github.com/dsprenkels/curve13318/internal/fe51"
)

var primeP = func() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 255)
	return p.Sub(p, big.NewInt(19))
}()

func sliceFromBig(n *big.Int) *[32]byte {
	n = new(big.Int).Mod(n, primeP)
	var s [32]byte
	b := n.Bytes()
	for i, v := range b {
		s[len(b)-1-i] = v
	}
	return &s
}

func fe10ToBig(z *fe10.FE10) *big.Int {
	var frozen fe10.Frozen
	fe10.Reduce(&frozen, z)
	b := frozen.Bytes()
	return new(big.Int).SetBytes(reverse(b[:]))
}

func fe51ToBig(z *fe51.FE51) *big.Int {
	b := z.Pack()
	return new(big.Int).SetBytes(reverse(b[:]))
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// TestFE12ToFE10MatchesFE10FromBytes checks the explicit cross-field
// property: decoding the same 32 bytes through fe12 and converting,
// versus decoding directly through fe10, must agree.
func TestFE12ToFE10MatchesFE10FromBytes(t *testing.T) {
	f := func(a uint32) bool {
		s := sliceFromBig(big.NewInt(int64(a)))

		viaFE12 := fe12.FromBytes(s)
		viaFE12.Squeeze()
		got := FE12ToFE10(viaFE12)

		want := fe10.FromBytes(s)

		return fe10ToBig(got).Cmp(fe10ToBig(want)) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestFE12ToFE51MatchesFE10FromBytes(t *testing.T) {
	f := func(a uint32) bool {
		s := sliceFromBig(big.NewInt(int64(a)))

		viaFE12 := fe12.FromBytes(s)
		viaFE12.Squeeze()
		got := FE12ToFE51(viaFE12)

		want := fe10.FromBytes(s)

		return fe51ToBig(got).Cmp(fe10ToBig(want)) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
