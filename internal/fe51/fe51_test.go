package fe51

import (
	"math/big"
	"testing"
	"testing/quick"
)

var primeP = func() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 255)
	return p.Sub(p, big.NewInt(19))
}()

func (z *FE51) toBig() *big.Int {
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

func feFromBig(n *big.Int) *FE51 {
	n = new(big.Int).Mod(n, primeP)
	var s [32]byte
	b := n.Bytes()
	for i, v := range b {
		s[len(b)-1-i] = v
	}

	var z FE51
	z[0] = le64(s[0:8]) & maskLow51Bits
	z[1] = (le64(s[6:14]) >> 3) & maskLow51Bits
	z[2] = (le64(s[12:20]) >> 6) & maskLow51Bits
	z[3] = (le64(s[19:27]) >> 1) & maskLow51Bits
	z[4] = (le64(s[24:32]) >> 12) & maskLow51Bits
	return &z
}

func le64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

func TestPackRoundTrip(t *testing.T) {
	f := func(a uint32) bool {
		want := new(big.Int).Mod(big.NewInt(int64(a)), primeP)
		x := feFromBig(want)
		return x.toBig().Cmp(want) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMulMatchesBig(t *testing.T) {
	f := func(a, b uint32) bool {
		x := feFromBig(big.NewInt(int64(a)))
		y := feFromBig(big.NewInt(int64(b)))

		var prod FE51
		prod.Mul(x, y)

		want := new(big.Int).Mul(big.NewInt(int64(a)), big.NewInt(int64(b)))
		want.Mod(want, primeP)
		return prod.toBig().Cmp(want) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestSquareMatchesMul(t *testing.T) {
	f := func(a uint32) bool {
		x := feFromBig(big.NewInt(int64(a)))
		var sq, mul FE51
		sq.Square(x)
		mul.Mul(x, x)
		return sq.toBig().Cmp(mul.toBig()) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestNSquare(t *testing.T) {
	x := feFromBig(big.NewInt(7))
	var viaLoop, viaN FE51
	viaLoop.Set(x)
	for i := 0; i < 6; i++ {
		viaLoop.Square(&viaLoop)
	}
	viaN.NSquare(x, 6)

	if viaLoop.toBig().Cmp(viaN.toBig()) != 0 {
		t.Errorf("NSquare(x,6) != 6 iterated squares: %v vs %v", viaN.toBig(), viaLoop.toBig())
	}
}

func TestInvert(t *testing.T) {
	for _, v := range []int64{1, 2, 3, 5, 13318, 1 << 20} {
		x := feFromBig(big.NewInt(v))
		var inv, check FE51
		inv.Invert(x)
		check.Mul(x, &inv)

		if check.toBig().Cmp(big.NewInt(1)) != 0 {
			t.Errorf("invert(%d)*%[1]d != 1, got %v", v, check.toBig())
		}
	}
}
