package fe12

import (
	"math"
	"math/big"
	"testing"
	"testing/quick"
)

var primeP = func() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 255)
	return p.Sub(p, big.NewInt(19))
}()

// toBig converts a squeezed FE12 to its big.Int residue mod p. Each
// limb already carries its 2^e(i) scale, so the value is the plain sum
// of the limbs. This helper tolerates fractional parts from the
// Karatsuba scaling constants by truncating: all limb values produced
// by Mul, Square and Squeeze are exact integers in float64 by
// construction.
func (z *FE12) toBig() *big.Int {
	sum := new(big.Int)
	for _, v := range z {
		bi, _ := big.NewFloat(v).Int(nil)
		sum.Add(sum, bi)
	}
	return sum.Mod(sum, primeP)
}

func feFromBig(n *big.Int) *FE12 {
	n = new(big.Int).Mod(n, primeP)
	var s [32]byte
	b := n.Bytes()
	for i, v := range b {
		s[len(b)-1-i] = v
	}
	return FromBytes(&s)
}

func TestFromBytesRoundTrip(t *testing.T) {
	f := func(a uint32) bool {
		want := new(big.Int).Mod(big.NewInt(int64(a)), primeP)
		x := feFromBig(want)
		return x.toBig().Cmp(want) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestSqueezeIsIdentity(t *testing.T) {
	f := func(a uint32) bool {
		x := feFromBig(big.NewInt(int64(a)))
		before := x.toBig()
		x.Squeeze()
		return x.toBig().Cmp(before) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMulMatchesBig(t *testing.T) {
	f := func(a, b uint32) bool {
		x := feFromBig(big.NewInt(int64(a)))
		y := feFromBig(big.NewInt(int64(b)))

		var prod FE12
		prod.Mul(x, y)
		prod.Squeeze()

		want := new(big.Int).Mul(big.NewInt(int64(a)), big.NewInt(int64(b)))
		want.Mod(want, primeP)
		return prod.toBig().Cmp(want) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMulMatchesSchoolbook(t *testing.T) {
	f := func(a, b uint32) bool {
		x := feFromBig(big.NewInt(int64(a)))
		y := feFromBig(big.NewInt(int64(b)))

		var karatsuba, schoolbook FE12
		karatsuba.Mul(x, y)
		karatsuba.Squeeze()
		schoolbook.MulSchoolbook(x, y)
		schoolbook.Squeeze()

		return karatsuba.toBig().Cmp(schoolbook.toBig()) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestSquareMatchesMul(t *testing.T) {
	f := func(a uint32) bool {
		x := feFromBig(big.NewInt(int64(a)))

		var sq, mul FE12
		sq.Square(x)
		sq.Squeeze()
		mul.Mul(x, x)
		mul.Squeeze()

		return sq.toBig().Cmp(mul.toBig()) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestAddSub(t *testing.T) {
	f := func(a, b uint32) bool {
		x := feFromBig(big.NewInt(int64(a)))
		y := feFromBig(big.NewInt(int64(b)))

		var sum, diff FE12
		sum.Add(x, y)
		sum.Squeeze()
		diff.Sub(&sum, y)
		diff.Squeeze()

		return diff.toBig().Cmp(x.toBig()) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestAddBMatchesMulB(t *testing.T) {
	var zero FE12
	zero.AddB()
	zero.Squeeze()

	var b FE12
	b.One()
	b.MulB(&b)
	b.Squeeze()

	if zero.toBig().Cmp(b.toBig()) != 0 {
		t.Errorf("B != 1*B: %v vs %v", zero.toBig(), b.toBig())
	}
}

func TestUnsetBit59(t *testing.T) {
	x := 0x1p200
	if math.Signbit(unsetBit59(x)) {
		t.Fatal("unsetBit59 flipped sign of a positive value")
	}
}
