package pin

// Bcd is a 12-digit big-endian binary-coded-decimal score. Digit 0 is the
// most significant; every digit is 0..9.
type Bcd [12]uint8

var BcdZero Bcd

// BcdDigit places a single digit in the units position.
func BcdDigit(d uint8) Bcd {
	var b Bcd
	b[11] = d
	return b
}

// BcdFromBytes builds a Bcd from a raw 12-byte sequence as stored in the
// executable image. Digits outside 0..9 mean the offset tables are wrong.
func BcdFromBytes(raw []byte) (Bcd, error) {
	var b Bcd
	if len(raw) != 12 {
		return b, ErrMalformedImage
	}
	for i, d := range raw {
		if d >= 10 {
			return b, ErrMalformedImage
		}
		b[i] = d
	}
	return b, nil
}

// BcdFromASCII parses up to 12 ASCII digits, right-justified.
func BcdFromASCII(digits []byte) Bcd {
	var b Bcd
	if len(digits) > len(b) {
		panic("pin: bcd literal too long")
	}
	off := len(b) - len(digits)
	for i, c := range digits {
		if c < '0' || c > '9' {
			panic("pin: bcd literal not a digit")
		}
		b[off+i] = c - '0'
	}
	return b
}

// ToASCII renders the score with leading blanks; the units digit is always
// at least '0'.
func (b Bcd) ToASCII() [12]byte {
	var res [12]byte
	got := false
	for i, d := range b {
		got = got || d != 0
		if got {
			res[i] = '0' + d
		} else {
			res[i] = ' '
		}
	}
	if res[11] == ' ' {
		res[11] = '0'
	}
	return res
}

// Add returns b+o with carry, modulo 12 digits.
func (b Bcd) Add(o Bcd) Bcd {
	var carry uint8
	for i := len(b) - 1; i >= 0; i-- {
		b[i] += o[i] + carry
		if b[i] >= 10 {
			b[i] -= 10
			carry = 1
		} else {
			carry = 0
		}
	}
	return b
}

// MulDigit multiplies by a single digit 0..9.
func (b Bcd) MulDigit(d uint8) Bcd {
	if d >= 10 {
		panic("pin: bcd multiplier out of range")
	}
	var res Bcd
	var carry uint8
	for i := len(b) - 1; i >= 0; i-- {
		carry += b[i] * d
		res[i] = carry % 10
		carry /= 10
	}
	return res
}

// Cmp returns -1, 0 or 1.
func (b Bcd) Cmp(o Bcd) int {
	for i := range b {
		if b[i] != o[i] {
			if b[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (b Bcd) Less(o Bcd) bool { return b.Cmp(o) < 0 }

func (b Bcd) IsZero() bool { return b == BcdZero }

// LeadingZeros counts the leading zero digits.
func (b Bcd) LeadingZeros() int {
	n := 0
	for n < len(b) && b[n] == 0 {
		n++
	}
	return n
}
