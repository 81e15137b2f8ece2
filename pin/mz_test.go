package pin

import (
	"encoding/binary"
	"testing"
)

// buildMz assembles a minimal MZ executable whose entry code carries the
// `mov ax, imm16` (the DS value) the loader peeks at.
func buildMz(ds uint16, imageLen int) []byte {
	const headerSz = 0x20
	total := headerSz + imageLen
	data := make([]byte, total)
	copy(data, "MZ")
	p16 := func(off int, v uint16) { binary.LittleEndian.PutUint16(data[off:], v) }
	p16(2, uint16(total%0x200))
	p16(4, uint16(total/0x200+1))
	p16(6, 0)              // relocs
	p16(8, headerSz/0x10)  // header paragraphs
	p16(0xe, 0x123)        // ss
	p16(0x10, 0x80)        // sp
	p16(0x14, 0)           // ip
	p16(0x16, 0)           // cs
	p16(0x18, headerSz)    // reloc table offset
	data[headerSz+0xe] = 0xb8
	p16(headerSz+0xf, ds)
	return data
}

func TestLoadMzExe(t *testing.T) {
	exe, err := LoadMzExe(buildMz(0x1c7, 0x200))
	if err != nil {
		t.Fatal(err)
	}
	if exe.DS != 0x1c7 {
		t.Errorf("ds = %#x, want 0x1c7", exe.DS)
	}
	if exe.SS != 0x123 || exe.SP != 0x80 || exe.CS != 0 || exe.IP != 0 {
		t.Errorf("registers: ss=%#x sp=%#x cs=%#x ip=%#x", exe.SS, exe.SP, exe.CS, exe.IP)
	}
	if len(exe.Image) != 0x200 {
		t.Errorf("image length %d", len(exe.Image))
	}
}

func TestLoadMzExeRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", []byte("MZ")},
		{"bad magic", append([]byte("ZM"), make([]byte, 0x40)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadMzExe(tt.data); err == nil {
				t.Error("accepted")
			}
		})
	}

	// entry code without the DS init is not one of ours
	broken := buildMz(0x100, 0x40)
	broken[0x20+0xe] = 0x90
	if _, err := LoadMzExe(broken); err == nil {
		t.Error("accepted image without DS init")
	}
}

func TestMzExeReads(t *testing.T) {
	raw := buildMz(1, 0x200)
	// plant some data in what becomes segment 3 (offset 0x30 of the image),
	// clear of the DS immediate at image offsets 0xf..0x10
	img := raw[0x20:]
	img[0x30] = 0x34
	img[0x31] = 0x12
	for i, d := range []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3} {
		img[0x20+i] = d
	}
	exe, err := LoadMzExe(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got := exe.Word(3, 0); got != 0x1234 {
		t.Errorf("word = %#x", got)
	}
	if got := exe.WordS(3, 0); got != 0x1234 {
		t.Errorf("words = %#x", got)
	}
	bcd, err := exe.DataBcd(0x10)
	if err != nil {
		t.Fatal(err)
	}
	if bcd != BcdFromASCII([]byte("123")) {
		t.Errorf("bcd = %q", bcd.ToASCII())
	}
}
