package pin

import (
	"bytes"
	"encoding/binary"
)

// FarPtr addresses a byte inside the executable image.
type FarPtr struct {
	Seg uint16
	Off uint16
}

// MzExe is a loaded 16-bit real-mode executable. The image is the raw
// relocated bytes; all asset extraction goes through segment-relative reads.
type MzExe struct {
	Image  []byte
	Relocs []FarPtr
	CS     uint16
	IP     uint16
	SS     uint16
	SP     uint16
	DS     uint16
}

var mzMagic = []byte{'M', 'Z'}

// LoadMzExe parses the MZ header and slices out the load image. The data
// segment is discovered afterwards by peeking at the entry code: the original
// startup initializes DS with a `mov ax, imm16` at ip+0xe.
func LoadMzExe(data []byte) (*MzExe, error) {
	if len(data) < 0x1c || !bytes.Equal(data[:2], mzMagic) {
		return nil, ErrMalformedImage
	}
	rd := func(off int) int { return int(binary.LittleEndian.Uint16(data[off : off+2])) }
	szLast := rd(2)
	szPages := rd(4)
	numRelocs := rd(6)
	headerSz := rd(8) * 0x10
	imageSz := (szPages-1)*0x200 + szLast
	if headerSz > imageSz || imageSz > len(data) {
		return nil, ErrMalformedImage
	}
	exe := &MzExe{
		Image: data[headerSz:imageSz],
		SS:    uint16(rd(0xe)),
		SP:    uint16(rd(0x10)),
		IP:    uint16(rd(0x14)),
		CS:    uint16(rd(0x16)),
	}
	relocBase := rd(0x18)
	if relocBase+numRelocs*4 > len(data) {
		return nil, ErrMalformedImage
	}
	for i := 0; i < numRelocs; i++ {
		off := relocBase + i*4
		exe.Relocs = append(exe.Relocs, FarPtr{
			Off: uint16(rd(off)),
			Seg: uint16(rd(off + 2)),
		})
	}
	if exe.CodeByte(exe.IP+0xe) != 0xb8 {
		return nil, ErrMalformedImage
	}
	exe.DS = exe.CodeWord(exe.IP + 0xf)
	return exe, nil
}

// Segment returns the image starting at a segment base. Reads past the end of
// the image panic; extraction treats that as a malformed binary upstream.
func (e *MzExe) Segment(seg uint16) []byte {
	return e.Image[int(seg)*0x10:]
}

func (e *MzExe) Byte(seg, off uint16) uint8 {
	return e.Segment(seg)[off]
}

func (e *MzExe) Bytes(seg, off uint16, num int) []byte {
	s := e.Segment(seg)
	return s[int(off) : int(off)+num]
}

func (e *MzExe) Word(seg, off uint16) uint16 {
	return binary.LittleEndian.Uint16(e.Bytes(seg, off, 2))
}

func (e *MzExe) WordS(seg, off uint16) int16 {
	return int16(e.Word(seg, off))
}

func (e *MzExe) DataBytes(off uint16, num int) []byte { return e.Bytes(e.DS, off, num) }
func (e *MzExe) DataByte(off uint16) uint8            { return e.Byte(e.DS, off) }
func (e *MzExe) DataWord(off uint16) uint16           { return e.Word(e.DS, off) }
func (e *MzExe) DataWordS(off uint16) int16           { return e.WordS(e.DS, off) }

func (e *MzExe) DataBcd(off uint16) (Bcd, error) {
	return BcdFromBytes(e.DataBytes(off, 12))
}

func (e *MzExe) CodeBytes(off uint16, num int) []byte { return e.Bytes(e.CS, off, num) }
func (e *MzExe) CodeByte(off uint16) uint8            { return e.Byte(e.CS, off) }
func (e *MzExe) CodeWord(off uint16) uint16           { return e.Word(e.CS, off) }
