// Command dissect dumps the assets mined from a table executable and its
// module: board strips and physmaps as PNG, samples as WAV. It exists to
// debug the extractor against new binaries.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/flga/pinball/pin"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func dumpImage(path string, img *pin.Image) error {
	out := image.NewRGBA(image.Rect(0, 0, img.W, img.H))
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			pix := img.At(x, y)
			var c pin.RGB
			if int(pix) < len(img.Cmap) {
				c = img.Cmap[pix]
			}
			out.Set(x, y, color.RGBA{c.R, c.G, c.B, 0xff})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, out)
}

func dumpPhysmap(path string, physmap []uint8) error {
	out := image.NewRGBA(image.Rect(0, 0, 320, 576))
	for y := 0; y < 576; y++ {
		for x := 0; x < 320; x++ {
			b := physmap[y*320+x]
			material := (b & 0xf) << 4
			ramp := b >> 4 << 4
			out.Set(x, y, color.RGBA{material, ramp, 0, 0xff})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, out)
}

func dumpSample(path string, s *pin.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := wav.NewEncoder(f, 8287, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8287},
		SourceBitDepth: 16,
	}
	for _, b := range s.Data {
		buf.Data = append(buf.Data, int(int8(b))<<8)
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

// renderModule plays the module offline through the mixer and captures the
// stereo output as a 16-bit WAV.
func renderModule(path string, mod *pin.Mod, seconds int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	const rate = 48000
	player := pin.NewPlayer(mod, nil, rate)
	enc := wav.NewEncoder(f, rate, 16, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: rate},
		SourceBitDepth: 16,
	}
	out := make([]float32, rate/50*2)
	for block := 0; block < seconds*50; block++ {
		player.MakeSamples(out)
		buf.Data = buf.Data[:0]
		for _, v := range out {
			buf.Data = append(buf.Data, int(v*0x7fff))
		}
		if err := enc.Write(buf); err != nil {
			return err
		}
	}
	return enc.Close()
}

func run(prgPath, modPath, outDir string, table, render int) error {
	prg, err := os.ReadFile(prgPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	assets, err := pin.LoadTableAssets(prg, pin.TableID(table-1))
	if err != nil {
		return err
	}
	if err := dumpImage(filepath.Join(outDir, "board.png"), assets.MainBoard); err != nil {
		return err
	}
	for layer, physmap := range assets.Physmaps {
		name := fmt.Sprintf("physmap%d.png", layer)
		if err := dumpPhysmap(filepath.Join(outDir, name), physmap); err != nil {
			return err
		}
	}
	fmt.Printf("%d lights, %d flippers, %d bumpers, %d uops, %d msgs, %d anims\n",
		len(assets.Lights), len(assets.Flippers), len(assets.Bumpers),
		len(assets.Scripts), len(assets.Msgs), len(assets.Anims))
	for i, outline := range assets.BallOutline {
		fmt.Printf("outline %2d: (%2d,%2d) angle %4d quad %x\n",
			i, outline.X, outline.Y, outline.Angle, outline.Quad)
	}

	if modPath == "" {
		return nil
	}
	modData, err := os.ReadFile(modPath)
	if err != nil {
		return err
	}
	mod, err := pin.LoadMod(modData)
	if err != nil {
		return err
	}
	fmt.Printf("module %q: %d patterns, %d positions\n", mod.Name, len(mod.Patterns), len(mod.Positions))
	if render > 0 {
		if err := renderModule(filepath.Join(outDir, "module.wav"), mod, render); err != nil {
			return err
		}
	}
	for i := range mod.Samples {
		s := &mod.Samples[i]
		if len(s.Data) == 0 {
			continue
		}
		name := fmt.Sprintf("sample%02d.wav", i)
		if err := dumpSample(filepath.Join(outDir, name), s); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	out := flag.String("o", "dissect-out", "output directory")
	table := flag.Int("table", 1, "table number 1..4")
	render := flag.Int("render", 0, "also render N seconds of the module to module.wav")
	flag.Parse()

	if flag.Arg(0) == "" {
		fmt.Fprintln(os.Stderr, "usage: dissect [-o DIR] [-table N] [-render SECS] TABLE.PRG [TABLE.MOD]")
		os.Exit(2)
	}
	if err := run(flag.Arg(0), flag.Arg(1), *out, *table, *render); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
