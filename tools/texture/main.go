package texture

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/AntonioND/nds-rtt-example/hw/texture"
)

var (
	flags = flag.NewFlagSet("texture", flag.ExitOnError)

	format = flags.String("format", "RGB5A1", "texture format: RGB5A1 | PAL256")
	dither = flags.Bool("dither", false, "enable Floyd-Steinberg error diffusion")
	output = flags.String("o", "", "output `file`, defaults to <image>.<rgba16|ci8>.tex")

	imagefile string
)

const usageString = `Image to DS texture converter.

Usage: %s [flags] <image>

Width and height must be powers of two from 8 to 1024.

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "texture")
	flags.PrintDefaults()
}

// Suffix returns the file name suffix used for textures of format f.
func Suffix(f texture.Format) string {
	if f == texture.Pal256 {
		return ".ci8.tex"
	}
	return ".rgba16.tex"
}

func parseFormat(s string) (texture.Format, error) {
	switch strings.ToUpper(s) {
	case "RGB5A1", "RGBA16", "DIRECT":
		return texture.Direct, nil
	case "PAL256", "CI8":
		return texture.Pal256, nil
	}
	return 0, fmt.Errorf("unsupported format: %s", s)
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		imagefile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	f, err := parseFormat(*format)
	if err != nil {
		log.Fatalln(err)
	}

	r, err := os.Open(imagefile)
	if err != nil {
		log.Fatalln(err)
	}
	src, _, err := image.Decode(r)
	r.Close()
	if err != nil {
		log.Fatalln(err)
	}

	dst, err := texture.Convert(src, f, *dither)
	if err != nil {
		log.Fatalln(err)
	}

	outfile := *output
	if outfile == "" {
		outfile = strings.TrimSuffix(imagefile, filepath.Ext(imagefile)) + Suffix(f)
	}
	w, err := os.Create(outfile)
	if err != nil {
		log.Fatalln(err)
	}
	defer w.Close()

	err = texture.Store(w, dst)
	if err != nil {
		log.Fatalln(err)
	}
}
