package texture

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/AntonioND/nds-rtt-example/hw/texture"
)

var (
	inspectFlags = flag.NewFlagSet("inspect", flag.ExitOnError)

	pngOut = inspectFlags.String("png", "", "also decode the texture into PNG `file`")
)

// Inspect prints the format of texture files and verifies their checksum.
func Inspect(args []string) {
	inspectFlags.Usage = func() {
		fmt.Fprintf(inspectFlags.Output(), "Usage: inspect [flags] <file.tex>...\n\n")
		inspectFlags.PrintDefaults()
	}
	inspectFlags.Parse(args[1:])
	if inspectFlags.NArg() == 0 {
		inspectFlags.Usage()
		os.Exit(1)
	}

	for _, name := range inspectFlags.Args() {
		tex, err := load(name)
		if err != nil {
			log.Fatalln(name+":", err)
		}
		fmt.Println(Describe(name, tex))

		if *pngOut != "" {
			w, err := os.Create(*pngOut)
			if err != nil {
				log.Fatalln(err)
			}
			err = png.Encode(w, tex)
			w.Close()
			if err != nil {
				log.Fatalln(err)
			}
		}
	}
}

func load(name string) (texture.Texture, error) {
	r, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return texture.Load(r)
}

// Describe returns a one line summary of tex.
func Describe(name string, tex texture.Texture) string {
	b := tex.Bounds()
	s := fmt.Sprintf("%s: %v %dx%d, %d bytes", name, tex.Format(), b.Dx(), b.Dy(), len(tex.Texels()))
	if ci8, ok := tex.(*texture.CI8); ok {
		s += fmt.Sprintf(", %d colors", len(ci8.Palette))
	}
	return s
}
