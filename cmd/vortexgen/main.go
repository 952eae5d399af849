// Command vortexgen compiles shader-graph documents to WGSL.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/vortex"
	"github.com/gogpu/vortex/graphfile"
	"github.com/gogpu/vortex/preview"
	"github.com/gogpu/vortex/wgsl"
)

func main() {
	var (
		output      = flag.String("o", "", "write WGSL to file instead of stdout")
		validate    = flag.Bool("validate", false, "validate generated WGSL with naga")
		previewPath = flag.String("preview", "", "render a CPU preview PNG to this path")
		size        = flag.Int("size", 256, "preview image size in pixels")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: vortexgen [flags] graph%s\n", graphfile.Ext)
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *verbose {
		vortex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	g, err := graphfile.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to load graph: %v", err)
	}

	source, err := g.WGSL()
	if err != nil {
		log.Fatalf("Failed to compile graph: %v", err)
	}

	if *validate {
		if err := wgsl.Validate(source); err != nil {
			log.Fatalf("Validation failed: %v", err)
		}
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(source), 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", *output, err)
		}
	} else {
		fmt.Print(source)
	}

	if *previewPath != "" {
		img, err := preview.Render(g, *size, *size)
		if err != nil {
			log.Fatalf("Failed to render preview: %v", err)
		}
		if err := preview.SavePNG(img, *previewPath); err != nil {
			log.Fatalf("Failed to save preview: %v", err)
		}
		log.Printf("Preview saved to %s (%dx%d)\n", *previewPath, *size, *size)
	}
}
