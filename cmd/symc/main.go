// Command symc compiles a JSON point-symbol style to WGSL shader source.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gogpu/symstyle"
	"github.com/gogpu/symstyle/render"
)

func main() {
	var (
		input    = flag.String("style", "", "style JSON file (default: stdin)")
		stage    = flag.String("stage", "both", "shader stage to print: vertex, fragment, or both")
		validate = flag.Bool("validate", false, "lower the generated programs to SPIR-V as a validity check")
	)
	flag.Parse()

	data, err := readInput(*input)
	if err != nil {
		log.Fatalf("Failed to read style: %v", err)
	}

	var style symstyle.Style
	if err := json.Unmarshal(data, &style); err != nil {
		log.Fatalf("Failed to parse style: %v", err)
	}

	res, err := symstyle.CompileStyle(&style)
	if err != nil {
		log.Fatalf("Failed to compile style: %v", err)
	}

	vert := res.Builder.VertexShader()
	frag := res.Builder.FragmentShader()

	if *validate {
		if _, err := render.CompileProgram(vert); err != nil {
			log.Fatalf("Vertex program rejected: %v", err)
		}
		if _, err := render.CompileProgram(frag); err != nil {
			log.Fatalf("Fragment program rejected: %v", err)
		}
	}

	switch *stage {
	case "vertex":
		fmt.Print(vert)
	case "fragment":
		fmt.Print(frag)
	case "both":
		fmt.Print(vert)
		fmt.Println()
		fmt.Print(frag)
	default:
		log.Fatalf("Unknown stage %q (want vertex, fragment, or both)", *stage)
	}

	if len(res.Attributes) > 0 {
		fmt.Fprintln(os.Stderr, "attributes:")
		for _, a := range res.Attributes {
			fmt.Fprintf(os.Stderr, "  %s\n", a.Name)
		}
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
