package render

import (
	"fmt"

	"github.com/gogpu/naga"
)

// CompileProgram lowers a generated WGSL program to SPIR-V uint32 words
// for device paths that do not consume WGSL directly. It also serves as
// a conformance check: a program the translator rejects never reaches
// the device.
func CompileProgram(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("render: compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
