package wgsl

import (
	"fmt"

	"github.com/gogpu/naga"
)

// Validate checks that source is a well-formed WGSL module by running it
// through the naga compiler. It returns nil when the module compiles.
func Validate(source string) error {
	if _, err := naga.Compile(source); err != nil {
		return fmt.Errorf("wgsl: validation failed: %w", err)
	}
	return nil
}

// CompileToSPIRV compiles WGSL source to a SPIR-V word slice suitable for
// hal.ShaderSource.
func CompileToSPIRV(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("wgsl: failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}
