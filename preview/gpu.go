package preview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/vortex"
	"github.com/gogpu/vortex/wgsl"
)

// GPU integration errors.
var (
	// ErrInvalidRenderer is returned when the draw context has no
	// texture creator.
	ErrInvalidRenderer = errors.New("preview: dc must provide a gpucontext.TextureCreator")

	// ErrInvalidDrawContext is returned when a created texture does not
	// implement gpucontext.Texture.
	ErrInvalidDrawContext = errors.New("preview: created texture does not implement gpucontext.Texture")
)

// DeviceHandle provides GPU device access from the host application.
// vortex receives the device from the host, it does not create one;
// this is the same integration contract the rest of the GoGPU ecosystem
// uses.
type DeviceHandle = gpucontext.DeviceProvider

// TargetDescriptor describes the texture a GPU preview renders into.
type TargetDescriptor struct {
	Width, Height uint32
	Format        gputypes.TextureFormat
}

// DefaultTarget returns a target descriptor with the format preview
// images use.
func DefaultTarget(width, height uint32) TargetDescriptor {
	return TargetDescriptor{
		Width:  width,
		Height: height,
		Format: gputypes.TextureFormatRGBA8Unorm,
	}
}

// ShaderModule compiles the graph to WGSL and creates a HAL shader
// module on the given device. The resulting module contains vs_main and
// fs_main entry points for a full-screen pass.
func ShaderModule(device hal.Device, label string, g *vortex.Graph) (hal.ShaderModule, error) {
	source, err := g.WGSL()
	if err != nil {
		return nil, err
	}
	code, err := wgsl.CompileToSPIRV(source)
	if err != nil {
		return nil, err
	}
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: code,
		},
	})
}

// RenderTo evaluates the graph on the CPU at the given size, uploads the
// result as a texture through the host's draw context, and draws it at
// (x, y). This is the fallback path for hosts that share a device but no
// render pipeline; it mirrors how GoGPU canvas integrations hand pixel
// data back to the host.
func RenderTo(g *vortex.Graph, dc gpucontext.TextureDrawer, width, height int, x, y float32) error {
	img, err := Render(g, width, height)
	if err != nil {
		return err
	}

	creator := dc.TextureCreator()
	if creator == nil {
		return ErrInvalidRenderer
	}
	tex, err := creator.NewTextureFromRGBA(width, height, img.Pix)
	if err != nil {
		return fmt.Errorf("preview: NewTextureFromRGBA failed: %w", err)
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, x, y)
}
