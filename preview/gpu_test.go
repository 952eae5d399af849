package preview

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/vortex"
)

// mockTexture implements gpucontext.Texture for testing.
type mockTexture struct {
	width     int
	height    int
	data      []byte
	destroyed bool
}

func (m *mockTexture) Width() int  { return m.width }
func (m *mockTexture) Height() int { return m.height }

func (m *mockTexture) UpdateData(data []byte) {
	m.data = make([]byte, len(data))
	copy(m.data, data)
}

func (m *mockTexture) Destroy() {
	m.destroyed = true
}

// mockCreator implements gpucontext.TextureCreator for testing.
type mockCreator struct {
	textures []*mockTexture
	failNext bool
	opaque   bool // hand back a texture that is not a gpucontext.Texture
}

func (m *mockCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if m.failNext {
		m.failNext = false
		return nil, errors.New("mock texture creation failed")
	}
	if m.opaque {
		return nil, nil
	}
	tex := &mockTexture{
		width:  width,
		height: height,
		data:   make([]byte, len(data)),
	}
	copy(tex.data, data)
	m.textures = append(m.textures, tex)
	return tex, nil
}

// mockDrawContext implements gpucontext.TextureDrawer for testing.
type mockDrawContext struct {
	creator      *mockCreator
	drawnTexture gpucontext.Texture
	drawnX       float32
	drawnY       float32
	drawCount    int
}

func (m *mockDrawContext) TextureCreator() gpucontext.TextureCreator {
	if m.creator == nil {
		return nil
	}
	return m.creator
}

func (m *mockDrawContext) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	m.drawnTexture = tex
	m.drawnX = x
	m.drawnY = y
	m.drawCount++
	return nil
}

func TestDefaultTarget(t *testing.T) {
	d := DefaultTarget(512, 256)
	if d.Width != 512 || d.Height != 256 {
		t.Errorf("target size = %dx%d, want 512x256", d.Width, d.Height)
	}
	if d.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("target format = %v, want RGBA8Unorm", d.Format)
	}
}

func TestRenderToUploadsAndDraws(t *testing.T) {
	g := solidGraph(t, 1, 0.5, 0, 1)
	dc := &mockDrawContext{creator: &mockCreator{}}

	if err := RenderTo(g, dc, 8, 8, 10, 20); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}

	if dc.drawCount != 1 {
		t.Fatalf("DrawTexture called %d times, want 1", dc.drawCount)
	}
	if dc.drawnX != 10 || dc.drawnY != 20 {
		t.Errorf("drawn at (%v, %v), want (10, 20)", dc.drawnX, dc.drawnY)
	}
	if len(dc.creator.textures) != 1 {
		t.Fatalf("created %d textures, want 1", len(dc.creator.textures))
	}

	tex := dc.creator.textures[0]
	if tex.width != 8 || tex.height != 8 {
		t.Errorf("texture size = %dx%d, want 8x8", tex.width, tex.height)
	}
	if len(tex.data) != 8*8*4 {
		t.Fatalf("texture data = %d bytes, want %d", len(tex.data), 8*8*4)
	}
	if tex.data[0] != 255 || tex.data[1] != 128 || tex.data[2] != 0 || tex.data[3] != 255 {
		t.Errorf("first pixel = %v, want {255 128 0 255}", tex.data[:4])
	}
	if dc.drawnTexture != gpucontext.Texture(tex) {
		t.Error("DrawTexture received a different texture than was created")
	}
}

func TestRenderToNilCreator(t *testing.T) {
	g := solidGraph(t, 0, 0, 0, 1)
	dc := &mockDrawContext{}

	if err := RenderTo(g, dc, 4, 4, 0, 0); !errors.Is(err, ErrInvalidRenderer) {
		t.Errorf("RenderTo() error = %v, want ErrInvalidRenderer", err)
	}
	if dc.drawCount != 0 {
		t.Errorf("DrawTexture called %d times, want 0", dc.drawCount)
	}
}

func TestRenderToCreationFailure(t *testing.T) {
	g := solidGraph(t, 0, 0, 0, 1)
	dc := &mockDrawContext{creator: &mockCreator{failNext: true}}

	err := RenderTo(g, dc, 4, 4, 0, 0)
	if err == nil {
		t.Fatal("RenderTo() should propagate texture creation failure")
	}
	if dc.drawCount != 0 {
		t.Errorf("DrawTexture called %d times, want 0", dc.drawCount)
	}
}

func TestRenderToOpaqueTexture(t *testing.T) {
	g := solidGraph(t, 0, 0, 0, 1)
	dc := &mockDrawContext{creator: &mockCreator{opaque: true}}

	if err := RenderTo(g, dc, 4, 4, 0, 0); !errors.Is(err, ErrInvalidDrawContext) {
		t.Errorf("RenderTo() error = %v, want ErrInvalidDrawContext", err)
	}
}

func TestRenderToInvalidGraph(t *testing.T) {
	g := vortex.NewGraph()
	if _, err := g.AddNode("coords", "uv"); err != nil {
		t.Fatal(err)
	}
	dc := &mockDrawContext{creator: &mockCreator{}}

	if err := RenderTo(g, dc, 4, 4, 0, 0); !errors.Is(err, vortex.ErrNoOutput) {
		t.Errorf("RenderTo() error = %v, want ErrNoOutput", err)
	}
	if len(dc.creator.textures) != 0 {
		t.Errorf("created %d textures for an invalid graph, want 0", len(dc.creator.textures))
	}
}
