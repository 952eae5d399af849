// Package preview renders shader graphs without a GPU.
//
// The CPU path evaluates a graph at every pixel of an image, which is
// what node editors use for per-node preview thumbnails, and what tests
// use for golden-output comparison. When a host application shares its
// GPU device via gpucontext, rendered previews can be uploaded as
// textures and drawn by the host.
package preview
