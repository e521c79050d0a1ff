package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform
// struct. Matches GPUCameraUniform layout exactly (96 bytes, WGSL aligned).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform
// buffer consumed by the external renderer. Matches the WGSL CameraUniform
// struct layout exactly (see GPUCameraUniformSource).
type GPUCameraUniform struct {
	ViewProjection [16]float32 // offset  0: combined view-projection matrix (mat4x4<f32>)
	CameraPosition [3]float32  // offset 64: world-space camera position (vec3<f32>)
	_              float32     // offset 76: padding
	ScreenSize     [2]float32  // offset 80: window size in pixels (vec2<f32>)
	_              [2]float32  // offset 88: padding to 96 bytes
}

// gpuCameraUniformSize is the serialized size of GPUCameraUniform in bytes.
const gpuCameraUniformSize = 96

// NewGPUCameraUniform captures a camera's current matrices and position into
// the uniform layout. The camera must have completed at least one successful
// GenerateViewProjection so the matrices are valid.
//
// Parameters:
//   - cam: the camera to capture
//   - width, height: window size in pixels
//
// Returns:
//   - GPUCameraUniform: the populated uniform struct
func NewGPUCameraUniform(cam Camera, width, height int) GPUCameraUniform {
	view, projection := cam.ViewProjectionMatrices()
	viewProjection := projection.Mul4(view)
	position := cam.Position()

	var uniform GPUCameraUniform
	copy(uniform.ViewProjection[:], viewProjection[:])
	uniform.CameraPosition = [3]float32{position.X(), position.Y(), position.Z()}
	uniform.ScreenSize = [2]float32{float32(width), float32(height)}
	return uniform
}

// Size returns the serialized size of the uniform in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUCameraUniform) Size() int {
	return gpuCameraUniformSize
}

// Marshal serializes the uniform into a little-endian byte buffer suitable
// for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, gpuCameraUniformSize)
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProjection[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.CameraPosition[i]))
	}
	binary.LittleEndian.PutUint32(buf[80:], math.Float32bits(g.ScreenSize[0]))
	binary.LittleEndian.PutUint32(buf[84:], math.Float32bits(g.ScreenSize[1]))
	return buf
}
