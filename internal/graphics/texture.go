package graphics

import (
	"voxcraft/internal/atlas"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// UploadTextureArray copies every atlas layer and its mip chain into a new
// GL_TEXTURE_2D_ARRAY and returns its name.
func UploadTextureArray(a *atlas.Atlas) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, texture)

	levels := a.MipLevels()
	for level := range levels {
		size := int32(max(a.Size>>level, 1))
		// Storage
		gl.TexImage3D(gl.TEXTURE_2D_ARRAY, int32(level), gl.RGBA8,
			size, size, int32(a.Len()), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	}

	// Upload layers
	for i := range a.Len() {
		for level, img := range a.MipChain(i) {
			size := int32(img.Bounds().Dx())
			gl.TexSubImage3D(gl.TEXTURE_2D_ARRAY, int32(level),
				0, 0, int32(i), size, size, 1,
				gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		}
	}

	// Parameters
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_BASE_LEVEL, 0)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAX_LEVEL, int32(levels-1))
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.REPEAT)

	// Anisotropic filtering if available
	var maxAnisotropy float32
	gl.GetFloatv(gl.MAX_TEXTURE_MAX_ANISOTROPY, &maxAnisotropy)
	if maxAnisotropy > 0 {
		gl.TexParameterf(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAX_ANISOTROPY, maxAnisotropy)
	}

	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)
	return texture
}
