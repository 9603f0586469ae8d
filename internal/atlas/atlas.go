// Package atlas loads block textures into the layers of one texture array.
package atlas

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"math/bits"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"golang.org/x/image/draw"
)

var (
	ErrAtlasFull      = errors.New("texture atlas is full")
	ErrUnknownTexture = errors.New("unknown texture")
	ErrNoTextures     = errors.New("no textures found")
)

// Atlas is a set of square, equally sized RGBA images addressed by name.
// Layer indices follow the file names in natural order ("ore2" before "ore10").
type Atlas struct {
	// Size is the edge length of every texture in pixels.
	Size     int
	Capacity int

	names   []string
	indices map[string]uint32
	layers  []*image.RGBA
}

// Load reads every PNG in dir of fsys. A texture is named after its file
// without extension.
func Load(fsys fs.FS, dir string, capacity int) (*Atlas, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read textures: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), ".png") {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoTextures)
	}
	sort.Sort(natural.StringSlice(files))
	if len(files) > capacity {
		return nil, fmt.Errorf("%d textures for %d layers: %w", len(files), capacity, ErrAtlasFull)
	}

	a := &Atlas{
		Capacity: capacity,
		indices:  make(map[string]uint32, len(files)),
	}
	for _, file := range files {
		img, err := decode(fsys, path.Join(dir, file))
		if err != nil {
			return nil, err
		}
		if err := a.add(strings.TrimSuffix(file, path.Ext(file)), img); err != nil {
			return nil, fmt.Errorf("texture %s: %w", file, err)
		}
	}
	return a, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", name, err)
	}
	return img, nil
}

func (a *Atlas) add(name string, img image.Image) error {
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return fmt.Errorf("image is %dx%d, must be square", b.Dx(), b.Dy())
	}
	if a.Size == 0 {
		a.Size = b.Dx()
	} else if b.Dx() != a.Size {
		return fmt.Errorf("image is %dx%d, atlas holds %dx%d", b.Dx(), b.Dy(), a.Size, a.Size)
	}
	if len(a.layers) >= a.Capacity {
		return ErrAtlasFull
	}

	rgba := image.NewRGBA(image.Rect(0, 0, a.Size, a.Size))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	a.indices[name] = uint32(len(a.layers))
	a.names = append(a.names, name)
	a.layers = append(a.layers, rgba)
	return nil
}

// TextureIndex returns the array layer holding the named texture.
func (a *Atlas) TextureIndex(name string) (uint32, error) {
	i, ok := a.indices[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownTexture)
	}
	return i, nil
}

func (a *Atlas) Len() int {
	return len(a.layers)
}

// Names returns the texture names in layer order.
func (a *Atlas) Names() []string {
	return slices.Clone(a.names)
}

func (a *Atlas) Layer(i int) *image.RGBA {
	return a.layers[i]
}

// MipLevels is the length of a full mip chain down to 1x1.
func (a *Atlas) MipLevels() int {
	if a.Size <= 0 {
		return 0
	}
	return bits.Len(uint(a.Size))
}

// MipChain returns the layer followed by its successively halved images.
func (a *Atlas) MipChain(i int) []*image.RGBA {
	levels := a.MipLevels()
	chain := make([]*image.RGBA, 0, levels)
	chain = append(chain, a.layers[i])
	for l := 1; l < levels; l++ {
		prev := chain[l-1]
		size := max(a.Size>>l, 1)
		next := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.BiLinear.Scale(next, next.Bounds(), prev, prev.Bounds(), draw.Src, nil)
		chain = append(chain, next)
	}
	return chain
}
