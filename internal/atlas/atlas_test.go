package atlas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"slices"
	"testing"
	"testing/fstest"

	"voxcraft/assets"
)

func pngBytes(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadSortedIndices(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	fsys := fstest.MapFS{
		"tex/stone.png":  {Data: pngBytes(t, 16, 16, red)},
		"tex/dirt.png":   {Data: pngBytes(t, 16, 16, red)},
		"tex/grass.png":  {Data: pngBytes(t, 16, 16, red)},
		"tex/readme.txt": {Data: []byte("not an image")},
	}
	a, err := Load(fsys, "tex", 4)
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 3 || a.Size != 16 {
		t.Fatalf("len=%d size=%d", a.Len(), a.Size)
	}
	for want, name := range []string{"dirt", "grass", "stone"} {
		got, err := a.TextureIndex(name)
		if err != nil || got != uint32(want) {
			t.Errorf("TextureIndex(%q) = %d, %v; want %d", name, got, err, want)
		}
	}
	if _, err := a.TextureIndex("lava"); !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("unknown texture: %v", err)
	}
	if px := a.Layer(2).RGBAAt(3, 3); px != red {
		t.Errorf("pixel = %v", px)
	}
}

func TestLoadNaturalOrder(t *testing.T) {
	c := color.RGBA{1, 2, 3, 255}
	fsys := fstest.MapFS{}
	for _, name := range []string{"ore10", "ore2", "ore1"} {
		fsys["t/"+name+".PNG"] = &fstest.MapFile{Data: pngBytes(t, 4, 4, c)}
	}
	a, err := Load(fsys, "t", 8)
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Names(); !slices.Equal(got, []string{"ore1", "ore2", "ore10"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestLoadRejects(t *testing.T) {
	c := color.RGBA{0, 0, 0, 255}
	tests := []struct {
		name string
		fsys fstest.MapFS
		cap  int
		want error
	}{
		{"full", fstest.MapFS{
			"t/a.png": {Data: pngBytes(t, 8, 8, c)},
			"t/b.png": {Data: pngBytes(t, 8, 8, c)},
		}, 1, ErrAtlasFull},
		{"empty", fstest.MapFS{"t/x.txt": {Data: []byte("x")}}, 4, ErrNoTextures},
		{"not square", fstest.MapFS{"t/a.png": {Data: pngBytes(t, 8, 4, c)}}, 4, nil},
		{"size mismatch", fstest.MapFS{
			"t/a.png": {Data: pngBytes(t, 8, 8, c)},
			"t/b.png": {Data: pngBytes(t, 16, 16, c)},
		}, 4, nil},
		{"bad png", fstest.MapFS{"t/a.png": {Data: []byte("garbage")}}, 4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.fsys, "t", tt.cap)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMipChain(t *testing.T) {
	fsys := fstest.MapFS{"t/a.png": {Data: pngBytes(t, 16, 16, color.RGBA{0, 128, 0, 255})}}
	a, err := Load(fsys, "t", 1)
	if err != nil {
		t.Fatal(err)
	}
	if a.MipLevels() != 5 {
		t.Fatalf("MipLevels = %d, want 5", a.MipLevels())
	}
	chain := a.MipChain(0)
	if len(chain) != 5 {
		t.Fatalf("chain length %d", len(chain))
	}
	for i, img := range chain {
		if want := 16 >> i; img.Bounds().Dx() != want || img.Bounds().Dy() != want {
			t.Errorf("level %d is %v, want %dx%d", i, img.Bounds(), want, want)
		}
	}
	if px := chain[4].RGBAAt(0, 0); px.G < 120 || px.A != 255 {
		t.Errorf("1x1 level = %v", px)
	}
}

func TestEmbeddedBlockTextures(t *testing.T) {
	a, err := Load(assets.FS, assets.BlockTexturesDir, 8)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"grass", "stone"} {
		if _, err := a.TextureIndex(name); err != nil {
			t.Error(err)
		}
	}
}
