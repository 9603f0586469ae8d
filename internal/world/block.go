package world

type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeStone
	BlockTypeGrass
)

// Block data
const (
	BlockSize = 1.0
)

var blockTextures = map[BlockType]string{
	BlockTypeStone: "stone",
	BlockTypeGrass: "grass",
}

// TextureName returns the atlas texture used by every face of the block,
// or "" for air and unknown types.
func (b BlockType) TextureName() string {
	return blockTextures[b]
}

// IsSolid reports whether the block occludes and collides.
func (b BlockType) IsSolid() bool {
	return b != BlockTypeAir
}

func (b BlockType) String() string {
	switch b {
	case BlockTypeAir:
		return "air"
	case BlockTypeStone:
		return "stone"
	case BlockTypeGrass:
		return "grass"
	default:
		return "unknown"
	}
}
