package tile

import "github.com/brunoczim/thedes/grapheme"

// Tile is a single on-screen cell: a grapheme with a color pair.
type Tile struct {
	Colors   ColorPair
	Grapheme grapheme.Id
}

// DefaultTile is a space with the default color pair, the value every
// fresh Canvas cell starts from.
func DefaultTile(reg *grapheme.Registry) Tile {
	return Tile{Colors: DefaultColorPair, Grapheme: reg.SpaceId()}
}

// Ground is the terrain kind of a map cell.
type Ground uint8

const (
	GroundGrass Ground = iota
	GroundSand
	GroundStone
	GroundRock
)

func (g Ground) String() string {
	switch g {
	case GroundGrass:
		return "Grass"
	case GroundSand:
		return "Sand"
	case GroundStone:
		return "Stone"
	case GroundRock:
		return "Rock"
	default:
		return "Unknown"
	}
}

// Biome is the climate/region kind of a map cell.
type Biome uint8

const (
	BiomePlains Biome = iota
	BiomeDesert
	BiomeWasteland
)

func (b Biome) String() string {
	switch b {
	case BiomePlains:
		return "Plains"
	case BiomeDesert:
		return "Desert"
	case BiomeWasteland:
		return "Wasteland"
	default:
		return "Unknown"
	}
}

// Block is the placeable-matter kind of a map cell. BlockSpecial carries
// the "occupied by player/NPC" marker; which
// occupant it is lives outside the map, in the ECS world.
type Block uint8

const (
	BlockAir Block = iota
	BlockWood
	BlockStone
	BlockWater
	BlockSpecial
)

func (b Block) String() string {
	switch b {
	case BlockAir:
		return "Air"
	case BlockWood:
		return "Wood"
	case BlockStone:
		return "Stone"
	case BlockWater:
		return "Water"
	case BlockSpecial:
		return "Special"
	default:
		return "Unknown"
	}
}

// ThedeId identifies an allocated thede (in-game tribe/nation), or zero
// for "no thede".
type ThedeId uint8

// NoThede is the reserved "unclaimed" ID.
const NoThede ThedeId = 0

// Cell is a persisted map cell: everything the chunked map stores per
// point.
type Cell struct {
	Ground Ground
	Biome  Biome
	Block  Block
	Thede  ThedeId
}
