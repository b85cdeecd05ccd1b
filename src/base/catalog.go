package base

var catalog = [...]Shape{
	MustShape("mono", "X"),
	MustShape("domino-h", "XX"),
	MustShape("domino-v", "X", "X"),
	MustShape("tri-h", "XXX"),
	MustShape("tri-v", "X", "X", "X"),
	MustShape("tri-l", "X.", "XX"),
	MustShape("tetra-h", "XXXX"),
	MustShape("tetra-v", "X", "X", "X", "X"),
	MustShape("tetra-o", "XX", "XX"),
	MustShape("tetra-t", "XXX", ".X."),
	MustShape("tetra-l", "X.", "X.", "XX"),
	MustShape("tetra-j", ".X", ".X", "XX"),
	MustShape("tetra-s", ".XX", "XX."),
	MustShape("penta-l", "X..", "X..", "XXX"),
	MustShape("penta-plus", ".X.", "XXX", ".X."),
}

// Catalog returns a copy of the fixed piece catalog
func Catalog() []Shape {
	out := make([]Shape, len(catalog))
	copy(out, catalog[:])
	return out
}

func ShapeByName(name string) (Shape, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}

// colour names in palette order
var colorNames = [ColorCount]string{"red", "orange", "yellow", "green", "blue", "purple", "pink"}

func ColorName(color int) string {
	if color < 0 || color >= ColorCount {
		return "none"
	}
	return colorNames[color]
}

var colorRGB = [ColorCount][3]uint8{
	{0xef, 0x44, 0x44},
	{0xf9, 0x73, 0x16},
	{0xea, 0xb3, 0x08},
	{0x22, 0xc5, 0x5e},
	{0x3b, 0x82, 0xf6},
	{0xa8, 0x55, 0xf7},
	{0xec, 0x48, 0x99},
}

// ColorRGB is shared by every front end so pieces look the same everywhere
func ColorRGB(color int) (r, g, b uint8) {
	if color < 0 || color >= ColorCount {
		return 0x80, 0x80, 0x80
	}
	c := colorRGB[color]
	return c[0], c[1], c[2]
}
