package layout

import (
	"fmt"
	"image"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// Region identifies a named rectangle on the template canvas.
type Region int

const (
	Title Region = iota
	Genres
	Comments
	// CoverArt is the default 300x300 slot of the album cover. It carries no font sizes.
	CoverArt
)

// TextRegions are the regions that receive rendered text, in render order.
var TextRegions = []Region{Title, Genres, Comments}

// Regions lists every region, text regions first.
var Regions = []Region{Title, Genres, Comments, CoverArt}

func (r Region) String() string {
	switch r {
	case Title:
		return "title"
	case Genres:
		return "genres"
	case Comments:
		return "comments"
	case CoverArt:
		return "cover"
	default:
		return fmt.Sprintf("region(%d)", int(r))
	}
}

// FontSizes holds the starting font size of a region and the floor the search may not reach.
type FontSizes struct {
	Start int `yaml:"start"`
	Floor int `yaml:"floor"`
}

// Geometry is the immutable description of the template canvas.
type Geometry struct {
	// Canvas size every input image must match exactly. E.g., 828x1792
	Canvas image.Point
	// Pixel rectangles (left, top, right, bottom) per region.
	Rects map[Region]image.Rectangle
	Sizes map[Region]FontSizes
	// Side of the default cover-art slot. The slot's top-left corner is Rects[CoverArt].Min.
	CoverSide int
	// Extra pixels between rendered lines.
	LineGap float64
	// Characters used to estimate the average advance width. Swedish letters included.
	Alphabet string
}

const (
	canvasWidth  = 828
	canvasHeight = 1792
	coverSide    = 300
)

// Default returns the album-of-the-day template geometry.
func Default() Geometry {
	return Geometry{
		Canvas: image.Pt(canvasWidth, canvasHeight),
		Rects: map[Region]image.Rectangle{
			Title:    image.Rect(0, 205, canvasWidth, 405),
			Genres:   image.Rect(495, 470, canvasWidth, 965),
			Comments: image.Rect(0, 1064, canvasWidth, canvasHeight),
			CoverArt: image.Rect(65, 500, 65+coverSide, 500+coverSide),
		},
		Sizes: map[Region]FontSizes{
			Title:    {Start: 50, Floor: 20},
			Genres:   {Start: 30, Floor: 15},
			Comments: {Start: 25, Floor: 15},
		},
		CoverSide: coverSide,
		LineGap:   4,
		Alphabet:  "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZÅåÄäÖö",
	}
}

// Clone returns a copy of g that shares no maps with it.
func (g Geometry) Clone() Geometry {
	g.Rects = maps.Clone(g.Rects)
	g.Sizes = maps.Clone(g.Sizes)
	return g
}

// Rect returns the rectangle of a region. Asking for an unknown region is a programming error.
func (g Geometry) Rect(region Region) image.Rectangle {
	rect, ok := g.Rects[region]
	if !ok {
		panic(fmt.Sprintf("layout: no rectangle for %s", region))
	}
	return rect
}

// FontSizes returns the (start, floor) pair of a text region.
func (g Geometry) FontSizes(region Region) FontSizes {
	sizes, ok := g.Sizes[region]
	if !ok {
		panic(fmt.Sprintf("layout: no font sizes for %s", region))
	}
	return sizes
}

// CoverSlot returns the cover-art destination for art whose smallest side is smallestSide.
// Art at least as large as the default slot uses it unchanged; smaller art shrinks the
// slot's right and bottom edges, keeping the top-left corner.
func (g Geometry) CoverSlot(smallestSide int) image.Rectangle {
	slot := g.Rect(CoverArt)
	if smallestSide >= g.CoverSide {
		return slot
	}
	shrink := g.CoverSide - smallestSide
	return image.Rect(slot.Min.X, slot.Min.Y, slot.Max.X-shrink, slot.Max.Y-shrink)
}

// Validate reports rectangles outside the canvas, overlapping regions and broken font sizes.
func (g Geometry) Validate() error {
	canvas := image.Rectangle{Max: g.Canvas}
	if canvas.Empty() {
		return fmt.Errorf("canvas %v is empty", g.Canvas)
	}
	for i, region := range Regions {
		rect, ok := g.Rects[region]
		if !ok {
			return fmt.Errorf("missing rectangle for %s", region)
		}
		if rect.Empty() || !rect.In(canvas) {
			return fmt.Errorf("%s rectangle %v is empty or outside canvas %v", region, rect, canvas)
		}
		for _, other := range Regions[:i] {
			if rect.Overlaps(g.Rects[other]) {
				return fmt.Errorf("%s rectangle %v overlaps %s rectangle %v", region, rect, other, g.Rects[other])
			}
		}
	}
	if cover := g.Rects[CoverArt]; cover.Dx() != g.CoverSide || cover.Dy() != g.CoverSide {
		return fmt.Errorf("cover rectangle %v is not %dx%d", cover, g.CoverSide, g.CoverSide)
	}
	for _, region := range TextRegions {
		sizes, ok := g.Sizes[region]
		if !ok {
			return fmt.Errorf("missing font sizes for %s", region)
		}
		if sizes.Start <= 0 || sizes.Floor < 0 || sizes.Start < sizes.Floor {
			return fmt.Errorf("invalid font sizes for %s: start %d, floor %d", region, sizes.Start, sizes.Floor)
		}
	}
	if len([]rune(g.Alphabet)) == 0 {
		return fmt.Errorf("alphabet is empty")
	}
	return nil
}

// File is the YAML form of a geometry. Omitted fields keep their Default values.
type File struct {
	Canvas    *[2]int              `yaml:"canvas"`
	Regions   map[string][4]int    `yaml:"regions"`
	FontSizes map[string]FontSizes `yaml:"font_sizes"`
	CoverSide *int                 `yaml:"cover_side"`
	LineGap   *float64             `yaml:"line_gap"`
	Alphabet  *string              `yaml:"alphabet"`
}

// Load reads an alternate geometry from a YAML file on top of Default.
func Load(path string) (Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML geometry on top of Default and validates the result.
func Parse(data []byte) (Geometry, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Geometry{}, fmt.Errorf("failed to decode layout: %w", err)
	}

	g := Default()
	if file.Canvas != nil {
		g.Canvas = image.Pt(file.Canvas[0], file.Canvas[1])
	}
	for name, box := range file.Regions {
		region, err := regionByName(name)
		if err != nil {
			return Geometry{}, err
		}
		g.Rects[region] = image.Rect(box[0], box[1], box[2], box[3])
	}
	for name, sizes := range file.FontSizes {
		region, err := regionByName(name)
		if err != nil {
			return Geometry{}, err
		}
		if region == CoverArt {
			return Geometry{}, fmt.Errorf("font sizes given for %s", region)
		}
		g.Sizes[region] = sizes
	}
	if file.CoverSide != nil {
		g.CoverSide = *file.CoverSide
	}
	if file.LineGap != nil {
		g.LineGap = *file.LineGap
	}
	if file.Alphabet != nil {
		g.Alphabet = *file.Alphabet
	}

	if err := g.Validate(); err != nil {
		return Geometry{}, fmt.Errorf("invalid layout: %w", err)
	}
	return g, nil
}

func regionByName(name string) (Region, error) {
	for _, region := range Regions {
		if region.String() == name {
			return region, nil
		}
	}
	return 0, fmt.Errorf("unknown region %q", name)
}
