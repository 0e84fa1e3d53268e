package dungeongraph

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/boljen/go-bitmap"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/image/colornames"

	"github.com/voidshard/dungeongraph/internal/encoding"
	"github.com/voidshard/dungeongraph/internal/line"
)

const (
	// bit numbers for our bitmap
	bitRoom      = 0
	bitMainRoom  = 1
	bitHallway   = 2
	bitSightline = 3

	// pixels of empty space around the dungeon
	mapMargin = 4

	// limits on the plan view; 1<<24 RGBA64 pixels is 128MiB
	maxMapSide   = 1 << 15
	maxMapPixels = 1 << 24
)

// DungeonMap is a plan view (looking down the y axis) of a dungeon.
// Pixel x follows world x, pixel y follows world z.
type DungeonMap interface {
	// Save as custom file in a format defined by the library
	Save(fpath string) error

	// SaveAdv saves as an image with the given color scheme
	SaveAdv(fpath string, scheme *ColourScheme) error

	// CustomImage returns an image with the given color scheme
	CustomImage(scheme *ColourScheme) (image.Image, error)

	// ToPixel returns the pixel a point in the world falls in
	ToPixel(p model3d.Coord3D) image.Point

	// Bounds of the image
	Bounds() image.Rectangle

	IsRoom(x, y int) bool
	IsMainRoom(x, y int) bool
	IsHallway(x, y int) bool
	IsSightline(x, y int) bool

	// RoomID returns the Room.ID at x,y or -1 if there is no room
	RoomID(x, y int) (int, error)
}

// imageMap is a particular implementation of DungeonMap using a RGBA64
type imageMap struct {
	// Map is an RGBA64 image where each pixel of 64 bits is split via
	//
	// R [16 bits] -> room id + 1 (0 is no room)
	// G [16 bits] -> hallway index + 1 (0 is no hallway)
	// B [16 bits] -> unused
	// A [16 bits]
	//   16-9 [8 bits] -> unused
	//    8-1 [8 bits] -> bitmap (true if set, false if not)
	//       bit 0 -> isRoom
	//       bit 1 -> isMainRoom
	//       bit 2 -> isHallway
	//       bit 3 -> isSightline
	//       bit 4-7 -> unused
	//
	im *image.RGBA64

	// pixels per world unit
	scale float64

	// world x,z of pixel 0,0
	originX float64
	originZ float64

	// kept so SaveAdv can outline them
	rooms    []*Room
	hallways []*Hallway
}

// ColourScheme defines how various features of a dungeon should be coloured.
type ColourScheme struct {
	Background color.Color
	Rooms      color.Color
	MainRooms  color.Color
	Hallways   color.Color
	Sightlines color.Color

	// Outlines are drawn around rooms if set
	Outlines color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background: colornames.White,
		Rooms:      colornames.Royalblue,
		MainRooms:  colornames.Magenta,
		Hallways:   colornames.Dimgray,
		Sightlines: colornames.Limegreen,
		Outlines:   colornames.Black,
	}
}

// newMap returns an empty map; Present sizes & paints it.
func newMap(scale float64) *imageMap {
	if scale <= 0 {
		scale = DefaultMapScale
	}
	return &imageMap{
		im:       image.NewRGBA64(image.Rect(0, 0, 1, 1)),
		scale:    scale,
		rooms:    []*Room{},
		hallways: []*Hallway{},
	}
}

// Present sizes the map to fit everything & paints rooms then hallways
func (c *imageMap) Present(rooms []*Room, hallways []*Hallway) error {
	c.rooms = rooms
	c.hallways = hallways

	if len(rooms) == 0 {
		return nil
	}

	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)
	for _, r := range rooms {
		lo, hi := r.Min(), r.Max()
		minX, minZ = math.Min(minX, lo.X), math.Min(minZ, lo.Z)
		maxX, maxZ = math.Max(maxX, hi.X), math.Max(maxZ, hi.Z)
	}

	w, h, err := mapSize(maxX-minX, maxZ-minZ, c.scale)
	if err != nil {
		return err
	}

	margin := float64(mapMargin) / c.scale
	c.originX = minX - margin
	c.originZ = minZ - margin
	c.im = image.NewRGBA64(image.Rect(0, 0, w, h))

	for _, r := range rooms {
		c.drawRoom(r)
	}
	for i, h := range hallways {
		c.drawHallway(i, h)
	}

	return nil
}

// mapSize returns the image size needed for the given world extent, or
// ErrMapTooLarge if it is over our limits.
func mapSize(width, depth, scale float64) (int, int, error) {
	fw := math.Ceil(width*scale) + mapMargin*2
	fh := math.Ceil(depth*scale) + mapMargin*2
	if fw > maxMapSide || fh > maxMapSide || fw*fh > maxMapPixels {
		return 0, 0, errors.Wrapf(ErrMapTooLarge, "%.0fx%.0f pixels exceeds limit of %d", fw, fh, maxMapPixels)
	}
	return int(fw), int(fh), nil
}

// ToPixel returns the pixel the world point p falls in
func (c *imageMap) ToPixel(p model3d.Coord3D) image.Point {
	return image.Pt(
		int(math.Floor((p.X-c.originX)*c.scale)),
		int(math.Floor((p.Z-c.originZ)*c.scale)),
	)
}

// Bounds of the underlying image
func (c *imageMap) Bounds() image.Rectangle {
	return c.im.Bounds()
}

// pixelRect returns the pixels covered by a box (in x, z)
func (c *imageMap) pixelRect(box *model3d.Rect) image.Rectangle {
	return image.Rectangle{Min: c.ToPixel(box.MinVal), Max: c.ToPixel(box.MaxVal)}.Intersect(c.im.Bounds())
}

// drawRoom marks every pixel of the room
func (c *imageMap) drawRoom(r *Room) {
	area := c.pixelRect(r.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			v := c.im.RGBA64At(x, y)
			v.R = encoding.ToID(r.ID)
			c.im.SetRGBA64(x, y, v)

			bm := c.getBM(x, y)
			bm.Set(bitRoom, true)
			if r.MainRoom {
				bm.Set(bitMainRoom, true)
			}
			c.setBM(x, y, bm)
		}
	}
}

// drawHallway marks every pixel of the hallway
func (c *imageMap) drawHallway(i int, h *Hallway) {
	area := c.pixelRect(h.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			v := c.im.RGBA64At(x, y)
			v.G = encoding.ToID(i)
			c.im.SetRGBA64(x, y, v)

			bm := c.getBM(x, y)
			bm.Set(bitHallway, true)
			c.setBM(x, y, bm)
		}
	}
}

// drawSightline marks the pixels on the segment a -> b
func (c *imageMap) drawSightline(a, b model3d.Coord3D) {
	bnds := c.im.Bounds()
	line.Walk(c.ToPixel(a), c.ToPixel(b), func(p image.Point) {
		if !p.In(bnds) {
			return
		}
		bm := c.getBM(p.X, p.Y)
		bm.Set(bitSightline, true)
		c.setBM(p.X, p.Y, bm)
	})
}

// Save the DungeonMap as is to disk
func (c *imageMap) Save(fpath string) error {
	return savePNG(fpath, c.im)
}

// CustomImage returns the DungeonMap coloured with the given Scheme
func (c *imageMap) CustomImage(scheme *ColourScheme) (image.Image, error) {
	if scheme == nil {
		return nil, fmt.Errorf("colour scheme required")
	}

	bnds := c.im.Bounds()
	im := image.NewRGBA(bnds)

	for dy := bnds.Min.Y; dy < bnds.Max.Y; dy++ {
		for dx := bnds.Min.X; dx < bnds.Max.X; dx++ {
			bm := c.getBM(dx, dy)

			if bm.Get(bitSightline) && scheme.Sightlines != nil {
				im.Set(dx, dy, scheme.Sightlines)
			} else if bm.Get(bitHallway) {
				im.Set(dx, dy, scheme.Hallways)
			} else if bm.Get(bitMainRoom) {
				im.Set(dx, dy, scheme.MainRooms)
			} else if bm.Get(bitRoom) {
				im.Set(dx, dy, scheme.Rooms)
			} else if scheme.Background != nil {
				im.Set(dx, dy, scheme.Background)
			}
		}
	}

	return im, nil
}

// SaveAdv essentially saves the DungeonMap using the given scheme to disk.
// Essentially sugar around "CustomImage()" followed by writing out a PNG.
func (c *imageMap) SaveAdv(fpath string, scheme *ColourScheme) error {
	im, err := c.CustomImage(scheme)
	if err != nil {
		return err
	}

	ctx := gg.NewContextForRGBA(im.(*image.RGBA))
	if scheme.Outlines != nil {
		ctx.SetColor(scheme.Outlines)
		ctx.SetLineWidth(1)
		for _, r := range c.rooms {
			area := c.pixelRect(r.Bounds())
			ctx.DrawRectangle(float64(area.Min.X), float64(area.Min.Y), float64(area.Dx()), float64(area.Dy()))
			ctx.Stroke()
		}
	}

	return ctx.SavePNG(fpath)
}

// RoomID returns the Room.ID at x,y or -1 if there is no room.
func (c *imageMap) RoomID(x, y int) (int, error) {
	if c.isOutOfBounds(x, y) {
		return -1, fmt.Errorf("(%d,%d) is out of bounds", x, y)
	}
	return encoding.FromID(c.im.RGBA64At(x, y).R), nil
}

// setBM sets the 8 bit bitmap at x,y
func (c *imageMap) setBM(x, y int, bm bitmap.Bitmap) {
	num := encoding.FromBytes8(bm.Data(true))

	current := c.im.RGBA64At(x, y)
	hi, _ := encoding.Split16(current.A)
	current.A = encoding.Merge8(hi, num)

	c.im.SetRGBA64(x, y, current)
}

// getBM gets the 8 bit bitmap at x,y
func (c *imageMap) getBM(x, y int) bitmap.Bitmap {
	current := c.im.RGBA64At(x, y)

	_, bmdata := encoding.Split16(current.A)
	return bitmap.Bitmap(encoding.ToBytes8(bmdata))
}

// IsRoom returns if there is a room at x,y
func (c *imageMap) IsRoom(x, y int) bool {
	if c.isOutOfBounds(x, y) {
		return false
	}
	return c.getBM(x, y).Get(bitRoom)
}

// IsMainRoom returns if there is a main room at x,y
func (c *imageMap) IsMainRoom(x, y int) bool {
	if c.isOutOfBounds(x, y) {
		return false
	}
	return c.getBM(x, y).Get(bitMainRoom)
}

// IsHallway returns if there is a hallway at x,y
func (c *imageMap) IsHallway(x, y int) bool {
	if c.isOutOfBounds(x, y) {
		return false
	}
	return c.getBM(x, y).Get(bitHallway)
}

// IsSightline returns if a sightline passes through x,y
func (c *imageMap) IsSightline(x, y int) bool {
	if c.isOutOfBounds(x, y) {
		return false
	}
	return c.getBM(x, y).Get(bitSightline)
}

// isOutOfBounds determines if x,y is outside of the image area
func (c *imageMap) isOutOfBounds(x, y int) bool {
	return !image.Pt(x, y).In(c.im.Bounds())
}
