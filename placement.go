// seehuhn.de/go/polygonize - convex collision shapes from sprite alpha
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package polygonize

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Placement describes how a sprite is drawn inside its parent, so that a
// collision polygon computed in image coordinates can be attached next to
// the sprite.
type Placement struct {
	// Position is the sprite origin in parent coordinates.
	Position vec.Vec2

	// Rotation is the sprite rotation in radians.  With the y-axis pointing
	// down, positive angles rotate clockwise on screen.
	Rotation float64

	// Scale is the sprite scale factor.  The zero value means {1, 1}.
	Scale vec.Vec2

	// Centered is set if the sprite draws its current frame centred on
	// Position rather than with the frame's top-left corner there.
	Centered bool
}

// Origin returns the position of the polygon node in parent coordinates.
// For centred sprites this is shifted by half a frame and by the offset
// of the frame within the sprite sheet; the shift is neither rotated nor
// scaled.
func (pl Placement) Origin(region image.Rectangle) vec.Vec2 {
	pos := pl.Position
	if pl.Centered {
		size := region.Size()
		pos = pos.Sub(vec.Vec2{X: float64(size.X), Y: float64(size.Y)}.Mul(0.5))
		pos = pos.Sub(vec.Vec2{X: float64(region.Min.X), Y: float64(region.Min.Y)})
	}
	return pos
}

// Matrix returns the transformation from image coordinates to parent
// coordinates for a polygon extracted from the given frame region: scaling
// and rotation around the polygon origin, followed by a translation to
// Origin(region).
func (pl Placement) Matrix(region image.Rectangle) matrix.Matrix {
	sx, sy := pl.Scale.X, pl.Scale.Y
	if pl.Scale == (vec.Vec2{}) {
		sx, sy = 1, 1
	}
	sin, cos := math.Sincos(pl.Rotation)
	o := pl.Origin(region)
	return matrix.Matrix{
		sx * cos, sx * sin,
		-sy * sin, sy * cos,
		o.X, o.Y,
	}
}
