package system

import (
	"image"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/slimes/common"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

const (
	pixelsPerUnit = 40.0
	depthSquash   = 0.6
)

// RenderSystem draws the world with an oblique top-down projection: X runs
// right, Z runs down the screen and height lifts objects up.
type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type projection struct {
	cam    mgl64.Vec3
	scale  float64
	cx, cy float64
}

func (p projection) point(v mgl64.Vec3) (float32, float32) {
	x := p.cx + (v.X()-p.cam.X())*p.scale
	y := p.cy + (v.Z()-p.cam.Z())*p.scale*depthSquash - (v.Y()-p.cam.Y())*p.scale
	return float32(x), float32(y)
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	proj := cameraProjection(w, r.camEntity, screen.Bounds())

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := renderLayer(w, entities[i]), renderLayer(w, entities[j])
		if li != lj {
			return li < lj
		}
		ti, _ := ecs.Get(w, entities[i], component.TransformComponent.Kind())
		tj, _ := ecs.Get(w, entities[j], component.TransformComponent.Kind())
		if ti.Position.Z() != tj.Position.Z() {
			return ti.Position.Z() < tj.Position.Z()
		}
		return ti.Position.Y() < tj.Position.Y()
	})

	for _, e := range entities {
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		t := tr
		if hover, ok := ecs.Get(w, e, component.HoverComponent.Kind()); ok && hover.Offset != 0 {
			bobbed := *tr
			bobbed.Position[1] += hover.Offset
			t = &bobbed
		}
		if s.Hidden || s.Color == nil {
			continue
		}
		clr := s.Color
		if flash, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind()); ok && flash.On {
			clr = color.White
		}
		width, depth, height := 1.0, 1.0, 1.0
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			width, depth, height = body.Width, body.Depth, body.Height
			if body.Radius > 0 {
				width, depth = body.Radius*2, body.Radius*2
			}
		}

		switch s.Shape {
		case component.SpriteBox:
			drawBox(screen, proj, t.Position, width, depth, height, clr)
		case component.SpriteBlob:
			face := ""
			if f, ok := ecs.Get(w, e, component.FaceComponent.Kind()); ok {
				face = f.Current
			}
			drawBlob(screen, proj, t, width/2, clr, face)
		case component.SpriteGem:
			drawGem(screen, proj, t, width/2, clr)
		case component.SpriteFlag:
			drawFlag(screen, proj, t.Position, height, clr)
		}
	}
}

func cameraProjection(w *ecs.World, cam ecs.Entity, bounds image.Rectangle) projection {
	proj := projection{scale: pixelsPerUnit, cx: float64(bounds.Dx()) / 2, cy: float64(bounds.Dy()) / 2}
	if camTransform, ok := ecs.Get(w, cam, component.TransformComponent.Kind()); ok {
		proj.cam = camTransform.Position
	}
	if camComp, ok := ecs.Get(w, cam, component.CameraComponent.Kind()); ok {
		proj.cam = proj.cam.Add(camComp.Shake)
		if camComp.Zoom > 0 {
			proj.scale *= camComp.Zoom
		}
	}
	return proj
}

func renderLayer(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}

func drawBox(dst *ebiten.Image, p projection, base mgl64.Vec3, width, depth, height float64, clr color.Color) {
	top := base.Y() + height
	x0, y0 := p.point(mgl64.Vec3{base.X() - width/2, top, base.Z() - depth/2})
	x1, y1 := p.point(mgl64.Vec3{base.X() + width/2, top, base.Z() + depth/2})
	_, y2 := p.point(mgl64.Vec3{base.X(), base.Y(), base.Z() + depth/2})
	vector.DrawFilledRect(dst, x0, y1, x1-x0, y2-y1, shade(clr, 0.6), false)
	vector.DrawFilledRect(dst, x0, y0, x1-x0, y1-y0, clr, false)
}

func drawBlob(dst *ebiten.Image, p projection, t *component.Transform, radius float64, clr color.Color, face string) {
	r := float32(radius * p.scale)
	cx, cy := p.point(t.Position.Add(mgl64.Vec3{0, radius, 0}))
	vector.DrawFilledCircle(dst, cx, cy, r, clr, true)
	vector.DrawFilledCircle(dst, cx-r*0.3, cy-r*0.35, r*0.25, shade(clr, 1.4), true)

	fwd := common.Forward(t.Yaw)
	if fwd.Z() < -0.2 {
		return // facing away
	}
	side := float32(fwd.X()) * r * 0.4
	eye := r * 0.15
	ink := color.NRGBA{R: 0x20, G: 0x20, B: 0x30, A: 0xff}
	for _, dx := range []float32{-r * 0.3, r * 0.3} {
		ex, ey := cx+dx+side, cy-r*0.1
		switch {
		case strings.HasPrefix(face, "damage"):
			vector.StrokeLine(dst, ex-eye, ey-eye, ex+eye, ey+eye, 2, ink, true)
			vector.StrokeLine(dst, ex-eye, ey+eye, ex+eye, ey-eye, 2, ink, true)
		case face == "attack":
			vector.StrokeLine(dst, ex-eye, ey-eye, ex+eye, ey, 2, ink, true)
		case face == "jump":
			vector.DrawFilledCircle(dst, ex, ey, eye*1.5, ink, true)
		default:
			vector.DrawFilledCircle(dst, ex, ey, eye, ink, true)
		}
	}
}

func drawGem(dst *ebiten.Image, p projection, t *component.Transform, radius float64, clr color.Color) {
	cx, cy := p.point(t.Position.Add(mgl64.Vec3{0, radius, 0}))
	r := float32(radius * p.scale)
	// yaw squeezes the diamond horizontally as it spins
	sx := float32(math.Abs(math.Cos(mgl64.DegToRad(t.Yaw))))*r + 1
	pts := [][2]float32{{cx, cy - r}, {cx + sx, cy}, {cx, cy + r}, {cx - sx, cy}}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, a[0], a[1], b[0], b[1], 2, clr, true)
	}
	vector.DrawFilledCircle(dst, cx, cy, r*0.3, clr, true)
}

func drawFlag(dst *ebiten.Image, p projection, base mgl64.Vec3, height float64, clr color.Color) {
	x0, y0 := p.point(base)
	x1, y1 := p.point(base.Add(mgl64.Vec3{0, height, 0}))
	vector.StrokeLine(dst, x0, y0, x1, y1, 3, color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}, true)
	size := float32(0.4 * p.scale)
	vector.DrawFilledRect(dst, x1, y1, size*1.4, size, clr, false)
}

func shade(c color.Color, f float64) color.Color {
	r, g, b, a := c.RGBA()
	scale := func(v uint32) uint8 {
		return uint8(math.Min(255, float64(v>>8)*f))
	}
	return color.NRGBA{R: scale(r), G: scale(g), B: scale(b), A: uint8(a >> 8)}
}
