package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

const debugCircleSegments = 24

// DrawPhysicsDebug outlines every Chipmunk shape at the height of its
// bottom face, using the same projection as the renderer.
func DrawPhysicsDebug(ps *PhysicsSystem, w *ecs.World, screen *ebiten.Image) {
	if ps == nil || ps.space == nil || w == nil || screen == nil {
		return
	}

	cam, _ := w.First(component.CameraComponent.Kind())
	drawer := &physicsDebugDrawer{
		screen: screen,
		proj:   cameraProjection(w, cam, screen.Bounds()),
	}
	cp.DrawSpace(ps.space, drawer)
}

// DrawPlayerDebug prints the player's state machine and contact info.
func DrawPlayerDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}

	state := "none"
	if s, ok := ecs.Get(w, player, component.SlimeStateComponent.Kind()); ok {
		state = s.State.String()
	}
	grounded := false
	if contact, ok := ecs.Get(w, player, component.GroundContactComponent.Kind()); ok {
		grounded = contact.Touching
	}
	var pos, vel mgl64.Vec3
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		pos = t.Position
	}
	if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok {
		vel = body.Velocity
	}
	idle, resets := 0.0, 0
	if sl, ok := ecs.Get(w, player, component.SoftlockComponent.Kind()); ok {
		idle, resets = sl.IdleTime, sl.Resets
	}
	enemies := len(w.Query(component.EnemyComponent.Kind()))

	text := fmt.Sprintf("State: %s\nGrounded: %v\nPos: %.2f %.2f %.2f\nVel: %.2f %.2f %.2f\nIdle: %.1fs (resets %d)\nEnemies: %d",
		state, grounded, pos.X(), pos.Y(), pos.Z(), vel.X(), vel.Y(), vel.Z(), idle, resets, enemies)
	ebitenutil.DebugPrintAt(screen, text, 10, 20)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	proj   projection
	height float64
	color  color.NRGBA
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: pos.X + math.Cos(t)*radius, Y: pos.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count])
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

// ShapeColor runs right before each shape is drawn, so it also picks up the
// shape's height and category color.
func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	d.height = 0
	d.color = color.NRGBA{R: 0x33, G: 0xff, B: 0x33, A: 0xe6}
	if ref, ok := shape.UserData.(*shapeRef); ok && ref != nil {
		d.height = ref.bottom
		d.color = debugCategoryColor(ref.category)
	}
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector) {
	x1, y1 := d.proj.point(mgl64.Vec3{a.X, d.height, a.Y})
	x2, y2 := d.proj.point(mgl64.Vec3{b.X, d.height, b.Y})
	vector.StrokeLine(d.screen, x1, y1, x2, y2, 1, d.color, true)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)])
	}
}

func debugCategoryColor(c component.Category) color.NRGBA {
	switch c {
	case component.CategoryPlayer:
		return color.NRGBA{R: 0x33, G: 0x99, B: 0xff, A: 0xe6}
	case component.CategoryEnemy:
		return color.NRGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xe6}
	case component.CategoryPickUp, component.CategoryWinMarker:
		return color.NRGBA{R: 0xff, G: 0xdd, B: 0x33, A: 0xe6}
	case component.CategoryWall:
		return color.NRGBA{R: 0xcc, G: 0x66, B: 0xff, A: 0xe6}
	default:
		return color.NRGBA{R: 0x33, G: 0xff, B: 0x33, A: 0xe6}
	}
}
