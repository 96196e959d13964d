package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/slimes/common"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeSolid
	collisionTypeSensor
)

const (
	groundSnapEpsilon = 0.05
	stepHeight        = 0.3
	probeRadius       = 0.01
)

// PhysicsSystem runs Chipmunk on the horizontal X/Z plane (cp X is world X,
// cp Y is world Z) and integrates height and gravity itself. Ground
// surfaces are sensors carrying their top height.
type PhysicsSystem struct {
	space   *cp.Space
	gravity float64

	entities map[ecs.Entity]*bodyInfo
	touching map[ecs.Entity]bool
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	ref    *shapeRef
	static bool
	lastXZ cp.Vector
}

// shapeRef is the user data of every shape the system owns.
type shapeRef struct {
	entity   ecs.Entity
	category component.Category
	bottom   float64
	top      float64
}

var _ component.Categorized = (*shapeRef)(nil)

func (r *shapeRef) Category() component.Category {
	if r == nil {
		return component.CategoryNone
	}
	return r.category
}

// GroundHit is the result of a downward probe.
type GroundHit struct {
	Entity   ecs.Entity
	Category component.Category
	Point    mgl64.Vec3
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		gravity:  common.Gravity,
		entities: make(map[ecs.Entity]*bodyInfo),
		touching: make(map[ecs.Entity]bool),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	space.SetDamping(0.05)
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// SetGravity sets the vertical acceleration (negative is down).
func (ps *PhysicsSystem) SetGravity(g float64) {
	if ps == nil {
		return
	}
	ps.gravity = g
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.Sync(w)
	if IsPaused(w) {
		return
	}

	dt := deltaTime(w)
	ps.applyVelocities(w)
	ps.space.Step(dt)
	ps.syncTransforms(w, dt)
	ps.updateTriggers(w)
}

// Sync creates shapes for new bodies, removes stale ones and pushes
// externally moved transforms into Chipmunk.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps.space == nil {
		ps.space = newSpace()
	}
	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		info := ps.entities[e]
		if info != nil {
			xz := cp.Vector{X: transform.Position.X(), Y: transform.Position.Z()}
			if !info.static && xz != info.lastXZ {
				info.body.SetPosition(xz)
				info.lastXZ = xz
			}
			info.ref.bottom = transform.Position.Y()
			info.ref.top = bodyComp.Top(transform.Position.Y())
			continue
		}

		category := component.CategoryNone
		if c, ok := ecs.Get(w, e, component.CategoryComponent.Kind()); ok {
			category = *c
		}

		info = ps.createBodyInfo(e, *transform, *bodyComp, category)
		if info == nil {
			continue
		}
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	}
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, transform component.Transform, bodyComp component.PhysicsBody, category component.Category) *bodyInfo {
	width, depth, radius := bodyComp.Width, bodyComp.Depth, bodyComp.Radius
	if radius <= 0 && (width <= 0 || depth <= 0) {
		width, depth = 1, 1
	}

	pos := transform.Position
	center := cp.Vector{X: pos.X(), Y: pos.Z()}
	ref := &shapeRef{entity: e, category: category, bottom: pos.Y(), top: bodyComp.Top(pos.Y())}
	info := &bodyInfo{ref: ref, lastXZ: center}

	var shape *cp.Shape
	if bodyComp.Static || bodyComp.Sensor {
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, center)
		} else {
			bb := cp.BB{L: center.X - width/2, B: center.Y - depth/2, R: center.X + width/2, T: center.Y + depth/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		info.body = ps.space.StaticBody
		info.static = true
		shape.SetCollisionType(collisionTypeSolid)
	} else {
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		body := cp.NewBody(mass, cp.INFINITY)
		body.SetPosition(center)
		ps.space.AddBody(body)
		if radius > 0 {
			shape = cp.NewCircle(body, radius, cp.Vector{})
		} else {
			shape = cp.NewBox(body, width, depth, 0)
		}
		info.body = body
		shape.SetCollisionType(collisionTypeActor)
	}

	if bodyComp.Sensor {
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeSensor)
	}
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	categories := category.Bit()
	if categories == 0 {
		categories = cp.ALL_CATEGORIES
	}
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categories, cp.ALL_CATEGORIES))
	shape.UserData = ref
	ps.space.AddShape(shape)

	info.shape = shape
	return info
}

func (ps *PhysicsSystem) applyVelocities(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		info.body.SetVelocity(bodyComp.Velocity.X(), bodyComp.Velocity.Z())
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World, dt float64) {
	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		info := ps.entities[e]
		if info == nil {
			continue
		}
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		if !info.static {
			pos := info.body.Position()
			vel := info.body.Velocity()
			transform.Position[0] = pos.X
			transform.Position[2] = pos.Y
			bodyComp.Velocity[0] = vel.X
			bodyComp.Velocity[2] = vel.Y
			info.lastXZ = pos
		}

		if bodyComp.UseGravity {
			ps.integrateVertical(w, e, transform, bodyComp, dt)
		}
		info.ref.bottom = transform.Position.Y()
		info.ref.top = bodyComp.Top(transform.Position.Y())
	}
}

func (ps *PhysicsSystem) integrateVertical(w *ecs.World, e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody, dt float64) {
	prevY := transform.Position.Y()
	vy := bodyComp.Velocity.Y() + ps.gravity*dt
	y := prevY + vy*dt

	touching := false
	if top, ok := ps.groundTop(transform.Position.X(), transform.Position.Z(), prevY+stepHeight); ok {
		if vy <= 0 && y <= top+groundSnapEpsilon {
			y = top
			vy = 0
			touching = true
		}
	}
	transform.Position[1] = y
	bodyComp.Velocity[1] = vy

	was := ps.touching[e]
	ps.touching[e] = touching
	if contact, ok := ecs.Get(w, e, component.GroundContactComponent.Kind()); ok {
		contact.Begin = touching && !was
		contact.Stay = touching && was
		contact.End = !touching && was
		contact.Touching = touching
	}
}

// groundTop is the highest Ground surface under (x, z) not above maxTop.
func (ps *PhysicsSystem) groundTop(x, z, maxTop float64) (float64, bool) {
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, component.CategoryGround.Bit())
	best, found := math.Inf(-1), false
	ps.pointShapes(x, z, filter, func(ref *shapeRef) {
		if ref.top <= maxTop && ref.top > best {
			best, found = ref.top, true
		}
	})
	return best, found
}

// ProbeDown finds the first surface straight below (x, fromY, z).
func (ps *PhysicsSystem) ProbeDown(x, z, fromY float64) (GroundHit, bool) {
	if ps == nil || ps.space == nil {
		return GroundHit{}, false
	}
	var hit GroundHit
	best, found := math.Inf(-1), false
	ps.pointShapes(x, z, cp.SHAPE_FILTER_ALL, func(ref *shapeRef) {
		if ref.top <= fromY && ref.top > best {
			best, found = ref.top, true
			hit = GroundHit{Entity: ref.entity, Category: ref.category, Point: mgl64.Vec3{x, ref.top, z}}
		}
	})
	return hit, found
}

func (ps *PhysicsSystem) pointShapes(x, z float64, filter cp.ShapeFilter, fn func(ref *shapeRef)) {
	p := cp.Vector{X: x, Y: z}
	bb := cp.BB{L: x - probeRadius, B: z - probeRadius, R: x + probeRadius, T: z + probeRadius}
	ps.space.BBQuery(bb, filter, func(shape *cp.Shape, _ interface{}) {
		ref, ok := shape.UserData.(*shapeRef)
		if !ok || ref == nil {
			return
		}
		if shape.PointQuery(p).Distance > 0 {
			return
		}
		fn(ref)
	}, nil)
}

func (ps *PhysicsSystem) updateTriggers(w *ecs.World) {
	ecs.ForEach(w, component.TriggerEventsComponent.Kind(), func(e ecs.Entity, events *component.TriggerEvents) {
		info := ps.entities[e]
		if info == nil {
			events.Track(nil)
			return
		}
		var overlapping []uint64
		ps.space.ShapeQuery(info.shape, func(shape *cp.Shape, _ *cp.ContactPointSet) {
			if !shape.Sensor() {
				return
			}
			ref, ok := shape.UserData.(*shapeRef)
			if !ok || ref == nil || ref.category == component.CategoryGround || ref.entity == e {
				return
			}
			if info.ref.bottom > ref.top || ref.bottom > info.ref.top {
				return
			}
			overlapping = append(overlapping, uint64(ref.entity))
		})
		events.Track(overlapping)
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
		delete(ps.touching, e)
	}
}
