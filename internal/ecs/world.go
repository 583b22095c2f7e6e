package ecs

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/cubesim/internal/domain/entity"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// Tag is an opaque group label. Every entity belongs to exactly one group.
type Tag string

// World holds all component maps, the parent/child tree and the tag groups
type World struct {
	nextID EntityID

	// Components
	Transform map[EntityID]Transform
	Cube      map[EntityID]entity.Cube
	Camera    map[EntityID]Camera
	Mesh      map[EntityID]Mesh
	Light     map[EntityID]Light
	Text      map[EntityID]Text
	Button    map[EntityID]entity.Button

	alive map[EntityID]struct{}

	// Hierarchy
	parent   map[EntityID]EntityID
	children map[EntityID][]EntityID

	// Groups
	tags   map[EntityID]Tag
	groups map[Tag]map[EntityID]struct{}
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:    1, // 0 is "nil"
		Transform: make(map[EntityID]Transform),
		Cube:      make(map[EntityID]entity.Cube),
		Camera:    make(map[EntityID]Camera),
		Mesh:      make(map[EntityID]Mesh),
		Light:     make(map[EntityID]Light),
		Text:      make(map[EntityID]Text),
		Button:    make(map[EntityID]entity.Button),
		alive:     make(map[EntityID]struct{}),
		parent:    make(map[EntityID]EntityID),
		children:  make(map[EntityID][]EntityID),
		tags:      make(map[EntityID]Tag),
		groups:    make(map[Tag]map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Spawn creates a root entity in the tag's group with an identity transform
func (w *World) Spawn(tag Tag) EntityID {
	id := w.NewEntity()
	w.alive[id] = struct{}{}
	w.Transform[id] = NewTransform(0, 0, 0)
	w.join(id, tag)
	return id
}

// SpawnChild creates an entity parented to parent. The child joins the parent's group
// and its transform is local to the parent.
func (w *World) SpawnChild(parent EntityID) (EntityID, error) {
	if !w.Exists(parent) {
		return 0, fmt.Errorf("spawn child: parent %d does not exist", parent)
	}
	id := w.NewEntity()
	w.alive[id] = struct{}{}
	w.Transform[id] = NewTransform(0, 0, 0)
	w.join(id, w.tags[parent])
	w.parent[id] = parent
	w.children[parent] = append(w.children[parent], id)
	return id, nil
}

func (w *World) join(id EntityID, tag Tag) {
	group, ok := w.groups[tag]
	if !ok {
		group = make(map[EntityID]struct{})
		w.groups[tag] = group
	}
	group[id] = struct{}{}
	w.tags[id] = tag
}

// DestroyEntity removes an entity, all of its components and, recursively, its children.
// Returns the number of entities removed.
func (w *World) DestroyEntity(id EntityID) int {
	if !w.Exists(id) {
		return 0
	}

	removed := 0
	for _, child := range slices.Clone(w.children[id]) {
		removed += w.DestroyEntity(child)
	}

	if p, ok := w.parent[id]; ok {
		w.children[p] = slices.DeleteFunc(w.children[p], func(c EntityID) bool { return c == id })
		delete(w.parent, id)
	}
	delete(w.children, id)

	if tag, ok := w.tags[id]; ok {
		delete(w.groups[tag], id)
		if len(w.groups[tag]) == 0 {
			delete(w.groups, tag)
		}
		delete(w.tags, id)
	}

	delete(w.Transform, id)
	delete(w.Cube, id)
	delete(w.Camera, id)
	delete(w.Mesh, id)
	delete(w.Light, id)
	delete(w.Text, id)
	delete(w.Button, id)
	delete(w.alive, id)

	return removed + 1
}

// DespawnTag destroys every entity in the tag's group, children included.
// Entities in other groups are untouched. Returns the number of entities removed.
func (w *World) DespawnTag(tag Tag) int {
	removed := 0
	for _, id := range w.Tagged(tag) {
		// already gone if it was a child of an earlier entry
		removed += w.DestroyEntity(id)
	}
	return removed
}

// Exists checks if an entity is alive
func (w *World) Exists(id EntityID) bool {
	_, ok := w.alive[id]
	return ok
}

// Count returns the number of live entities
func (w *World) Count() int {
	return len(w.alive)
}

// CountTag returns the number of live entities in the tag's group
func (w *World) CountTag(tag Tag) int {
	return len(w.groups[tag])
}

// Tagged returns the tag's members in creation order
func (w *World) Tagged(tag Tag) []EntityID {
	ids := make([]EntityID, 0, len(w.groups[tag]))
	for id := range w.groups[tag] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// TagOf returns the group an entity belongs to
func (w *World) TagOf(id EntityID) (Tag, bool) {
	tag, ok := w.tags[id]
	return tag, ok
}

// Parent returns the entity's parent, if any
func (w *World) Parent(id EntityID) (EntityID, bool) {
	p, ok := w.parent[id]
	return p, ok
}

// Children returns a copy of the entity's direct children
func (w *World) Children(id EntityID) []EntityID {
	return slices.Clone(w.children[id])
}

// WorldTransform composes the entity's transform with its parent chain
func (w *World) WorldTransform(id EntityID) Transform {
	local := w.Transform[id]
	p, ok := w.parent[id]
	if !ok {
		return local
	}
	pw := w.WorldTransform(p)
	return Transform{
		Position: pw.Position.Add(pw.Rotation.Rotate(local.Position)),
		Rotation: pw.Rotation.Mul(local.Rotation).Normalize(),
	}
}

// WorldPosition returns the entity's position in world space
func (w *World) WorldPosition(id EntityID) mgl64.Vec3 {
	return w.WorldTransform(id).Position
}

// Cubes returns all cube entities
func (w *World) Cubes() []EntityID {
	return sortedKeys(w.Cube)
}

// Buttons returns all button entities in creation order
func (w *World) Buttons() []EntityID {
	return sortedKeys(w.Button)
}

// Meshes returns all mesh entities in creation order
func (w *World) Meshes() []EntityID {
	return sortedKeys(w.Mesh)
}

// Lights returns all light entities in creation order
func (w *World) Lights() []EntityID {
	return sortedKeys(w.Light)
}

// Texts returns all text entities in creation order
func (w *World) Texts() []EntityID {
	return sortedKeys(w.Text)
}

// ActiveCameras returns all cameras marked active
func (w *World) ActiveCameras() []EntityID {
	var ids []EntityID
	for id, c := range w.Camera {
		if c.Active {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

func sortedKeys[V any](m map[EntityID]V) []EntityID {
	ids := make([]EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
