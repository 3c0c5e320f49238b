package ecs

import "strconv"

// Entity packs a slot id in the low 32 bits and the slot's generation in the
// high 32 bits, so a handle to a destroyed entity never matches its reused slot.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String formats the handle as id or id.generation once the slot is reused.
func (e Entity) String() string {
	s := strconv.FormatUint(uint64(e.id()), 10)
	if g := e.generation(); g > 0 {
		s += "." + strconv.FormatUint(uint64(g), 10)
	}
	return s
}

func (e Entity) Valid() bool {
	return e.id() > 0
}
