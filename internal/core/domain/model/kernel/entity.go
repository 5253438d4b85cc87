package kernel

// Entity is implemented by every domain object with an identity of type ID.
type Entity[ID comparable] interface {
	ID() ID
}

// BaseEntity is the identity capability composed into entities. It is meant to
// be held in an unexported field so that SetID stays inside the owning package.
type BaseEntity[ID comparable] struct {
	id ID
}

func NewBaseEntity[ID comparable](id ID) BaseEntity[ID] {
	return BaseEntity[ID]{id: id}
}

func (e BaseEntity[ID]) ID() ID {
	return e.id
}

func (e *BaseEntity[ID]) SetID(id ID) {
	e.id = id
}

// HasID reports whether an identity has been assigned.
func (e BaseEntity[ID]) HasID() bool {
	var zero ID
	return e.id != zero
}

// IsEqual compares by identity. Entities without an identity are never equal.
func (e BaseEntity[ID]) IsEqual(other BaseEntity[ID]) bool {
	return e.HasID() && e.id == other.id
}

// AggregateRoot marks the entity through which a consistency boundary is accessed.
type AggregateRoot[ID comparable] struct {
	BaseEntity[ID]
}

func NewAggregateRoot[ID comparable](id ID) AggregateRoot[ID] {
	return AggregateRoot[ID]{BaseEntity: NewBaseEntity(id)}
}

// IndexByID maps every entity to its identity. Later duplicates win.
func IndexByID[ID comparable, E Entity[ID]](entities []E) map[ID]E {
	index := make(map[ID]E, len(entities))
	for _, entity := range entities {
		index[entity.ID()] = entity
	}
	return index
}
