package component

// EntityRef holds an ecs.Entity handle inside component data. Convert with
// ecs.Entity(ref) and component.EntityRef(e).
type EntityRef uint64
