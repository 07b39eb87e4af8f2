// Package bind supplies the schema machinery that drives treedec's container
// views: generic drivers for slice and map targets, and a reflection-based
// binder for plain structs whose field keys are resolved from struct tags.
package bind
