package shardservice

import "errors"

// ErrNodeNotFound is returned by node lookups addressed by a key or id
// that does not resolve to a live node.
var ErrNodeNotFound = errors.New("shardservice: node not found")

// ErrRelationshipNotFound is returned by relationship lookups addressed by
// an id that does not resolve to a live relationship.
var ErrRelationshipNotFound = errors.New("shardservice: relationship not found")

// ErrTypeNotFound is returned when a type name has never been registered.
var ErrTypeNotFound = errors.New("shardservice: type not found")
