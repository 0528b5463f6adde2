package grocy

import (
	"context"
	"fmt"
)

// Object is an untyped Grocy entity record: the open mapping used by the
// generic CRUD paths where no stronger schema applies.
type Object map[string]any

// GenericService performs CRUD operations on any Grocy entity type.
// Typed services cover the well-known entities; this is the uniform
// fallback for everything else (locations, quantity units, userentities,
// and so on).
type GenericService struct {
	client *Client
}

// List returns all objects of an entity type, optionally filtered
// server-side via query expressions like "name=Milk".
func (s *GenericService) List(ctx context.Context, entityType EntityType, filters ...string) ([]Object, error) {
	var objects []Object
	if err := s.client.get(ctx, "objects/"+entityType.String(), filters, &objects); err != nil {
		return nil, err
	}
	return objects, nil
}

// Get returns one object. A missing id fails with a NotFound-class *Error.
func (s *GenericService) Get(ctx context.Context, entityType EntityType, objectID int) (Object, error) {
	var object Object
	if err := s.client.get(ctx, fmt.Sprintf("objects/%s/%d", entityType, objectID), nil, &object); err != nil {
		return nil, err
	}
	return object, nil
}

// Create adds an object and returns the backend-assigned id.
func (s *GenericService) Create(ctx context.Context, entityType EntityType, data Object) (int, error) {
	var resp CreatedObjectResponse
	if err := s.client.post(ctx, "objects/"+entityType.String(), data, &resp); err != nil {
		return 0, err
	}
	return int(resp.CreatedObjectID), nil
}

// Update modifies fields of an object. Fields not present in data keep
// their current values. A missing id fails with a NotFound-class *Error.
func (s *GenericService) Update(ctx context.Context, entityType EntityType, objectID int, data Object) error {
	return s.client.put(ctx, fmt.Sprintf("objects/%s/%d", entityType, objectID), data, nil)
}

// Delete removes an object. Deleting a missing id fails with the same
// NotFound-class *Error as Get; the call is not idempotent.
func (s *GenericService) Delete(ctx context.Context, entityType EntityType, objectID int) error {
	return s.client.delete(ctx, fmt.Sprintf("objects/%s/%d", entityType, objectID))
}

// Userfields returns the custom userfields of an object.
func (s *GenericService) Userfields(ctx context.Context, entityType EntityType, objectID int) (Object, error) {
	var fields Object
	if err := s.client.get(ctx, fmt.Sprintf("userfields/%s/%d", entityType, objectID), nil, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// SetUserfield stores one custom userfield value on an object.
func (s *GenericService) SetUserfield(ctx context.Context, entityType EntityType, objectID int, key string, value any) error {
	return s.client.put(ctx, fmt.Sprintf("userfields/%s/%d", entityType, objectID), map[string]any{key: value}, nil)
}
