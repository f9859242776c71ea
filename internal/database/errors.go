package database

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyPlanted = errors.New("veggie is already planted")
	ErrInvalidVeggie  = errors.New("invalid veggie")
	ErrInvalidStatus  = errors.New("status transition not allowed")
)

// Entity names the table an operation touched.
type Entity string

const (
	EntityVeggie   Entity = "veggie"
	EntityStage    Entity = "stage"
	EntityPlant    Entity = "plant"
	EntityReminder Entity = "reminder"
	EntitySetting  Entity = "setting"
)

type OpError struct {
	Op       string
	Resource Entity
	ID       int64
	Key      string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Key != "":
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.Key, e.Err)
	case e.ID > 0:
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(entity Entity, op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: entity, ID: id, Err: err}
}

func wrapKeyErr(entity Entity, op string, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: entity, Key: key, Err: err}
}
