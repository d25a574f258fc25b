// Package repository contains MySQL data access for rooms, events and
// users.  This file defines sentinel errors shared across repositories so
// handlers can distinguish failure scenarios: a missing room maps to 404,
// a blocked delete to 409, and so on.  Business-rule rejections are NOT
// errors; those are produced as data by the booking engine.
package repository

import "errors"

// ErrRoomNotFound indicates that a room was not located in the DB.
var ErrRoomNotFound = errors.New("room not found")

// ErrEventNotFound indicates that an event was not located in the DB.
var ErrEventNotFound = errors.New("event not found")

// ErrUserNotFound indicates that a user was not located in the DB.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned when registering with an email that already
// has an account.  Handlers should translate this into HTTP 409.
var ErrEmailTaken = errors.New("email already registered")

// ErrConflict is returned when a delete cannot be performed because of
// dependent records, such as removing a room that still has events
// booked in it.  Handlers should translate this into HTTP 409.
var ErrConflict = errors.New("conflict")
