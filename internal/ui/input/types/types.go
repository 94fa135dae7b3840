// Package types defines the actions the input handler emits and the reducer
// consumes.
package types

// Action represents a state transition the reducer should apply
type Action interface {
	Type() string
}

// Direction names a navigation move
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionTop      Direction = "top"
	DirectionBottom   Direction = "bottom"
)
