package tagvalue

import (
	"context"
	"fmt"
	"sort"
)

// Record is a generated message record.
type Record interface {
	MsgType() string
	Decode(v View) error
	Encode(v MessageView)
}

// DispatchFunc hands rec to the matching method of handler. It reports
// false when handler does not implement the message's handler interface.
type DispatchFunc func(ctx context.Context, handler any, rec Record) (bool, error)

// DefaultHandler receives messages no handler method accepted. rec is nil
// when the MsgType is missing or unknown.
type DefaultHandler func(ctx context.Context, msg MessageView, rec Record) error

// Route binds a MsgType to its record constructor and handler method.
type Route struct {
	MsgType  string
	Name     string
	Handler  string
	New      func() Record
	Dispatch DispatchFunc
}

// Registry maps MsgType codes of one protocol revision to routes.
type Registry struct {
	beginString string
	routes      map[string]Route
}

// NewRegistry panics on a repeated MsgType; generated packages never produce one.
func NewRegistry(beginString string, routes ...Route) *Registry {
	r := &Registry{
		beginString: beginString,
		routes:      make(map[string]Route, len(routes)),
	}

	for _, route := range routes {
		if _, ok := r.routes[route.MsgType]; ok {
			panic(fmt.Sprintf("tagvalue: duplicate MsgType %q in %s registry", route.MsgType, beginString))
		}

		r.routes[route.MsgType] = route
	}

	return r
}

func (r *Registry) BeginString() string {
	return r.beginString
}

func (r *Registry) Lookup(msgType string) (Route, bool) {
	route, ok := r.routes[msgType]
	return route, ok
}

// Routes returns every route ordered by MsgType.
func (r *Registry) Routes() []Route {
	routes := make([]Route, 0, len(r.routes))
	for _, route := range r.routes {
		routes = append(routes, route)
	}

	sort.Slice(routes, func(i, j int) bool { return routes[i].MsgType < routes[j].MsgType })

	return routes
}

// Decode builds the record registered for the MsgType of msg.
func (r *Registry) Decode(msg MessageView) (Record, error) {
	msgType, ok := msg.MsgType()
	if !ok {
		return nil, ErrMissingMsgType
	}

	route, ok := r.routes[msgType]
	if !ok {
		return nil, &UnknownMessageTypeError{MsgType: msgType}
	}

	rec := route.New()
	if err := rec.Decode(msg); err != nil {
		return nil, fmt.Errorf("decode %s(%s): %w", route.Name, msgType, err)
	}

	return rec, nil
}

// Crack decodes msg and routes it to handler. Messages with a missing or
// unknown MsgType, and messages handler has no method for, go to fallback.
// With a nil fallback an unknown MsgType is an error and an unhandled
// message is dropped.
func (r *Registry) Crack(ctx context.Context, handler any, msg MessageView, fallback DefaultHandler) error {
	msgType, ok := msg.MsgType()

	route, known := r.routes[msgType]
	if !ok || !known {
		if fallback != nil {
			return fallback(ctx, msg, nil)
		}

		if !ok {
			return ErrMissingMsgType
		}

		return &UnknownMessageTypeError{MsgType: msgType}
	}

	rec := route.New()
	if err := rec.Decode(msg); err != nil {
		return fmt.Errorf("decode %s(%s): %w", route.Name, msgType, err)
	}

	handled, err := route.Dispatch(ctx, handler, rec)
	if handled || fallback == nil {
		return err
	}

	return fallback(ctx, msg, rec)
}
