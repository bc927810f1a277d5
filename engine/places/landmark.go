package places

import (
	"context"

	"github.com/nathoo/wayfarer/engine/prompt"
	"github.com/nathoo/wayfarer/engine/world"
)

// Landmark is a unique place that is visited, described and left at once.
type Landmark struct {
	base
}

// NewLandmark creates a landmark.
func NewLandmark(name, description string) *Landmark {
	return &Landmark{base: base{name: name, description: description}}
}

func (l *Landmark) Kind() string { return KindLandmark }

func (l *Landmark) Enter(_ context.Context, guest *world.Entity, io prompt.IO) error {
	l.arrive(io, KindLandmark, guest)
	l.leave(io, KindLandmark)
	return nil
}
