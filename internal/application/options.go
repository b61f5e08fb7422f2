package application

import (
	"time"

	"github.com/rs/zerolog"

	"simplenotes/internal/domain"
	"simplenotes/internal/ports"
)

// DefaultAutoSaveInterval is how often auto-save fires while enabled
const DefaultAutoSaveInterval = 60 * time.Second

// Options configures a Workspace. Zero values select the defaults.
type Options struct {
	Clock            ports.Clock
	Logger           *zerolog.Logger
	IDs              *domain.IDGenerator
	AutoSaveInterval time.Duration
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = ports.SystemClock{}
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	if o.IDs == nil {
		clock := o.Clock
		o.IDs = domain.NewIDGenerator(clock.Now)
	}
	if o.AutoSaveInterval <= 0 {
		o.AutoSaveInterval = DefaultAutoSaveInterval
	}
	return o
}

// stamp returns the clock time at the millisecond precision that survives persistence
func stamp(c ports.Clock) time.Time {
	return c.Now().UTC().Truncate(time.Millisecond)
}
