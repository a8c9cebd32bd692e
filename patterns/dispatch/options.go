package dispatch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

type subjectConf struct {
	log      *slog.Logger
	capacity int
}

func defaultConf() subjectConf {
	return subjectConf{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a [Subject] created with [NewSubject].
type Option func(conf *subjectConf) error

// WithLogger sets the logger used to report membership changes, discarded broadcasts, and listener failures.
// Everything is logged at [slog.LevelDebug], and nothing is logged by default.
func WithLogger(log *slog.Logger) Option {
	return func(conf *subjectConf) error {
		if log == nil {
			return errors.New("nil logger")
		}
		conf.log = log
		return nil
	}
}

// InitialCapacity reserves space in the operation log for size operations.
// This is only a hint to reduce early allocations, the log grows as needed.
func InitialCapacity(size int) Option {
	return func(conf *subjectConf) error {
		if size < 0 {
			return fmt.Errorf("invalid initial capacity '%d'", size)
		}
		conf.capacity = size
		return nil
	}
}
