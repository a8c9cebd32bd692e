// Command broadcast-demo publishes a mix of value and reference broadcasts to a set of listeners, and reports what each one received.
package main

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/broadcast/cli"
	"github.com/saylorsolutions/broadcast/patterns/dispatch"
	"github.com/saylorsolutions/broadcast/patterns/observer"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
	"io"
	"log/slog"
	"os"
)

const (
	channelTick dispatch.Channel = iota
	channelNote
)

type tick struct {
	seq int
}

func (t *tick) Invoke(b *dispatch.Binding) error {
	return dispatch.InvokeValueCallbacks(b, channelTick, t)
}

type note string

func (n note) String() string {
	return string(n)
}

type listener struct {
	name    string
	binding *dispatch.Binding
	ticks   int
	notes   int
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, &cli.UsageError{}) {
			os.Exit(2)
		}
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type demoConfig struct {
	listeners  int
	broadcasts int
	verbose    bool
	json       bool
}

func run(args []string, out, errOut io.Writer) error {
	commands := cli.NewCommandSet("broadcast-demo")
	commands.Printer().Redirect(errOut)
	publish := commands.AddCommand("publish", "Publishes a mix of broadcasts to a set of listeners, and reports what each one received", "pub")
	flags := publish.Flags()
	flags.IntP("listeners", "l", 3, "Number of listeners to bind")
	flags.IntP("broadcasts", "b", 10, "Number of broadcasts to publish")
	flags.BoolP("verbose", "v", false, "Enables debug logging")
	flags.Bool("json", false, "Forces JSON log output, which is the default when stderr isn't a terminal")
	publish.Usage("publish [FLAGS]").Does(func(flags *flag.FlagSet, _ *cli.Printer) error {
		conf := demoConfig{
			listeners:  cli.MustGet(flags.GetInt("listeners")),
			broadcasts: cli.MustGet(flags.GetInt("broadcasts")),
			verbose:    cli.MustGet(flags.GetBool("verbose")),
			json:       cli.MustGet(flags.GetBool("json")),
		}
		if conf.listeners < 0 || conf.broadcasts < 0 {
			return cli.NewUsageError("listeners and broadcasts must not be negative")
		}
		return publishDemo(conf, out, errOut)
	})
	return commands.Run(args)
}

func publishDemo(conf demoConfig, out, errOut io.Writer) error {
	log := newLogger(errOut, conf.verbose, conf.json)

	subject := dispatch.NewSubject(dispatch.WithLogger(log), dispatch.InitialCapacity(conf.listeners+1))
	listeners, err := bindListeners(subject, conf.listeners)
	if err != nil {
		log.Error("Failed to bind listeners", "error", err)
		return err
	}
	for seq := 1; seq <= conf.broadcasts; seq++ {
		if seq%3 == 0 {
			err = dispatch.Publish(subject, dispatch.RefBroadcast{Channel: channelNote, Value: note(fmt.Sprintf("note %d", seq))})
		} else {
			err = dispatch.Publish(subject, tick{seq: seq})
		}
		if err != nil {
			log.Error("Failed to publish", "seq", seq, "error", err)
			return err
		}
	}
	log.Info("Published broadcasts", "listeners", len(listeners), "broadcasts", conf.broadcasts)
	for _, l := range listeners {
		_, _ = fmt.Fprintf(out, "%s: %d ticks, %d notes\n", l.name, l.ticks, l.notes)
	}
	for _, l := range listeners {
		if err := l.binding.Dispose(); err != nil {
			return err
		}
	}
	return trackRoster(out, listeners, log)
}

func newLogger(w io.Writer, verbose, forceJSON bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if forceJSON || !isTerminal(w) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// bindListeners binds n listeners, where the listener at index i only counts ticks with a sequence number divisible by i+1.
func bindListeners(subject *dispatch.Subject, n int) ([]*listener, error) {
	listeners := make([]*listener, n)
	for i := range listeners {
		l := &listener{name: fmt.Sprintf("listener-%d", i+1)}
		listeners[i] = l
		l.binding = dispatch.NewBinding(channelTick, channelNote)
		every := i + 1
		if err := dispatch.AddValueCallback(l.binding, channelTick, func(*tick) error {
			l.ticks++
			return nil
		}, func(t *tick) bool {
			return t.seq%every == 0
		}); err != nil {
			return nil, err
		}
		if err := dispatch.AddRefCallback(l.binding, channelNote, func(fmt.Stringer) error {
			l.notes++
			return nil
		}); err != nil {
			return nil, err
		}
		if err := l.binding.Bind(subject); err != nil {
			return nil, err
		}
	}
	return listeners, nil
}

// trackRoster replays the listener names through an observable list, printing each change as it's observed.
func trackRoster(out io.Writer, listeners []*listener, log *slog.Logger) error {
	roster := observer.NewList[string](nil, dispatch.WithLogger(log))
	obs, err := roster.Observe()
	if err != nil {
		return err
	}
	defer func() {
		_ = obs.Close()
	}()
	if err := obs.OnAdded(func(idx int, name string) error {
		_, err := fmt.Fprintf(out, "roster: added %s at %d\n", name, idx)
		return err
	}); err != nil {
		return err
	}
	if err := obs.OnRemoved(func(idx int, name string) error {
		_, err := fmt.Fprintf(out, "roster: removed %s from %d\n", name, idx)
		return err
	}); err != nil {
		return err
	}
	if err := obs.OnCleared(func(removed []string) error {
		_, err := fmt.Fprintf(out, "roster: cleared %d\n", len(removed))
		return err
	}); err != nil {
		return err
	}

	for _, l := range listeners {
		if err := roster.Add(l.name); err != nil {
			return err
		}
	}
	if roster.Len() > 0 {
		if _, err := roster.RemoveAt(0); err != nil {
			return err
		}
	}
	return roster.Clear()
}
