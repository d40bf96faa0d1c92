// Package app wires the pomodoro command line to the session, countdown
// and cue packages.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sadopc/pomodoro/internal/countdown"
	"github.com/sadopc/pomodoro/internal/cue"
	"github.com/sadopc/pomodoro/internal/session"
)

// EnvPrefix is the prefix of environment variables that override flags,
// e.g. POMODORO_WORK_TIME=50.
const EnvPrefix = "POMODORO"

const (
	flagWorkTime  = "work-time"
	flagBreakTime = "break-time"
	flagCycles    = "cycles"
	flagAudioDir  = "audio-dir"
	flagMute      = "mute"
	flagNoNotify  = "no-notify"
	flagLogLevel  = "log-level"
	flagLogFile   = "log-file"
)

// options is everything the command line resolves to.
type options struct {
	Session  session.Config
	AudioDir string
	Mute     bool
	NoNotify bool
	LogLevel string
	LogFile  string
}

// collaborators are the side-effecting pieces a run talks to. Tests swap
// them for fakes.
type collaborators struct {
	notifier func(opts options) cue.Notifier
	player   func(opts options) cue.Player
	clock    countdown.Clock
}

func defaultCollaborators() collaborators {
	return collaborators{
		notifier: func(opts options) cue.Notifier {
			if opts.NoNotify {
				return cue.Nop{}
			}
			return cue.NewDBusNotifier()
		},
		player: func(opts options) cue.Player {
			if opts.Mute {
				return cue.Nop{}
			}
			return cue.NewSpeakerPlayer(opts.AudioDir)
		},
		clock: countdown.RealClock{},
	}
}

// NewRootCmd creates the pomodoro command.
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(version, defaultCollaborators())
}

func newRootCmd(version string, deps collaborators) *cobra.Command {
	v := viper.New()
	defaults := session.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "A Pomodoro timer for the terminal",
		Long: `pomodoro alternates work and break intervals for a number of cycles,
showing a live countdown and announcing each phase with a sound and a
desktop notification.

Every flag can also be set through the environment with the ` + EnvPrefix + `_
prefix, for example ` + EnvPrefix + `_WORK_TIME=50.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := loadOptions(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), opts, streams{
				in:     cmd.InOrStdin(),
				out:    cmd.OutOrStdout(),
				errOut: cmd.ErrOrStderr(),
			}, deps)
		},
	}

	flags := cmd.Flags()
	flags.IntP(flagWorkTime, "w", defaults.WorkMinutes, "Time to work in minutes")
	flags.IntP(flagBreakTime, "b", defaults.BreakMinutes, "Time to take a break in minutes")
	flags.IntP(flagCycles, "c", defaults.Cycles, "Number of cycles to run")
	flags.String(flagAudioDir, "audio", "Directory holding clock.mp3, success.mp3 and endbreak.mp3")
	flags.Bool(flagMute, false, "Do not play sounds")
	flags.Bool(flagNoNotify, false, "Do not send desktop notifications")
	flags.String(flagLogLevel, defaultLogLevel, "Log level (debug, info, warn, error)")
	flags.String(flagLogFile, "", "Write logs to this file instead of stderr")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(c.UsageString())
		return err
	})

	// Binding only fails for a nil flag set.
	_ = v.BindPFlags(flags)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

// loadOptions reads flags and environment overrides. Environment values go
// through the same integer checks as flags.
func loadOptions(v *viper.Viper) (options, error) {
	var errs []error
	getInt := func(key string) int {
		n, err := cast.ToIntE(v.Get(key))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s %q: %w", key, v.GetString(key), err))
		}
		return n
	}
	getBool := func(key string) bool {
		b, err := cast.ToBoolE(v.Get(key))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s %q: %w", key, v.GetString(key), err))
		}
		return b
	}

	opts := options{
		Session: session.Config{
			WorkMinutes:  getInt(flagWorkTime),
			BreakMinutes: getInt(flagBreakTime),
			Cycles:       getInt(flagCycles),
		},
		AudioDir: v.GetString(flagAudioDir),
		Mute:     getBool(flagMute),
		NoNotify: getBool(flagNoNotify),
		LogLevel: v.GetString(flagLogLevel),
		LogFile:  v.GetString(flagLogFile),
	}
	if err := errors.Join(errs...); err != nil {
		return options{}, err
	}
	if err := opts.Session.Validate(); err != nil {
		return options{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return opts, nil
}

// Execute runs the command under ctx and returns the process exit code.
// Failures are reported on stderr.
func Execute(ctx context.Context, version string) int {
	cmd := NewRootCmd(version)
	return exitCode(cmd.ErrOrStderr(), cmd.ExecuteContext(ctx))
}

func exitCode(w io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInterrupted):
		return 130
	default:
		fmt.Fprintf(w, "error: %v\n", err)
		return 1
	}
}
