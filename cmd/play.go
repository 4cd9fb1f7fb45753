package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scriptsync/internal/alignment"
	"scriptsync/internal/config"
	"scriptsync/internal/player"
	"scriptsync/internal/render"
	"scriptsync/internal/segment"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var playCmd = &cobra.Command{
	Use:   "play <alignment-file>",
	Short: "Play an alignment file against a simulated audio clock",
	Long: `Play loads a timing alignment (a raw character alignment or a word-level
transcript JSON), composes it into word and gap segments, and plays the
transcript in real time against a wall-clock transport, highlighting the
current word as playback advances.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

var (
	hideAudioTags bool
	pollInterval  time.Duration
	redrawRate    float64
	startFrom     float64
	speed         float64
)

func init() {
	defaults := config.FromEnv()

	playCmd.Flags().BoolVar(&hideAudioTags, "hide-audio-tags", defaults.HideAudioTags, "suppress bracketed audio tags like [laughs]")
	playCmd.Flags().DurationVar(&pollInterval, "poll-interval", defaults.PollInterval, "playback polling interval")
	playCmd.Flags().Float64Var(&redrawRate, "redraw-rate", defaults.RedrawPerSec, "maximum terminal redraws per second")
	playCmd.Flags().Float64Var(&startFrom, "from", 0, "start position in seconds")
	playCmd.Flags().Float64Var(&speed, "speed", defaults.Speed, "playback speed multiplier")

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read alignment file: %w", err)
	}

	a, err := alignment.Decode(data)
	if err != nil {
		return err
	}

	segments, words := segment.Compose(a, segment.Options{HideAudioTags: hideAudioTags})
	slog.Info("alignment loaded",
		"characters", a.Len(),
		"segments", len(segments),
		"words", len(words),
		"duration_est", fmt.Sprintf("%.2fs", a.EstimatedDuration()))

	if len(words) == 0 {
		return fmt.Errorf("alignment contains no words")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := player.NewClock(a.EstimatedDuration(), speed)
	renderer := render.New(os.Stdout, redrawRate)

	// Frames are dropped, not queued, when the renderer falls behind.
	frames := make(chan player.State, 64)
	done := make(chan struct{})

	engine := player.New(player.Options{
		PollInterval: pollInterval,
		OnChange: func(st player.State) {
			select {
			case frames <- st:
			default:
			}
		},
		OnDurationChange: func(d float64) {
			slog.Debug("duration resolved", "seconds", d)
		},
	})

	unsub := clock.Subscribe(player.Listener{
		OnEnded: func() { close(done) },
	})
	defer unsub()

	engine.Attach(clock)
	defer engine.Detach()
	engine.Load(segments, words, a.EstimatedDuration())

	if startFrom > 0 {
		engine.SeekToTime(startFrom)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-done:
				return nil
			case st := <-frames:
				renderer.Draw(st, engine.View())
			}
		}
	})

	g.Go(func() error {
		select {
		case <-gctx.Done():
			return gctx.Err()
		case <-done:
			return nil
		}
	})

	engine.Play()

	err = g.Wait()
	engine.Pause()
	renderer.Final(engine.State(), engine.View())

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if !quiet {
		slog.Info("done")
	}
	return nil
}
