package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kanales/levdle/internal/config"
	"github.com/kanales/levdle/internal/daily"
	"github.com/kanales/levdle/internal/game"
	"github.com/kanales/levdle/internal/tui"
)

func main() {
	cmd := newRootCmd(os.Stdin, colorable.NewColorableStdout(), time.Now)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer, now func() time.Time) *cobra.Command {
	return &cobra.Command{
		Use:   "levdle",
		Short: "Guess today's five-letter word, scored by edit distance",
		Long: `levdle picks one five-letter word per calendar day. Type a guess and
press enter: a wrong guess shows its Levenshtein distance to the secret.
You have six guesses and one session per day.

Configuration is read from the environment (and .env):
  LOG_LEVEL, LEVDLE_WORDS_FILE, LEVDLE_MARKER, LEVDLE_MARKER_FILE, LEVDLE_DB`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), in, out, now)
		},
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer, now func() time.Time) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	initLogger(cfg.LogLevel)

	list, err := cfg.Words()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	store, closer, err := cfg.OpenMarker(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("marker", cfg.Marker).Msg("failed to open daily marker")
	}
	today := daily.DateKey(now())
	decision, err := daily.NewGate(store).Check(ctx, today)
	closeMarker(closer)
	if err != nil {
		log.Fatal().Err(err).Msg("daily marker check failed")
	}
	if decision == daily.AlreadyPlayed {
		log.Info().Str("date", today).Msg("already played")
		return tui.NewRenderer(out, game.DefaultTries).AlreadyPlayed()
	}

	engine := game.New(list, daily.SecretFor(list, today))
	sess := tui.NewSession(engine, in, out, rawModeFor(in))
	log.Debug().Str("session", sess.ID).Str("date", today).Int("words", list.Len()).Msg("starting session")
	if _, err := sess.Run(ctx); err != nil {
		log.Fatal().Err(err).Str("session", sess.ID).Msg("session failed")
	}
	return nil
}

// closeMarker releases the marker store. The gate has already decided, so a
// failure here is only logged.
func closeMarker(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close daily marker")
	}
}

// rawModeFor only touches the terminal when in is an interactive tty.
func rawModeFor(in io.Reader) tui.RawMode {
	f, ok := in.(*os.File)
	if !ok {
		return tui.NoRawMode{}
	}
	if fd := f.Fd(); isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return tui.TermRawMode{Fd: int(fd)}
	}
	return tui.NoRawMode{}
}
