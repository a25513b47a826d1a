// Command chesslike inspects board variants: square listings, legal moves,
// perft counts, random playouts, diagrams and saved snapshots.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hailam/chesslike/internal/config"
	"github.com/hailam/chesslike/internal/render"
	"github.com/hailam/chesslike/internal/storage"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	configPath = flag.String("config", "", "YAML config file")
)

const usage = `usage: chesslike [-config file] [-cpuprofile file] <command> [flags] [args]

commands:
  squares                 list every square with its index
  moves   [-square sq]    legal moves of the side to move or of one piece
  perft   [-depth n] [-divide]
  playout [-plies n]      play random legal moves
  render  [-format text|svg|png] [-o file]
  save    NAME            store the position
  load    NAME            print a stored position
  delete  NAME            remove a stored position
  list                    list stored positions

position flags (all commands but list and delete):
  -variant toy|standard  -fen placement  -from NAME  -moves "b1c3 c4b2"  -black
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	lvl, _ := cfg.Level()
	zerolog.SetGlobalLevel(lvl)

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
		log.Info().Str("path", profilePath).Msg("CPU profiling enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &app{cfg: cfg, out: os.Stdout}
	defer app.close()

	if err := app.run(ctx, flag.Args()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Error().Err(err).Msg("chesslike")
		app.close()
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

type app struct {
	cfg   *config.Config
	out   io.Writer
	store *storage.Store
}

// openStore opens the snapshot database on first use.
func (a *app) openStore() (*storage.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	dir, err := storage.GetDatabaseDir(a.cfg.DataDir)
	if err != nil {
		return nil, err
	}
	st, err := storage.Open(dir)
	if err != nil {
		return nil, err
	}
	a.store = st
	return st, nil
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			log.Error().Err(err).Msg("close store")
		}
		a.store = nil
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		flag.Usage()
		return flag.ErrHelp
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "list":
		return a.list()
	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("delete needs one snapshot name")
		}
		st, err := a.openStore()
		if err != nil {
			return err
		}
		return st.Delete(args[0])
	}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	variant := fs.String("variant", a.cfg.Variant, "board variant")
	var s setup
	fs.StringVar(&s.fen, "fen", "", "starting piece placement")
	fs.StringVar(&s.from, "from", "", "start from a stored snapshot")
	fs.StringVar(&s.moves, "moves", "", "moves to play first, e.g. \"b1c3 c4b2\"")
	fs.BoolVar(&s.black, "black", false, "black moves first")

	var (
		square  = fs.String("square", "", "only moves of the piece on this square")
		depth   = fs.Int("depth", 3, "perft depth")
		divide  = fs.Bool("divide", false, "print the count below each root move")
		workers = fs.Int("workers", a.cfg.Workers, "parallel root moves for -divide (0 = one per move)")
		plies   = fs.Int("plies", 40, "playout length limit")
		format  = fs.String("format", "text", "render format: text, svg or png")
		outPath = fs.String("o", "", "render output file (default stdout)")
		asYAML  = fs.Bool("yaml", false, "print loaded snapshots as YAML")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := lookupVariant(*variant)
	if err != nil {
		return err
	}
	if cmd == "load" {
		if fs.NArg() != 1 {
			return fmt.Errorf("load needs one snapshot name")
		}
		s.from = fs.Arg(0)
	}
	if err := r.setup(s, a.openStore); err != nil {
		return err
	}
	log.Debug().Str("variant", r.name()).Str("command", cmd).Msg("position-ready")

	switch cmd {
	case "squares":
		r.squares(a.out)
		return nil
	case "moves":
		return r.moves(a.out, *square)
	case "perft":
		return r.perft(ctx, a.out, *depth, *workers, *divide)
	case "playout":
		return r.playout(a.out, *plies)
	case "render":
		return a.render(r, *format, *outPath)
	case "save":
		if fs.NArg() != 1 {
			return fmt.Errorf("save needs one snapshot name")
		}
		st, err := a.openStore()
		if err != nil {
			return err
		}
		if err := r.save(st, fs.Arg(0)); err != nil {
			return err
		}
		log.Info().Str("name", fs.Arg(0)).Str("variant", r.name()).Msg("saved")
		return nil
	case "load":
		if *asYAML {
			data, err := r.yaml()
			if err != nil {
				return err
			}
			_, err = a.out.Write(data)
			return err
		}
		fp, err := r.fingerprint()
		if err != nil {
			return err
		}
		fmt.Fprint(a.out, r.diagram().Text())
		fmt.Fprintf(a.out, "fingerprint %016x\n", fp)
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (a *app) list() error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	names, err := st.Names()
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Fprintln(a.out, n)
	}
	return nil
}

func (a *app) render(r runner, format, outPath string) error {
	w := a.out
	if outPath != "" {
		if format == "text" {
			format = strings.TrimPrefix(filepath.Ext(outPath), ".")
		}
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	opts := render.DefaultOptions()
	opts.SquareSize = a.cfg.SquareSize
	d := r.diagram()

	switch format {
	case "text", "txt", "":
		_, err := io.WriteString(w, d.Text())
		return err
	case "svg":
		return d.SVG(w, opts)
	case "png":
		return d.PNG(w, opts)
	}
	return fmt.Errorf("unknown render format %q", format)
}
