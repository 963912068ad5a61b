// Command stepviz runs graph algorithms one step at a time, either in the
// terminal or behind the HTTP/WebSocket driver.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/logging"
	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/render"
	"github.com/katalvlaran/stepviz/server"
	"github.com/katalvlaran/stepviz/stepper"
)

var (
	// Display usage if true.
	showHelp = flag.Bool("help", false, "")

	// Log at debug level if true.
	runVerbose = flag.Bool("verbose", false, "")

	// TOML configuration file. Leave unset for defaults.
	configFile = flag.String("config", "", "")

	// HTTP address for serve; overrides [server].addr.
	httpAddress = flag.String("http", "", "")

	// Algorithm for run; overrides [graph].algorithm.
	algName = flag.String("alg", "", "")

	// Random graph size and seed; override [graph].nodes and [graph].seed.
	numNodes = flag.Int("nodes", 0, "")
	seed     = flag.Int64("seed", 0, "")

	// Generated topology and its shape; override [graph].topology, rows, cols and p.
	topology = flag.String("topology", "", "")
	gridRows = flag.Int("rows", 0, "")
	gridCols = flag.Int("cols", 0, "")
	edgeProb = flag.Float64("p", -1, "")

	// Edge list file used instead of a generated graph.
	edgesFile = flag.String("edges", "", "")

	// Start and end node; -1 keeps the configured value.
	startNode = flag.Int("start", -1, "")
	endNode   = flag.Int("end", -1, "")

	// Delay between steps for run. Zero steps as fast as possible.
	interval = flag.Duration("interval", 0, "")

	// Write the final frame as Graphviz DOT to this file.
	dotFile = flag.String("dot", "", "")
)

const helpMessage = `
stepviz runs BFS, DFS, Dijkstra, Prim and Kruskal one step at a time.

Usage: stepviz [options] <command>

      -config     =string   TOML configuration file.
      -http       =string   Address for HTTP communication (serve).
      -alg        =string   bfs, dfs, dijkstra, prim or kruskal (run).
      -topology   =string   random, path, cycle, star, wheel, complete, grid or sparse.
      -nodes      =number   Size of the generated graph.
      -rows       =number   Grid rows.
      -cols       =number   Grid columns.
      -p          =number   Edge probability of the sparse topology.
      -seed       =number   Seed of the generated graph.
      -edges      =string   Edge list file, one "u v [w]" per line.
      -start      =number   Start node.
      -end        =number   End node (dijkstra).
      -interval   =duration Delay between steps (run), e.g. 250ms.
      -dot        =string   Write the final frame as Graphviz DOT (run).
      -verbose    (flag)    Log at debug level.
  -h, -help       (flag)    Show help message

Commands:

  run             Step the algorithm to completion, printing every frame.
  serve           Serve the HTTP API and WebSocket frame stream.
  algorithms      List the supported algorithms.
  topologies      List the graph topologies.
  pseudocode <alg>
                  Print the pseudocode listing of an algorithm.
`

func usage() {
	fmt.Print(helpMessage)
}

func main() {
	flag.BoolVar(showHelp, "h", false, "Show help message")
	flag.Usage = usage
	flag.Parse()

	if *showHelp || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	var err error
	switch cmd := strings.ToLower(flag.Args()[0]); cmd {
	case "help":
		flag.Usage()
	case "algorithms":
		for _, a := range stepper.Algorithms() {
			fmt.Println(a)
		}
	case "topologies":
		for _, name := range builder.Topologies() {
			fmt.Println(name)
		}
	case "pseudocode":
		err = printPseudocode(flag.Args()[1:])
	case "run":
		err = run()
	case "serve":
		err = serve()
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "stepviz: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads -config, if any, and applies the command-line overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return cfg, err
		}
	}
	if *httpAddress != "" {
		cfg.Server.Addr = *httpAddress
	}
	if *algName != "" {
		cfg.Graph.Algorithm = *algName
	}
	if *numNodes > 0 {
		cfg.Graph.Nodes = *numNodes
	}
	if *seed != 0 {
		cfg.Graph.Seed = *seed
	}
	if *topology != "" {
		cfg.Graph.Topology = *topology
	}
	if *gridRows > 0 {
		cfg.Graph.Rows = *gridRows
	}
	if *gridCols > 0 {
		cfg.Graph.Cols = *gridCols
	}
	if *edgeProb >= 0 {
		cfg.Graph.P = *edgeProb
	}
	if *startNode >= 0 {
		cfg.Graph.Start = *startNode
	}
	if *endNode >= 0 {
		cfg.Graph.End = *endNode
	}
	if *runVerbose {
		cfg.Logging.Level = logging.DebugLevel
	}

	return cfg, cfg.Validate()
}

func printPseudocode(args []string) error {
	if len(args) == 0 {
		return errors.New("pseudocode: algorithm name required")
	}
	alg, err := stepper.ParseAlgorithm(args[0])
	if err != nil {
		return err
	}
	for i, line := range stepper.Listing(alg) {
		fmt.Printf("%2d %s\n", i, line)
	}

	return nil
}

func buildGraph(cfg config.Config) (*core.Graph, error) {
	if *edgesFile != "" {
		text, err := os.ReadFile(*edgesFile)
		if err != nil {
			return nil, err
		}
		return builder.BuildGraph(nil, builder.EdgeList(string(text)))
	}

	cons, err := cfg.Graph.Constructor()
	if err != nil {
		return nil, err
	}

	return builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(cfg.Graph.Seed)}, cons)
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := cfg.Logging.NewLogger()
	defer log.Shutdown()

	alg, err := stepper.ParseAlgorithm(cfg.Graph.Algorithm)
	if err != nil {
		return err
	}
	g, err := buildGraph(cfg)
	if err != nil {
		return err
	}
	nodes := g.Nodes()
	var opts []stepper.Option
	if alg.NeedsEnd() {
		opts = append(opts, stepper.WithEnd(core.NodeID(cfg.Graph.ResolveEnd(int(nodes[len(nodes)-1])))))
	}

	session := playback.New(
		playback.WithLogger(log),
		playback.WithHistoryLimit(0),
		playback.WithMinInterval(cfg.Playback.MinInterval.Duration),
	)
	defer session.Close()

	var (
		last     playback.Frame
		doneOnce sync.Once
		done     = make(chan struct{})
	)
	session.Subscribe(func(f playback.Frame) {
		last = f
		if err := render.Text(os.Stdout, f); err != nil {
			log.Errorf("render frame %d: %v", f.Seq, err)
		}
		fmt.Println()
		if f.Done {
			doneOnce.Do(func() { close(done) })
		}
	})

	began := time.Now()
	if _, err = session.Initialize(alg, g, core.NodeID(cfg.Graph.Start), opts...); err != nil {
		return err
	}
	if *interval > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err = session.Play(*interval); err != nil {
			return err
		}
		select {
		case <-done:
		case <-ctx.Done():
			_ = session.Pause()
			return ctx.Err()
		}
	} else {
		for !session.Done() {
			if _, err = session.Step(); err != nil {
				return err
			}
		}
	}

	final, _ := session.Frame()
	fmt.Printf("%v: %s steps over %s nodes and %s edges in %v\n", alg,
		humanize.Comma(int64(final.Step)), humanize.Comma(int64(g.NodeCount())),
		humanize.Comma(int64(g.EdgeCount())), time.Since(began).Round(time.Microsecond))
	if w := final.Snapshot.TreeWeight(); len(final.Snapshot.TreeEdges) > 0 {
		fmt.Printf("tree weight: %s\n", humanize.Comma(w))
	}

	if *dotFile != "" {
		return writeDOT(*dotFile, g, last)
	}

	return nil
}

func writeDOT(path string, g *core.Graph, f playback.Frame) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = render.DOT(fp, g, f.Snapshot); err != nil {
		fp.Close()
		return err
	}
	info, err := fp.Stat()
	if err != nil {
		fp.Close()
		return err
	}
	fmt.Printf("wrote %s (%s)\n", path, humanize.Bytes(uint64(info.Size())))

	return fp.Close()
}

func serve() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := cfg.Logging.NewLogger()
	defer log.Shutdown()

	srv, err := server.New(cfg, log)
	if err != nil {
		return err
	}
	defer srv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var lastStep int
	started := time.Now()
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error { return srv.ListenAndServe(ctx) })
	grp.Go(func() error {
		<-ctx.Done()
		log.Infof("Received shutdown, stopping playback")
		if st := srv.Session().State(); st != nil {
			lastStep = st.Steps()
		}
		srv.Session().Close()
		return nil
	})

	err = grp.Wait()
	log.Infof("Server up %s, last run at step %s",
		humanize.RelTime(started, time.Now(), "", ""), humanize.Comma(int64(lastStep)))

	return err
}
