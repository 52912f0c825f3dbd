package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"chessbot/bots"
	"chessbot/config"
	"chessbot/engine"
	"chessbot/position"
	"chessbot/server"

	"github.com/notnil/chess"
)

func main() {
	var (
		configPath = flag.String("config", "", "JSON config file")
		fen        = flag.String("fen", "", "position to start from (default: the standard start)")
		pgnPath    = flag.String("pgn", "", "PGN file; play starts from its final position")
		depth      = flag.Int("depth", 0, "search depth in plies (overrides config)")
		backend    = flag.String("backend", "", "rules backend: notnil or dragon (overrides config)")
		selfplay   = flag.Int("selfplay", 0, "play this many plies between -white and -black")
		white      = flag.String("white", "minimax", "white bot for -selfplay: minimax, dragon, newborn or random")
		black      = flag.String("black", "minimax", "black bot for -selfplay")
		play       = flag.String("play", "", "play against the engine as white or black")
		httpAddr   = flag.String("http", "", "serve the HTTP API on this address")
		stats      = flag.Bool("stats", false, "log search statistics")
		seed       = flag.Int64("seed", 0, "random bot seed (default: from the clock)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[chessbot] %v", err)
		}
		cfg = loaded
	}
	if *depth != 0 {
		cfg.Depth = *depth
		if cfg.MaxDepth < cfg.Depth {
			cfg.MaxDepth = cfg.Depth
		}
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *httpAddr != "" {
		cfg.Addr = *httpAddr
	}
	if *stats {
		cfg.LogSearchStats = true
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[chessbot] %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *httpAddr != "" {
		if err := server.New(cfg).Run(ctx); err != nil {
			log.Fatalf("[chessbot] server: %v", err)
		}
		return
	}

	game, err := loadGame(*fen, *pgnPath)
	if err != nil {
		log.Fatalf("[chessbot] %v", err)
	}

	switch {
	case *play != "":
		err = playHuman(ctx, game, cfg, *play, os.Stdin, os.Stdout)
	case *selfplay > 0:
		err = selfPlay(ctx, game, cfg, *white, *black, *selfplay)
	default:
		err = analyse(game, cfg)
	}
	if err != nil {
		log.Fatalf("[chessbot] %v", err)
	}
}

func loadGame(fen, pgnPath string) (*chess.Game, error) {
	if pgnPath == "" {
		return position.NewGame(fen)
	}
	if fen != "" {
		return nil, errors.New("-fen and -pgn are mutually exclusive")
	}
	f, err := os.Open(pgnPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	opt, err := chess.PGN(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", pgnPath, err)
	}
	return chess.NewGame(opt), nil
}

func analyse(game *chess.Game, cfg config.Config) error {
	analyzer, err := bots.NewAnalyzer(cfg.Backend, cfg.Depth, cfg.LogSearchStats)
	if err != nil {
		return err
	}
	fmt.Println(game.Position().Board().Draw())
	fmt.Printf("fen:  %s\n", game.Position())
	fmt.Printf("eval: %v\n", bots.Evaluate(game))

	_, rep, err := analyzer.Analyze(game)
	if errors.Is(err, engine.ErrNoMove) {
		fmt.Printf("game over: %s by %v\n", game.Outcome(), game.Method())
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("best: %s (score %v at depth %d, %d nodes)\n", rep.Move, float64(rep.Score), rep.Depth, rep.Stats.Nodes)
	return nil
}

func selfPlay(ctx context.Context, game *chess.Game, cfg config.Config, whiteName, blackName string, plies int) error {
	whiteBot, err := bots.New(whiteName, cfg)
	if err != nil {
		return err
	}
	blackCfg := cfg
	if blackCfg.Seed != 0 {
		blackCfg.Seed++
	}
	blackBot, err := bots.New(blackName, blackCfg)
	if err != nil {
		return err
	}
	log.Printf("[chessbot] %s vs %s, up to %d plies", whiteBot.Name(), blackBot.Name(), plies)

	err = bots.Play(ctx, game, whiteBot, blackBot, plies, func(p bots.Ply) {
		fmt.Printf("%3d. %-5s %-6s eval %v\n", p.Number, p.Color, p.Move, float64(p.Eval))
	})
	fmt.Println(game.Position().Board().Draw())
	fmt.Printf("result: %s (%v)\n", game.Outcome(), game.Method())
	fmt.Println(game.String())
	return err
}
