package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hex/engine"
	"hex/game"
	"hex/searcher"
)

func main() {
	debug := flag.Bool("debug", false, "log engine internals")
	sims := flag.Int("simulations", searcher.DefaultSimulations, "playouts per candidate move")
	goroutines := flag.Int("goroutines", 1, "workers per candidate evaluation")
	flag.Parse()

	level := zerolog.WarnLevel
	if *debug {
		level = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	in := bufio.NewScanner(os.Stdin)

	fmt.Println("-----------------------------------------------------------------------")
	fmt.Println("Welcome to the game of Hex. Enter -1 to quit game anytime.")
	size := askSize(in)
	fmt.Println("-----------------------------------------------------------------------")

	board, err := game.NewBoard(size)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("*****************************************")
	fmt.Println("Player 1, connects X from North to South")
	fmt.Println("Player 2, connects O from West to East")
	fmt.Println("*****************************************")
	fmt.Print(render(board))

	fmt.Println("You, Player 1, are assigned X, while the AI, Player 2, is assigned O")
	humanSide := game.P1
	if askYes(in, "You will go first. Would you like to go second instead? (Y/N) ") {
		humanSide = game.P2
		fmt.Println("Human, you have agreed to go second, you are now Player 2, sign O")
		fmt.Println("AI, is now Player 1, sign X")
	}
	fmt.Println("-----------------------------------------------------------------------")

	prompt := func(question string) (string, error) {
		fmt.Print(question)
		if !in.Scan() {
			return "", errors.New("input closed")
		}
		return in.Text(), nil
	}
	notify := func(message string) { fmt.Println(message) }

	evaluator := searcher.NewEvaluator(
		searcher.WithSimulations(*sims),
		searcher.WithGoroutines(*goroutines),
	)

	human := engine.NewHumanPlayer("Human", humanSide, prompt, notify)
	computer := engine.NewComputerPlayer("AI", humanSide.Opponent(), evaluator)

	var p1, p2 engine.Player = human, computer
	if humanSide == game.P2 {
		p1, p2 = computer, human
	}

	e := engine.NewLocalEngine(board, p1, p2)
	e.OnMove = func(b *game.Board, p engine.Player, cell game.Cell) {
		if _, ok := p.(*engine.ComputerPlayer); ok {
			fmt.Printf("AI, where would you like to place your move?: %s\n", engine.FormatCoord(cell))
		}
		fmt.Print(render(b))
	}

	winner, moves, err := e.Run()
	if err != nil {
		if errors.Is(err, engine.ErrQuit) {
			fmt.Println("You have quit the match.")
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if winner == humanSide {
		fmt.Println("\nYOU HAVE WON THE GAME.")
	} else {
		fmt.Println("AI has won")
	}
	fmt.Printf("Total move count: %d\n", len(moves))
}

func askSize(in *bufio.Scanner) int {
	fmt.Printf("What size board would you like to play with? Enter size (%d - %d): ", game.MinSize, game.MaxSize)
	for {
		if !in.Scan() {
			os.Exit(1)
		}
		token := strings.TrimSpace(in.Text())
		if token == "-1" {
			fmt.Println("You have quit the match.")
			os.Exit(0)
		}
		size, err := strconv.Atoi(token)
		if err == nil && size >= game.MinSize && size <= game.MaxSize {
			return size
		}
		fmt.Printf("\nPlease enter a valid size between %d and %d: ", game.MinSize, game.MaxSize)
	}
}

func askYes(in *bufio.Scanner, question string) bool {
	fmt.Print(question)
	if !in.Scan() {
		return false
	}
	answer := strings.ToUpper(strings.TrimSpace(in.Text()))
	return answer != "" && answer[0] == 'Y'
}
