// Command tictactoe plays single player games against the computer
// opponent in the terminal, or runs the difficulty calibration
// experiment batch.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tictactoe/ai"
	"tictactoe/experiments"
	"tictactoe/game"
)

func main() {
	difficultyName := flag.String("difficulty", "medium", "AI difficulty: none, easy, medium, hard or unbeatable")
	runExperiment := flag.Bool("experiment", false, "run the difficulty calibration experiment instead of an interactive game")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	if *runExperiment {
		if err := experiments.RunDifficultyExperiment(); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	difficulty, err := difficultyFromName(*difficultyName)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid difficulty")
	}

	playInteractive(difficulty)
}

func difficultyFromName(name string) (ai.Difficulty, error) {
	switch strings.ToLower(name) {
	case "none":
		return ai.None, nil
	case "easy":
		return ai.Easy, nil
	case "medium":
		return ai.Medium, nil
	case "hard":
		return ai.Hard, nil
	case "unbeatable":
		return ai.Unbeatable, nil
	default:
		return ai.Difficulty{}, fmt.Errorf("unknown difficulty %q", name)
	}
}

// playInteractive runs games between the human (always X) and the AI
// opponent (always O) until the human stops. The game alternates who
// moves first each round.
func playInteractive(difficulty ai.Difficulty) {
	output := termenv.NewOutput(os.Stdout)
	opponent := ai.NewOpponent(difficulty)
	reader := bufio.NewReader(os.Stdin)
	g := game.NewGame()

	fmt.Printf("You are X, the %s computer opponent is O.\n", difficulty)

	for {
		state := g.State()
		switch state.Status {
		case game.PlayerXMove:
			fmt.Println(renderBoard(output, g.Board(), nil))
			humanMove(g, reader)
		case game.PlayerOMove:
			position, ok := opponent.GetMove(g)
			if !ok {
				panic("opponent returned no move for a game that is not over")
			}
			if _, err := g.DoMove(position); err != nil {
				panic(fmt.Sprintf("opponent chose an illegal move: %v", err))
			}
			fmt.Printf("The computer marks (%d,%d).\n", position.Row, position.Column)
		default:
			fmt.Println(renderBoard(output, g.Board(), state.WinPositions))
			switch state.Status {
			case game.PlayerXWin:
				fmt.Println("You win!")
			case game.PlayerOWin:
				fmt.Println("The computer wins.")
			case game.CatsGame:
				fmt.Println("Cat's game, nobody wins.")
			}
			if !askPlayAgain(reader) {
				return
			}
			g.StartNextGame()
		}
	}
}

// humanMove reads positions from the player until one is accepted.
func humanMove(g *game.Game, reader *bufio.Reader) {
	for {
		fmt.Print("Your move (row column, e.g. 0 2): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			os.Exit(0)
		}

		var position game.Position
		if _, err := fmt.Sscanf(strings.TrimSpace(input), "%d %d",
			&position.Row, &position.Column); err != nil {
			fmt.Println("Please enter two numbers separated by a space.")
			continue
		}

		if _, err := g.DoMove(position); err != nil {
			fmt.Println(moveErrorMessage(err))
			continue
		}
		return
	}
}

// moveErrorMessage turns the state machine's failures into a player
// facing message.
func moveErrorMessage(err error) string {
	var owned *game.PositionOwnedError
	var invalid *game.InvalidPositionError
	switch {
	case errors.Is(err, game.ErrGameOver):
		return "The game is already over."
	case errors.As(err, &owned):
		return fmt.Sprintf("Position (%d,%d) is already taken by %s.",
			owned.Position.Row, owned.Position.Column, owned.Owner)
	case errors.As(err, &invalid):
		return fmt.Sprintf("Position (%d,%d) is not on the board.",
			invalid.Position.Row, invalid.Position.Column)
	default:
		return err.Error()
	}
}

func askPlayAgain(reader *bufio.Reader) bool {
	fmt.Print("Play again? (y/n): ")
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(input)), "y")
}

// renderBoard draws the board with colored marks. Cells that completed
// a win are highlighted.
func renderBoard(output *termenv.Output, board *game.Board, winPositions []game.Position) string {
	winning := make(map[game.Position]struct{}, len(winPositions))
	for _, p := range winPositions {
		winning[p] = struct{}{}
	}

	size := board.Size()
	var sb strings.Builder
	divider := strings.Repeat("+---", size.Columns) + "+\n"
	for row := 0; row < size.Rows; row++ {
		sb.WriteString(divider)
		for column := 0; column < size.Columns; column++ {
			p := game.Position{Row: row, Column: column}
			owner, _ := board.Get(p)

			mark := output.String(owner.String())
			switch owner {
			case game.PlayerX:
				mark = mark.Foreground(output.Color("1"))
			case game.PlayerO:
				mark = mark.Foreground(output.Color("6"))
			}
			if _, ok := winning[p]; ok {
				mark = mark.Bold().Underline()
			}
			fmt.Fprintf(&sb, "| %s ", mark)
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(divider)
	return sb.String()
}
