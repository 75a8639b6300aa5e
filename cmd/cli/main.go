package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"glory-to-rome-backend/internal/game"
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/logger"
)

const usage = `Glory to Rome replay tool

Usage:
  gtr new --players N [--seed S] [--out FILE]
  gtr apply SAVE ACTIONS [--out FILE]
  gtr show SAVE

new    creates a fresh game and writes its save document
apply  replays a save document, then applies a file of newline-delimited
       JSON actions; exits non-zero at the first rejected action
show   renders the save document's game state
`

func main() {
	quiet := "error"
	if err := logger.Init(&quiet); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "new":
		err = cmdNew(os.Args[2:])
	case "apply":
		err = cmdApply(os.Args[2:])
	case "show":
		err = cmdShow(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func cmdNew(args []string) error {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	players := fs.Int("players", 2, "number of players (2-5)")
	seed := fs.Int64("seed", 1, "library shuffle seed")
	out := fs.String("out", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := game.NewGame(game.DefaultSettings(*players, *seed))
	if err != nil {
		return err
	}
	return writeSave(g, *out)
}

func cmdApply(args []string) error {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	out := fs.String("out", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("apply needs SAVE and ACTIONS files")
	}

	g, err := loadSave(rest[0])
	if err != nil {
		return err
	}

	actionsFile, err := os.Open(rest[1])
	if err != nil {
		return err
	}
	defer actionsFile.Close()

	scanner := bufio.NewScanner(actionsFile)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var a action.GameAction
		if err := json.Unmarshal([]byte(text), &a); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := g.Handle(a); err != nil {
			return fmt.Errorf("line %d: action rejected: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return writeSave(g, *out)
}

func cmdShow(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("show needs a SAVE file")
	}
	g, err := loadSave(args[0])
	if err != nil {
		return err
	}
	fmt.Print(renderState(g))
	return nil
}

func loadSave(path string) (*game.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return game.Load(data)
}

func writeSave(g *game.Game, out string) error {
	data, err := g.Save()
	if err != nil {
		return err
	}
	if out == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(out, data, 0o644)
}
