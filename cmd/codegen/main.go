package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/ripplefn/ripple/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityCountKey = "count"
	outputKey     = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the fixed-arity combinators",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Output file",
				Value: "arity/arity.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for arity started")
	defer func() {
		log.Printf("Codegen for arity finished in %v", time.Since(start))
	}()

	arityCount := cmd.Uint(arityCountKey)
	out := cmd.String(outputKey)

	contents := templates.ArityGen(int(arityCount))
	return os.WriteFile(out, []byte(contents), 0644)
}
