// biolensctl is a CLI for exercising the BioLens backend: upload study
// PDFs, ask questions, inspect and clear the chunk collection, and run
// image analysis without the graphical viewer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/omaressa123/RAG-BioL/internal/backend"
	"github.com/omaressa123/RAG-BioL/internal/report"
)

const defaultBackend = "http://127.0.0.1:5000"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "upload":
		cmdUpload(args)
	case "ask":
		cmdAsk(args)
	case "stats":
		cmdStats(args)
	case "clear":
		cmdClear(args)
	case "analyze":
		cmdAnalyze(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`biolensctl - BioLens backend utility

Usage:
  biolensctl <command> [options]

Commands:
  upload <file.pdf>                Upload and index a PDF
  ask <question>                   Ask a question against the index
  stats                            Show collection statistics
  clear                            Delete all indexed chunks
  analyze <image> [image...]       Classify organelle images

Options (all commands):
  -backend <url>                   Backend base URL (default http://127.0.0.1:5000)

Examples:
  biolensctl upload chapter3.pdf
  biolensctl ask "what does the mitochondria do"
  biolensctl ask -type question -n 3 "photosynthesis"
  biolensctl analyze mitochondria_cell.png`)
}

func newClient(fs *flag.FlagSet) (*backend.Client, context.Context, context.CancelFunc) {
	base := fs.Lookup("backend").Value.String()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	return backend.New(base, 60*time.Second), ctx, cancel
}

func backendFlag(fs *flag.FlagSet) {
	fs.String("backend", defaultBackend, "Backend base URL")
}

func fail(err error) {
	var verr *backend.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "Rejected: %s\n", verr.Reason)
		os.Exit(2)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdUpload(args []string) {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	backendFlag(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: biolensctl upload <file.pdf>")
		os.Exit(1)
	}

	client, ctx, cancel := newClient(fs)
	defer cancel()

	result, err := client.UploadPDF(ctx, fs.Arg(0))
	if err != nil {
		fail(err)
	}

	fmt.Println(result.Message)
	fmt.Print(report.FormatUploadSummary(result.ChunksCreated, result.ChunkTypes))
}

func cmdAsk(args []string) {
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	backendFlag(fs)
	chunkType := fs.String("type", "", "Restrict to a chunk type (concept, question, application)")
	nResults := fs.Int("n", 5, "Number of results")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: biolensctl ask [-type t] [-n count] <question>")
		os.Exit(1)
	}

	client, ctx, cancel := newClient(fs)
	defer cancel()

	result, err := client.Ask(ctx, backend.AskRequest{
		Question:  fs.Arg(0),
		ChunkType: *chunkType,
		NResults:  *nResults,
	})
	if err != nil {
		fail(err)
	}

	fmt.Print(report.FormatAnswers(report.AnswerCards(result)))
}

func cmdStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	backendFlag(fs)
	fs.Parse(args)

	client, ctx, cancel := newClient(fs)
	defer cancel()

	result, err := client.Stats(ctx)
	if err != nil {
		fail(err)
	}

	fmt.Print(report.FormatStats(report.BuildStatsView(result)))
}

func cmdClear(args []string) {
	fs := flag.NewFlagSet("clear", flag.ExitOnError)
	backendFlag(fs)
	fs.Parse(args)

	client, ctx, cancel := newClient(fs)
	defer cancel()

	if err := client.Clear(ctx); err != nil {
		fail(err)
	}
	fmt.Println("Collection cleared.")
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	backendFlag(fs)
	htmlPath := fs.String("html", "", "Also write an HTML report to this path")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: biolensctl analyze [-html out.html] <image> [image...]")
		os.Exit(1)
	}

	client, ctx, cancel := newClient(fs)
	defer cancel()

	results, err := client.AnalyzeImages(ctx, fs.Args())
	if err != nil {
		fail(err)
	}

	cards := report.AnalysisCards(results)
	for _, c := range cards {
		fmt.Printf("%s: %s (%s)\n", c.Filename, c.Name, c.Confidence)
		fmt.Printf("  %s\n", c.Function)
	}

	if *htmlPath != "" {
		if err := report.SaveAnalysisHTML(*htmlPath, cards); err != nil {
			fail(err)
		}
		fmt.Printf("Report written to %s\n", *htmlPath)
	}
}
