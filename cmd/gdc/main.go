package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/quanb-duy/gooddata-go-sdk/cmd/gdc/commands"
)

// Version info for the gdc tool
// These variables are injected at build time via ldflags
var (
	// Version is the current version of the gdc tool
	Version = "dev"

	// BuildTime is the time at which the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit that was compiled
	GitCommit = "unknown"
)

func main() {
	// A local .env may carry GOODDATA_HOST and GOODDATA_API_TOKEN
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "init":
		err = commands.InitCommand()
	case "validate":
		err = commands.ValidateCommand(os.Args[2:])
	case "chat":
		err = commands.ChatCommand(os.Args[2:])
	case "channels":
		err = commands.ChannelsCommand(os.Args[2:])
	case "--version", "-v", "version":
		log.Printf("gdc %s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
		return
	case "--help", "-h", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	_, _ = fmt.Fprintln(os.Stdout, "GoodData Cloud CLI")
	_, _ = fmt.Fprintln(os.Stdout)
	_, _ = fmt.Fprintln(os.Stdout, "Usage:")
	_, _ = fmt.Fprintln(os.Stdout, "  gdc <command> [arguments]")
	_, _ = fmt.Fprintln(os.Stdout)
	_, _ = fmt.Fprintln(os.Stdout, "Commands:")
	_, _ = fmt.Fprintln(os.Stdout, "  init          Create a profiles.yaml template")
	_, _ = fmt.Fprintln(os.Stdout, "  validate      Validate a JSON document against a model schema")
	_, _ = fmt.Fprintln(os.Stdout, "  chat          Ask the AI assistant a question")
	_, _ = fmt.Fprintln(os.Stdout, "  channels      List notification channels")
	_, _ = fmt.Fprintln(os.Stdout)
	_, _ = fmt.Fprintln(os.Stdout, "Use 'gdc <command> --help' for more information about a command.")
}
