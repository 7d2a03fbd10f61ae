package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/quanb-duy/gooddata-go-sdk/internal/schema"
)

// ValidateCommand checks a JSON document against a named model schema
func ValidateCommand(args []string) error {
	flagSet := flag.NewFlagSet("validate", flag.ExitOnError)
	modelName := flagSet.String("model", "", "Model name to validate against (see 'gdc validate -list')")
	list := flagSet.Bool("list", false, "List known model names and exit")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if *list {
		_, _ = fmt.Fprintln(os.Stdout, strings.Join(schema.Names(), "\n"))
		return nil
	}

	if *modelName == "" {
		return errors.New("-model is required")
	}
	if flagSet.NArg() != 1 {
		return errors.New("usage: gdc validate -model <name> <file.json>")
	}

	desc, ok := schema.Lookup(*modelName)
	if !ok {
		return fmt.Errorf("unknown model %q (see 'gdc validate -list')", *modelName)
	}

	data, err := os.ReadFile(flagSet.Arg(0))
	if err != nil {
		return fmt.Errorf("error reading document: %w", err)
	}

	result := schema.Validate(data, desc)
	if !result.Valid {
		for _, verr := range result.Errors {
			_, _ = fmt.Fprintf(os.Stderr, "✗ %s: %s [%s]\n", verr.Field, verr.Message, verr.Code)
		}
		return fmt.Errorf("document does not conform to %s", *modelName)
	}

	// Cross-check against the bundled JSON Schema when one exists
	if _, ok := schema.EmbeddedSchemas[*modelName]; ok {
		if err := schema.ValidateDocument(*modelName, data); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "✓ Document is a valid %s\n", *modelName)
	return nil
}
