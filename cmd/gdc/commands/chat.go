package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/quanb-duy/gooddata-go-sdk/pkg/client"
	"github.com/quanb-duy/gooddata-go-sdk/pkg/model"
)

// ChatCommand sends a question to the workspace AI assistant
func ChatCommand(args []string) error {
	flagSet := flag.NewFlagSet("chat", flag.ExitOnError)
	workspaceID := flagSet.String("workspace", "", "Workspace ID (required)")
	interactionID := flagSet.String("interaction", "", "Chat history interaction ID to continue from")
	timeout := flagSet.Duration("timeout", 2*time.Minute, "Request timeout")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if *workspaceID == "" {
		return errors.New("-workspace is required")
	}
	if flagSet.NArg() == 0 {
		return errors.New("usage: gdc chat -workspace <id> <question>")
	}
	question := strings.Join(flagSet.Args(), " ")

	profile, err := client.ResolveProfile()
	if err != nil {
		return err
	}
	c, err := client.NewFromProfile(profile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := c.AIChat(ctx, *workspaceID, &model.ChatRequest{
		Question:                 question,
		ChatHistoryInteractionID: *interactionID,
	})
	if err != nil {
		return err
	}

	if result.TextResponse != "" {
		_, _ = fmt.Fprintln(os.Stdout, result.TextResponse)
	}
	if result.Routing != nil {
		_, _ = fmt.Fprintf(os.Stdout, "\nRouted to: %s\n", result.Routing.UseCase)
	}
	if result.FoundObjects != nil {
		for _, obj := range result.FoundObjects.Objects {
			_, _ = fmt.Fprintf(os.Stdout, "  %s  %s (%s)\n", obj.ID, obj.Title, obj.Type)
		}
	}
	if result.CreatedVisualizations != nil {
		for _, vis := range result.CreatedVisualizations.Objects {
			_, _ = fmt.Fprintf(os.Stdout, "  %s  %s [%s]\n", vis.ID, vis.Title, vis.VisualizationType)
		}
	}
	if result.ChatHistoryInteractionID != "" {
		_, _ = fmt.Fprintf(os.Stdout, "\nContinue with: gdc chat -workspace %s -interaction %s <question>\n",
			*workspaceID, result.ChatHistoryInteractionID)
	}

	return nil
}
