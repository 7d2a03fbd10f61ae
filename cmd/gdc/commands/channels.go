package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/quanb-duy/gooddata-go-sdk/pkg/client"
	"github.com/quanb-duy/gooddata-go-sdk/pkg/model"
)

// ChannelsCommand lists the organization's notification channels
func ChannelsCommand(args []string) error {
	flagSet := flag.NewFlagSet("channels", flag.ExitOnError)
	timeout := flagSet.Duration("timeout", 30*time.Second, "Request timeout")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

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

	channels, err := c.ListNotificationChannels(ctx)
	if err != nil {
		return err
	}

	if len(channels) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No notification channels found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tDESTINATION\tDETAIL")
	for _, channel := range channels {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			channel.ID, channel.Name, channel.DestinationType, channelDetail(channel))
	}
	return w.Flush()
}

// channelDetail summarizes the destination in one column
func channelDetail(channel model.NotificationChannel) string {
	dest, err := channel.DecodeDestination()
	if err != nil || dest == nil {
		return ""
	}
	switch d := dest.(type) {
	case *model.SmtpDestination:
		return fmt.Sprintf("%s:%d", d.Host, d.Port)
	case *model.WebhookDestination:
		return d.URL
	default:
		return ""
	}
}
