package cli

import (
	"fmt"
	"strconv"

	"github.com/kolah/asyncmodel/asyncapi"
	"github.com/kolah/asyncmodel/internal/render"
	"github.com/spf13/cobra"
)

func newChannelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channels",
		Short: "List channels",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().Bool("names", false, "Print channel names only")
	cmd.RunE = runWith(func(s *session, _ []string) error {
		namesOnly, _ := cmd.Flags().GetBool("names")
		return runChannels(s, namesOnly)
	})
	return cmd
}

func runChannels(s *session, namesOnly bool) error {
	if namesOnly {
		return printNames(s, s.doc.ChannelNames())
	}

	channels := s.doc.Channels()
	if s.structured() {
		out := asyncapi.NewObject()
		for name, ch := range channels.FromOldest() {
			out.Set(name, ch.JSON())
		}
		return render.Value(s.out, s.format(), out)
	}

	rows := make([][]string, 0, channels.Len())
	for name, ch := range channels.FromOldest() {
		rows = append(rows, []string{
			name,
			strconv.FormatBool(ch.HasPublish()),
			strconv.FormatBool(ch.HasSubscribe()),
			firstLine(ch.Description()),
		})
	}
	return render.Table(s.out, []string{"NAME", "PUBLISH", "SUBSCRIBE", "DESCRIPTION"}, rows)
}

func newChannelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "channel NAME",
		Short: "Show a single channel",
		Args:  cobra.ExactArgs(1),
		RunE:  runWith(runChannel),
	}
}

func runChannel(s *session, args []string) error {
	name := args[0]
	ch := s.doc.Channel(name)
	if ch == nil {
		return fmt.Errorf("channel not found: %s", name)
	}

	if s.structured() {
		return render.Value(s.out, s.format(), ch.JSON())
	}

	pairs := [][2]string{
		{"name", name},
		{"description", firstLine(ch.Description())},
		{"publish", strconv.FormatBool(ch.HasPublish())},
		{"subscribe", strconv.FormatBool(ch.HasSubscribe())},
	}
	return s.fields(pairs, ch)
}
