package cli

import (
	"fmt"
	"strings"

	"github.com/kolah/asyncmodel/asyncapi"
	"github.com/kolah/asyncmodel/internal/render"
	"github.com/spf13/cobra"
)

func newServersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "servers",
		Short: "List servers",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().Bool("names", false, "Print server names only")
	cmd.RunE = runWith(func(s *session, _ []string) error {
		namesOnly, _ := cmd.Flags().GetBool("names")
		return runServers(s, namesOnly)
	})
	return cmd
}

func runServers(s *session, namesOnly bool) error {
	if namesOnly {
		return printNames(s, s.doc.ServerNames())
	}

	servers := s.doc.Servers()
	if s.structured() {
		out := asyncapi.NewObject()
		for name, srv := range servers.FromOldest() {
			out.Set(name, srv.JSON())
		}
		return render.Value(s.out, s.format(), out)
	}

	rows := make([][]string, 0, servers.Len())
	for name, srv := range servers.FromOldest() {
		rows = append(rows, []string{name, srv.URL(), srv.Protocol(), firstLine(srv.Description())})
	}
	return render.Table(s.out, []string{"NAME", "URL", "PROTOCOL", "DESCRIPTION"}, rows)
}

func newServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server NAME",
		Short: "Show a single server",
		Args:  cobra.ExactArgs(1),
		RunE:  runWith(runServer),
	}
}

func runServer(s *session, args []string) error {
	name := args[0]
	srv := s.doc.Server(name)
	if srv == nil {
		return fmt.Errorf("server not found: %s", name)
	}

	if s.structured() {
		return render.Value(s.out, s.format(), srv.JSON())
	}

	pairs := [][2]string{
		{"name", name},
		{"url", srv.URL()},
		{"protocol", srv.Protocol()},
		{"protocol-version", srv.ProtocolVersion()},
		{"description", firstLine(srv.Description())},
	}
	for varName, v := range srv.Variables().FromOldest() {
		pairs = append(pairs, [2]string{"variable " + varName, describeVariable(v)})
	}

	return s.fields(pairs, srv)
}

func describeVariable(v *asyncapi.ServerVariable) string {
	var parts []string
	if d := v.DefaultValue(); d != "" {
		parts = append(parts, "default="+d)
	}
	if values := v.AllowedValues(); len(values) > 0 {
		parts = append(parts, "enum="+strings.Join(values, "|"))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func printNames(s *session, names []string) error {
	if s.structured() {
		items := make([]any, len(names))
		for i, n := range names {
			items[i] = n
		}
		return render.Value(s.out, s.format(), items)
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(s.out, n); err != nil {
			return err
		}
	}
	return nil
}
