package cli

import (
	"fmt"
	"strings"

	"github.com/kolah/asyncmodel/asyncapi"
	"github.com/kolah/asyncmodel/internal/render"
	"github.com/spf13/cobra"
)

func newExtensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extensions [SECTION]",
		Short: "List x- extensions of the document or a section",
		Long: `List x- extensions of the document root, or of a section:

  info            the info object
  server:NAME     a server
  channel:NAME    a channel`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWith(runExtensions),
	}
}

func runExtensions(s *session, args []string) error {
	section := ""
	if len(args) > 0 {
		section = args[0]
	}

	m, err := resolveSection(s.doc, section)
	if err != nil {
		return err
	}

	exts := m.Extensions()
	if s.structured() {
		return render.Value(s.out, s.format(), exts)
	}

	rows := make([][]string, 0, exts.Len())
	for k, v := range exts.FromOldest() {
		rows = append(rows, []string{k, render.Inline(v)})
	}
	return render.Table(s.out, []string{"KEY", "VALUE"}, rows)
}

// resolveSection maps a section selector onto the model it names.
func resolveSection(doc *asyncapi.Document, section string) (asyncapi.Model, error) {
	kind, name, _ := strings.Cut(section, ":")

	switch kind {
	case "":
		return doc, nil
	case "info":
		if info := doc.Info(); info != nil {
			return info, nil
		}
		return nil, errNoInfo
	case "server":
		if srv := doc.Server(name); srv != nil {
			return srv, nil
		}
		return nil, fmt.Errorf("server not found: %s", name)
	case "channel":
		if ch := doc.Channel(name); ch != nil {
			return ch, nil
		}
		return nil, fmt.Errorf("channel not found: %s", name)
	default:
		return nil, fmt.Errorf("unknown section: %s (valid: info, server:NAME, channel:NAME)", section)
	}
}
