package cli

import (
	"errors"
	"strings"

	"github.com/kolah/asyncmodel/internal/render"
	"github.com/spf13/cobra"
)

var errNoInfo = errors.New("document has no info section")

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show document metadata",
		Args:  cobra.NoArgs,
		RunE:  runWith(runInfo),
	}
}

func runInfo(s *session, _ []string) error {
	info := s.doc.Info()
	if info == nil {
		return errNoInfo
	}

	if s.structured() {
		return render.Value(s.out, s.format(), info.JSON())
	}

	pairs := [][2]string{
		{"id", s.doc.ID()},
		{"asyncapi", s.doc.Version()},
		{"title", info.Title()},
		{"version", info.Version()},
		{"description", firstLine(info.Description())},
		{"terms", info.TermsOfService()},
		{"content-type", s.doc.DefaultContentType()},
	}
	if l := info.License(); l != nil {
		pairs = append(pairs, [2]string{"license", joinNonEmpty(l.Name(), l.URL())})
	}
	if c := info.Contact(); c != nil {
		pairs = append(pairs, [2]string{"contact", joinNonEmpty(c.Name(), c.Email(), c.URL())})
	}

	return s.fields(pairs, info)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
