package command

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rdfkit/rdfkit/bgp"
	"github.com/rdfkit/rdfkit/rdfio"
	"github.com/rdfkit/rdfkit/term"
	"github.com/rdfkit/rdfkit/voc"
)

type resolver struct{}

func (resolver) ResolveTerm(token string) (string, error) {
	if full, ok := voc.FullIRI(token); ok {
		return full, nil
	}
	return "", fmt.Errorf("unresolvable vocabulary token %q", token)
}

// NewQueryCommand builds "rdfkit query", which runs a BGP (encoded as the
// bgp package's own pattern JSON, per SPEC_FULL.md's "internal/httpapi"
// wire format) against a graph file and prints the solutions, exercising
// both matcher strategies via --stream. Grounded on the teacher's "repl"
// command's query-execution path (cmd/cayley/command/repl.go), replacing
// its Gremlin/query-language dispatch with this module's own BGP builder.
func NewQueryCommand() *cobra.Command {
	var patternFile string
	var stream bool
	cmd := &cobra.Command{
		Use:   "query <graph-file>",
		Short: "Run a BGP pattern (JSON) against a graph file and print the solutions.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := rdfio.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %q: %w", args[0], err)
			}

			raw, err := os.ReadFile(patternFile)
			if err != nil {
				return fmt.Errorf("reading pattern file %q: %w", patternFile, err)
			}
			query, err := bgp.FromJSON(raw, resolver{})
			if err != nil {
				return fmt.Errorf("parsing pattern: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if !stream {
				for _, s := range bgp.Match(g, query) {
					if err := enc.Encode(renderSolution(s)); err != nil {
						return err
					}
				}
				return nil
			}

			cur := bgp.Stream(cmd.Context(), g, query)
			defer cur.Close()
			for cur.Next() {
				if err := enc.Encode(renderSolution(cur.Solution())); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&patternFile, "pattern", "", "path to a JSON-encoded BGP pattern file")
	cmd.MarkFlagRequired("pattern")
	cmd.Flags().BoolVar(&stream, "stream", false, "use the streaming matcher strategy instead of materializing")
	return cmd
}

func renderSolution(s bgp.Solution) map[string]string {
	out := make(map[string]string, len(s))
	for v, t := range s {
		if iri, ok := t.(term.IRI); ok {
			out[string(v)] = string(iri)
			continue
		}
		out[string(v)] = t.String()
	}
	return out
}
