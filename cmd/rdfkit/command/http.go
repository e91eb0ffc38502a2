package command

import (
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rdfkit/rdfkit/graph"
	"github.com/rdfkit/rdfkit/internal/httpapi"
	"github.com/rdfkit/rdfkit/rdfio"
	"github.com/rdfkit/rdfkit/rdflog"
)

const keyListenHost = "http.host"

var log = rdflog.Component("rdfkit")

// NewHTTPCommand builds "rdfkit http", serving the read-only httpapi
// Dataset endpoint. Grounded on the teacher's
// cmd/cayley/command/http.go: a cobra command binding a --host flag
// through viper and handing a built handle to the HTTP layer.
func NewHTTPCommand() *cobra.Command {
	var graphFiles []string
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve a read-only HTTP data-access API over one or more RDF files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := graph.NewDataset(nil)
			for _, path := range graphFiles {
				g, err := rdfio.ReadFile(path)
				if err != nil {
					return err
				}
				ds = ds.Add(g)
			}

			api := httpapi.New(ds)
			host := viper.GetString(keyListenHost)
			// Warningf, not Infof: an operator starting a server needs to see
			// where it's listening even at the default verbosity.
			log.Warningf("listening on %s", host)
			return http.ListenAndServe(host, api.Router())
		},
	}
	cmd.Flags().StringSliceVar(&graphFiles, "graph", nil, "RDF file to load into the served dataset (repeatable)")
	cmd.Flags().String("host", "127.0.0.1:8064", "host:port to listen on")
	viper.BindPFlag(keyListenHost, cmd.Flags().Lookup("host"))
	return cmd
}
