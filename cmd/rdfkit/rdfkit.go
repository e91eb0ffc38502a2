// Command rdfkit is a small CLI over the rdfkit library: format
// conversion, BGP queries, and a read-only HTTP data-access server.
// Grounded on the teacher's cmd/cayley entrypoint and cmd/cayley/command
// cobra tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rdfkit/rdfkit/cmd/rdfkit/command"
	"github.com/rdfkit/rdfkit/rdflog"
	_ "github.com/rdfkit/rdfkit/rdflog/glog"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "rdfkit",
		Short: "rdfkit is an in-memory RDF data model, BGP matcher, and Turtle/N-Triples toolkit.",
	}
	root.PersistentFlags().IntP("v", "v", 0, "log verbosity")
	viper.BindPFlag("log.verbosity", root.PersistentFlags().Lookup("v"))
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		rdflog.SetV(viper.GetInt("log.verbosity"))
	}
	root.AddCommand(
		command.NewCatCommand(),
		command.NewQueryCommand(),
		command.NewHTTPCommand(),
	)
	return root
}

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		rdflog.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
