// Command bungraph loads one or more JSON-encoded bidirected graphs and
// reports the balanced bundles found in each.
package main

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bungraph/bundle"
	"github.com/katalvlaran/bungraph/handle"
	"github.com/katalvlaran/bungraph/loader"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("bungraph: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bungraph <graph.json>...",
		Short: "Find balanced bundles in bidirected genome variation graphs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, path := range args {
				if err := reportFile(path); err != nil {
					log.Printf("bungraph: %s: %v", path, err)
					failed = true
					continue
				}
			}
			if failed {
				os.Exit(1)
			}

			return nil
		},
	}
}

func reportFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	g, err := loader.LoadJSON(f)
	if err != nil {
		return err
	}

	bundles := bundle.FindAllBundles(g)
	log.Printf("%s: %d node(s), %d bundle(s)", path, g.NodeCount(), len(bundles))
	for i, b := range bundles {
		log.Printf("%s: bundle %d: left=%s right=%s trivial=%t reversed=%t cyclic=%t",
			path, i, sideString(b.Left), sideString(b.Right), b.Trivial, b.HasReversed, b.Cyclic)
	}

	return nil
}

func sideString(s *bundle.Side) string {
	var parts []string
	s.Each(func(h handle.Handle) bool {
		parts = append(parts, h.String())

		return true
	})

	return "{" + strings.Join(parts, ",") + "}"
}
