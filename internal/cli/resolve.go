package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"nifresolver/internal/service"
	"nifresolver/internal/urlutil"
	"nifresolver/pkg/resolver"
)

var (
	resolveFragment string
	resolveOutput   string
)

type resolveResult struct {
	Location resolver.Location `json:"location" yaml:"location"`
	Rule     resolver.Rule     `json:"rule" yaml:"rule"`
	Navigate bool              `json:"navigate" yaml:"navigate"`
	Target   string            `json:"target,omitempty" yaml:"target,omitempty"`
	Message  string            `json:"message" yaml:"message"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Print where a URL would be redirected",
	Example: `  nifresolver resolve /NIF-Ontology/bfo.owl
  nifresolver resolve 'http://ontology.neuinfo.org/NIF-Ontology/bfo.owl#Class1' -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveFragment, "fragment", "", "fragment to use instead of the one in the URL")
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	path, fragment := urlutil.SplitLocation(args[0])
	if cmd.Flags().Changed("fragment") {
		fragment = resolveFragment
	}
	loc := resolver.Location{Path: path, Fragment: fragment}

	d, err := service.NewResolveService().Resolve(cmd.Context(), loc)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", args[0], err)
	}

	return writeResult(cmd.OutOrStdout(), resolveOutput, resolveResult{
		Location: loc,
		Rule:     d.Rule,
		Navigate: d.Navigate(),
		Target:   d.Target,
		Message:  d.Message(),
	})
}

func writeResult(w io.Writer, format string, res resolveResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		if !res.Navigate {
			_, err := fmt.Fprintln(w, res.Message)
			return err
		}
		_, err := fmt.Fprintf(w, "%s -> %s\n", res.Rule, res.Target)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
