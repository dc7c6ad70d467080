package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nandeeshlaxetti-prog/courtdata/pkg/types/court"
)

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <cnr>",
		Short: "Resolve a case by CNR through the configured provider chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := buildOrchestrator(cmd.Context())
			if err != nil {
				return err
			}

			lookup := o.Lookup(cmd.Context(), args[0])
			if err := printJSON(cmd, court.EnvelopeFromLookup(lookup)); err != nil {
				return err
			}
			if lookup.Failed() {
				return fmt.Errorf("lookup failed: %s", lookup.Code)
			}
			return nil
		},
	}
}

func newSearchCommand() *cobra.Command {
	var filters court.SearchFilters
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search cases on the configured search provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := buildOrchestrator(cmd.Context())
			if err != nil {
				return err
			}

			result, err := o.Search(cmd.Context(), filters)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().StringVar(&filters.PartyName, "party", "", "party name to match")
	cmd.Flags().StringVar(&filters.AdvocateName, "advocate", "", "advocate name to match")
	cmd.Flags().StringVar(&filters.CaseNumber, "case-number", "", "case number to match")
	cmd.Flags().StringVar(&filters.Court, "court", "", "court name to match")
	cmd.Flags().StringVar(&filters.CaseStatus, "status", "", "case status to match")
	cmd.Flags().IntVar(&filters.Limit, "limit", 0, "maximum results per page")
	cmd.Flags().IntVar(&filters.Offset, "offset", 0, "result offset for pagination")
	return cmd
}

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <case.json>",
		Short: "Import a case file into the manual store",
		Long: "Import reads a canonical case record from a JSON file and stores it in\n" +
			"the manual provider. Only meaningful when the service runs in manual mode\n" +
			"with a shared store; for one-shot verification it validates the file and\n" +
			"the CNR format.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var c court.CanonicalCase
			if err := json.Unmarshal(raw, &c); err != nil {
				return fmt.Errorf("invalid case file: %w", err)
			}

			o, err := buildOrchestrator(cmd.Context())
			if err != nil {
				return err
			}
			if err := o.Manual().ImportCase(cmd.Context(), &c); err != nil {
				return err
			}
			cmd.Printf("imported %s\n", c.CNR)
			return nil
		},
	}
}

func newProbeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Probe connectivity of every provider in the active chain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := buildOrchestrator(cmd.Context())
			if err != nil {
				return err
			}

			started := time.Now()
			results := o.ProbeAll(cmd.Context())
			failures := 0
			for name, probeErr := range results {
				if probeErr != nil {
					cmd.Printf("%-20s FAIL  %v\n", name, probeErr)
					failures++
				} else {
					cmd.Printf("%-20s ok\n", name)
				}
			}
			cmd.Printf("probed %d providers in %s\n", len(results), time.Since(started).Round(time.Millisecond))
			if failures > 0 {
				return fmt.Errorf("%d of %d providers unreachable", failures, len(results))
			}
			return nil
		},
	}
}
