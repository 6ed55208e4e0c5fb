package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/galdyn/potgrid/potential"
	"github.com/galdyn/potgrid/recording"
)

var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Evaluate a composite potential at paired (R, z) coordinates.",
	Run: func(cmd *cobra.Command, args []string) {
		runPairs(cmd)
	},
}

func init() {
	pairsCmd.Flags().String("r", "", "comma-separated R coordinates")
	pairsCmd.Flags().String("z", "", "comma-separated z coordinates")
	pairsCmd.Flags().String("types", "", "comma-separated potential type codes")
	pairsCmd.Flags().String("args", "", "comma-separated flat parameter buffer")
	pairsCmd.Flags().String("record", "",
		"record the results to this SQLite database (default $POTGRID_DB)")

	rootCmd.AddCommand(pairsCmd)
}

func runPairs(cmd *cobra.Command) {
	rStr, _ := cmd.Flags().GetString("r")
	zStr, _ := cmd.Flags().GetString("z")

	rs, err := parseFloatList(rStr)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	zs, err := parseFloatList(zStr)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if len(zs) != len(rs) || len(rs) == 0 {
		log.Fatalf("Error: need equally many R and z coordinates, got %d and %d",
			len(rs), len(zs))
	}

	types, potArgs := descriptorFromFlags(cmd)

	out := make([]float64, len(rs))

	evalErr := potential.EvalPotential(rs, zs, types, potArgs, out)
	if evalErr != nil {
		log.Fatalf("Error: %v (status %d)", evalErr, potential.Status(evalErr))
	}

	if path := recordPath(cmd); path != "" {
		grids := recording.NewGridRecorder(recording.New(path))
		run := grids.RecordPairs(rs, zs, out, len(types), potential.Status(evalErr))
		grids.Flush()

		fmt.Fprintf(os.Stderr, "Recorded run %s\n", run)
	}

	for i := range rs {
		fmt.Printf("%g\t%g\t%g\n", rs[i], zs[i], out[i])
	}
}
