package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/galdyn/potgrid/monitoring"
	"github.com/galdyn/potgrid/potential"
	"github.com/galdyn/potgrid/recording"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Evaluate a composite potential on the outer product of two axes.",
	Run: func(cmd *cobra.Command, args []string) {
		runGrid(cmd)
	},
}

func init() {
	gridCmd.Flags().Float64("r-min", 0.1, "lowest R coordinate")
	gridCmd.Flags().Float64("r-max", 10, "highest R coordinate")
	gridCmd.Flags().Int("nr", 101, "number of R points")
	gridCmd.Flags().Float64("z-min", -5, "lowest z coordinate")
	gridCmd.Flags().Float64("z-max", 5, "highest z coordinate")
	gridCmd.Flags().Int("nz", 101, "number of z points")
	gridCmd.Flags().String("types", "", "comma-separated potential type codes")
	gridCmd.Flags().String("args", "", "comma-separated flat parameter buffer")
	gridCmd.Flags().Bool("parallel", false, "evaluate rows in parallel")
	gridCmd.Flags().String("record", "",
		"record the grid to this SQLite database (default $POTGRID_DB)")
	gridCmd.Flags().Bool("monitor", false, "serve evaluation progress")
	gridCmd.Flags().Bool("quiet", false, "do not print the grid")

	rootCmd.AddCommand(gridCmd)
}

func runGrid(cmd *cobra.Command) {
	rMin, _ := cmd.Flags().GetFloat64("r-min")
	rMax, _ := cmd.Flags().GetFloat64("r-max")
	nR, _ := cmd.Flags().GetInt("nr")
	zMin, _ := cmd.Flags().GetFloat64("z-min")
	zMax, _ := cmd.Flags().GetFloat64("z-max")
	nZ, _ := cmd.Flags().GetInt("nz")

	rs, err := linspace(rMin, rMax, nR)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	zs, err := linspace(zMin, zMax, nZ)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	types, potArgs := descriptorFromFlags(cmd)

	out := make([]float64, len(rs)*len(zs))

	var job *monitoring.Job
	hook := potential.RowHook(nil)

	useMonitor, _ := cmd.Flags().GetBool("monitor")
	if useMonitor {
		monitor := monitoring.NewMonitor()
		if port := monitorPortFromEnv(); port != 0 {
			monitor.WithPortNumber(port)
		}
		monitor.StartServer()

		job = monitor.NewJob("grid evaluation", "grid", len(rs), len(zs))
		hook = job.RowHook()
	}

	parallel, _ := cmd.Flags().GetBool("parallel")

	var evalErr error
	if parallel {
		evalErr = potential.CalcPotentialParallel(rs, zs, types, potArgs, out)
	} else {
		evalErr = potential.CalcPotentialHooked(
			rs, zs, types, potArgs, out, hook)
	}

	if job != nil {
		job.Complete(evalErr)
	}

	if evalErr != nil {
		log.Fatalf("Error: %v (status %d)", evalErr, potential.Status(evalErr))
	}

	if path := recordPath(cmd); path != "" {
		grids := recording.NewGridRecorder(recording.New(path))
		run := grids.RecordGrid(rs, zs, out, len(types), potential.Status(evalErr))
		grids.Flush()

		fmt.Fprintf(os.Stderr, "Recorded run %s\n", run)
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	if !quiet {
		printGrid(rs, zs, out)
	}
}

func descriptorFromFlags(cmd *cobra.Command) ([]int, []float64) {
	typesStr, _ := cmd.Flags().GetString("types")
	argsStr, _ := cmd.Flags().GetString("args")

	types, err := parseTypeList(typesStr)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	potArgs, err := parseFloatList(argsStr)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	return types, potArgs
}

func recordPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("record")
	if path == "" {
		path = os.Getenv("POTGRID_DB")
	}

	return path
}

func monitorPortFromEnv() int {
	port, err := strconv.Atoi(os.Getenv("POTGRID_MONITOR_PORT"))
	if err != nil {
		return 0
	}

	return port
}

func printGrid(rs, zs, out []float64) {
	for i, r := range rs {
		for j, z := range zs {
			fmt.Printf("%g\t%g\t%g\n", r, z, out[i*len(zs)+j])
		}
	}
}
