package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jazzy96/topo-planner/internal/config"
	"github.com/Jazzy96/topo-planner/internal/domain/mesh"
	"github.com/Jazzy96/topo-planner/internal/meshio"
	"github.com/Jazzy96/topo-planner/internal/planner"
	"github.com/Jazzy96/topo-planner/pkg/logger"
)

var (
	inputPath  string
	outputPath string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Produce a rooted spanning tree and channel plan from a mesh input document",
	Long: `plan reads a §6 input record (nodes, edges and an optional config
block) from a file or stdin, runs the topology and channel planner over
it, and writes the resulting plan or error record as JSON.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input document path (default: stdin)")
	planCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path (default: stdout)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logger.New(logLevel)

	data, err := readInput(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	doc, err := meshio.DecodeInput(data)
	if err != nil {
		out, encErr := meshio.EncodeError(&mesh.Error{
			Kind:    mesh.InvalidInput,
			Message: err.Error(),
		})
		if encErr != nil {
			return encErr
		}
		return writeOutputAndExit(out)
	}

	base, err := config.LoadOverrides(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	input, verr := doc.ToModelWithBase(base)
	if verr != nil {
		out, encErr := meshio.EncodeError(verr)
		if encErr != nil {
			return encErr
		}
		return writeOutputAndExit(out)
	}

	plan, planErr := planner.Plan(input, log)
	if planErr != nil {
		merr, ok := planErr.(*mesh.Error)
		if !ok {
			merr = &mesh.Error{Kind: mesh.InternalInvariant, Message: planErr.Error()}
		}
		out, encErr := meshio.EncodeError(merr)
		if encErr != nil {
			return encErr
		}
		return writeOutputAndExit(out)
	}

	out, err := meshio.EncodePlan(plan)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return writeOutput(out)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(data []byte) error {
	data = append(data, '\n')
	if outputPath == "" || outputPath == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// writeOutputAndExit writes an error record and reports failure to the
// caller via a non-zero exit without also printing cobra's usage text.
func writeOutputAndExit(data []byte) error {
	if err := writeOutput(data); err != nil {
		return err
	}
	os.Exit(1)
	return nil
}
