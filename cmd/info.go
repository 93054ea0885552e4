package cmd

import (
	"fmt"
	"io"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/mesh"
	"github.com/spf13/cobra"
)

var (
	infoLongest  int
	infoShortest int
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a mesh file",
	Long: `Show triangle and vertex counts, bounding box, surface area and edge
statistics. Without a file the unit cube is described.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().IntVarP(&infoLongest, "edges", "e", 0, "also list the N longest edges")
	infoCmd.Flags().IntVarP(&infoShortest, "shortest", "s", 0, "also list the N shortest edges")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := meshPath(args)

	m, err := mesh.Load(path)
	if err != nil {
		return fmt.Errorf("error loading mesh: %w", err)
	}

	report := analysis.Analyze(m)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Mesh Information")
	fmt.Fprintln(out, "================")
	fmt.Fprintf(out, "Name: %s\n", report.Name)
	if path != "" {
		fmt.Fprintf(out, "File: %s\n", path)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Model Statistics:")
	fmt.Fprintf(out, "  Triangles: %d\n", report.TriangleCount)
	fmt.Fprintf(out, "  Vertices: %d\n", report.UniqueVertices)
	fmt.Fprintf(out, "  Edges: %d\n", report.EdgeCount)
	fmt.Fprintf(out, "  Degenerate: %d\n", report.Degenerate)
	fmt.Fprintf(out, "  Surface Area: %.6f square units\n\n", report.SurfaceArea)

	if report.TriangleCount == 0 {
		return nil
	}

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(report.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(report.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n", analysis.FormatVector(report.BoundingBox.Center()))
	fmt.Fprintf(out, "  Diagonal: %.6f units\n\n", report.BoundingBox.Diagonal())

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %.6f units\n", report.Dimensions.X)
	fmt.Fprintf(out, "  Height (Y): %.6f units\n", report.Dimensions.Y)
	fmt.Fprintf(out, "  Depth (Z): %.6f units\n\n", report.Dimensions.Z)

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %.6f units\n", report.MinEdgeLength)
	fmt.Fprintf(out, "  Maximum: %.6f units\n", report.MaxEdgeLength)
	fmt.Fprintf(out, "  Average: %.6f units\n", report.AvgEdgeLength)

	if infoLongest > 0 {
		printEdges(out, "Longest Edges", report.LongestEdges(infoLongest))
	}
	if infoShortest > 0 {
		printEdges(out, "Shortest Edges", report.ShortestEdges(infoShortest))
	}
	return nil
}

func printEdges(out io.Writer, title string, edges []analysis.EdgeInfo) {
	fmt.Fprintf(out, "\n%s:\n", title)
	for i, edge := range edges {
		fmt.Fprintf(out, "  %d. %.6f units, triangle %d: %s -> %s\n",
			i+1, edge.Length, edge.TriangleID,
			analysis.FormatVector(edge.Start), analysis.FormatVector(edge.End))
	}
}
