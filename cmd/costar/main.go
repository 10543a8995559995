package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vanshika/costar/backend/internal/config"
	"github.com/vanshika/costar/backend/internal/logging"
	"github.com/vanshika/costar/backend/internal/search"
	"github.com/vanshika/costar/backend/internal/service"
	"github.com/vanshika/costar/backend/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "costar [dataset-dir]",
		Short: "Find the degrees of separation between two movie stars",
		Long: `costar loads a CSV dataset of people, movies, and cast memberships,
then finds the shortest chain of shared movies connecting two actors.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Log lines go to stderr so prompts and results stay clean on stdout.
	logger := logging.NewWithWriter(os.Stderr, cfg.Logging)

	dir := cfg.Dataset.Dir
	if len(args) > 0 {
		dir = args[0]
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Loading data from %s...\n", dir)
	dataset, warnings, err := store.LoadDirectory(dir)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	for _, warning := range warnings {
		logger.Warn("skipped dataset row", "file", warning.File, "line", warning.Line, "reason", warning.Reason)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Data loaded: %d people, %d movies.\n", dataset.CountPeople(), dataset.CountMovies())

	svc := service.NewPathService(dataset, search.NewEngine(dataset))
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	sourceID, err := promptPerson(reader, out, dataset)
	if err != nil {
		return err
	}
	targetID, err := promptPerson(reader, out, dataset)
	if err != nil {
		return err
	}

	path, err := svc.ShortestPath(cmd.Context(), sourceID, targetID)
	if err != nil {
		return err
	}

	if !path.Found {
		fmt.Fprintln(out, "Not connected.")
		return nil
	}

	fmt.Fprintf(out, "%d degrees of separation.\n", path.Hops())
	for _, line := range svc.Narrate(path) {
		fmt.Fprintln(out, line)
	}
	return nil
}

// promptPerson reads a name from the terminal and resolves it to a single
// person id, asking the user to pick when several people share the name.
func promptPerson(reader *bufio.Reader, out io.Writer, dataset *store.Store) (string, error) {
	fmt.Fprint(out, "Name: ")
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read name: %w", err)
	}
	name := strings.TrimSpace(line)
	if name == "" {
		return "", fmt.Errorf("name is required")
	}

	candidates := dataset.Candidates(name)
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("person %q not found", name)
	case 1:
		return candidates[0].ID, nil
	}

	fmt.Fprintf(out, "Which '%s'?\n", name)
	for _, c := range candidates {
		fmt.Fprintf(out, "ID: %s, Name: %s, Birth: %s\n", c.ID, c.Name, formatBirth(c.BirthYear))
	}
	fmt.Fprint(out, "Intended Person ID: ")
	idLine, err := reader.ReadString('\n')
	if err != nil && idLine == "" {
		return "", fmt.Errorf("read person id: %w", err)
	}
	id := strings.TrimSpace(idLine)
	for _, c := range candidates {
		if c.ID == id {
			return id, nil
		}
	}
	return "", fmt.Errorf("person id %q is not one of the candidates", id)
}

func formatBirth(year *int) string {
	if year == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d", *year)
}
