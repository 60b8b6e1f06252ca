package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type ColumnsCmd struct {
	filePath     string
	profilesPath string
	profile      string
}

func NewColumnsCmd() *cobra.Command {
	cc := &ColumnsCmd{}
	cmd := &cobra.Command{
		Use:   "columns",
		Short: "List the filterable values of a sales file",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.filePath, "file", "", "Path to the CSV or XLSX file (omit to use the sample dataset)")
	cmd.Flags().StringVar(&cc.profilesPath, "profiles", "", "Path to the column profiles file")
	cmd.Flags().StringVar(&cc.profile, "profile", "", "Column profile to apply")

	return cmd
}

func (cc *ColumnsCmd) run(cmd *cobra.Command, _ []string) error {
	ds, source, err := loadDataset(cmd, cc.filePath, cc.profilesPath, cc.profile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Dataset: %s (%d rows)\n", source, len(ds.Rows))
	fmt.Fprintf(out, "Days: %s\n", strings.Join(ds.Days(), ", "))

	if categories := ds.Categories(); categories != nil {
		fmt.Fprintf(out, "Categories: %s\n", strings.Join(categories, ", "))
	} else {
		fmt.Fprintln(out, "Categories: (no category column)")
	}

	return nil
}
