package cli

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Hamidziya/crm-edfront/internal/importer"
	"github.com/spf13/cobra"
)

const previewRows = 5

func (a *App) newImportCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk-import leads from an Excel or CSV file",
		Long: "Parses an .xlsx, .xls or .csv file, validates that it declares the\n" +
			"title, description, name, email and mobile columns, previews the\n" +
			"staged records and submits them as one bulk-create request.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireSession(); err != nil {
				return err
			}

			im := importer.New(a.client, a.log)
			staged, dropped, err := im.LoadFile(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Preview (%d records found", staged)
			if dropped > 0 {
				fmt.Fprintf(a.out, ", %d incomplete rows skipped", dropped)
			}
			fmt.Fprintln(a.out, "):")

			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TITLE\tDESCRIPTION\tNAME\tEMAIL\tMOBILE")
			for _, r := range im.Preview(previewRows) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					r.Title, truncate(r.Description, 30), r.Name, r.Email, r.Mobile)
			}
			w.Flush()
			if staged > previewRows {
				fmt.Fprintf(a.out, "... and %d more records\n", staged-previewRows)
			}

			if !yes && !a.confirm(fmt.Sprintf("Import %d leads? [y/N] ", staged)) {
				fmt.Fprintln(a.out, "Import cancelled.")
				return nil
			}

			// The batch stays staged on failure, so the user may retry
			// the same submission without re-reading the file.
			for {
				result, err := im.Submit(cmd.Context())
				if err == nil {
					fmt.Fprintf(a.out, "Successfully imported %d leads\n", result.ImportedCount)
					return nil
				}
				a.log.Error().Err(err).Msg("Import failed")
				if yes || !a.confirm(fmt.Sprintf("Import failed: %v. Retry? [y/N] ", err)) {
					return err
				}
			}
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "submit without confirmation")
	return cmd
}

func (a *App) confirm(prompt string) bool {
	fmt.Fprint(a.out, prompt)
	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
