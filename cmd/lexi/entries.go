package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmcdole/lexi/internal/domain"
	"github.com/mmcdole/lexi/internal/form"
)

var (
	listWord   string
	listLetter string
	listPage   int

	entryWord       string
	entryWordType   string
	entryDefinition string

	historyLimit int
	historyClear bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of entries",
	Long: `List one page of entries, optionally for a single word or letter.

Examples:
  lexi list                      # first page of all entries
  lexi list --word cat           # entries for "cat"
  lexi list --letter q --page 2  # second page of words starting with q
  lexi list -o json              # structured output`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		if listPage < 0 {
			return fmt.Errorf("--page must be 1 or greater")
		}
		q := domain.EntryQuery{Word: listWord, Letter: listLetter, Page: listPage}
		page, err := a.entries.List(cmd.Context(), q)
		if err != nil {
			if apiErr, ok := domain.AsAPIError(err); ok && len(apiErr.Alternatives) > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "Perhaps you mean:")
				_ = printer.Words(apiErr.Alternatives)
			}
			return err
		}
		return printer.Page(page)
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <partial>",
	Short: "Suggest words starting with a prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		words, err := a.search.Suggest(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printer.Words(words)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		entry, err := a.entries.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printer.Entry(entry)
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an entry",
	Long: `Create an entry. Every field is required.

Example:
  lexi add --word cat --wordtype n. --definition "A small domesticated feline."`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		entry, err := a.entries.Create(cmd.Context(), entryInput())
		if err != nil {
			return err
		}
		return printer.Entry(entry)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an entry",
	Long: `Edit an entry. Only the fields passed as flags change.

Changing the word or word type replaces the whole entry; changing only the
definition patches it. Nothing is sent when no field differs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		action, err := a.entries.Edit(cmd.Context(), id, entryInput())
		if err != nil {
			return err
		}

		msg := fmt.Sprintf("Entry %d updated (%s)", id, action.Kind)
		if action.Kind == form.ActionNone {
			msg = fmt.Sprintf("Entry %d unchanged", id)
		}
		return printer.Result(msg, map[string]any{"id": id, "action": action.Kind.String()})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.entries.Delete(cmd.Context(), id); err != nil {
			return err
		}
		return printer.Result(fmt.Sprintf("Entry %d deleted", id), map[string]any{"id": id, "deleted": true})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history [query]",
	Short: "Show recently looked-up words",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		if historyClear {
			if err := a.history.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			return printer.Result("History cleared", map[string]any{"cleared": true})
		}

		var words []string
		if len(args) == 1 {
			words = a.history.Find(args[0])
		} else {
			words = a.history.Recent(historyLimit)
		}
		if historyLimit > 0 && len(words) > historyLimit {
			words = words[:historyLimit]
		}
		return printer.Words(words)
	},
}

func entryInput() domain.EntryInput {
	return domain.EntryInput{Word: entryWord, WordType: entryWordType, Definition: entryDefinition}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid entry id %q", s)
	}
	return id, nil
}

func init() {
	listCmd.Flags().StringVar(&listWord, "word", "", "only entries for this word")
	listCmd.Flags().StringVar(&listLetter, "letter", "", "only words starting with this letter")
	listCmd.Flags().IntVar(&listPage, "page", 0, "1-based page number")
	listCmd.MarkFlagsMutuallyExclusive("word", "letter")

	for _, c := range []*cobra.Command{addCmd, editCmd} {
		c.Flags().StringVar(&entryWord, "word", "", "the word")
		c.Flags().StringVar(&entryWordType, "wordtype", "", "word type, e.g. n. or v.")
		c.Flags().StringVar(&entryDefinition, "definition", "", "definition text")
	}

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum words to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "forget all recorded words")

	rootCmd.AddCommand(listCmd, suggestCmd, showCmd, addCmd, editCmd, deleteCmd, historyCmd)
}
