package cli

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-store/internal/domain/todo"
)

// recordFlags holds the flags describing one record for add and update.
type recordFlags struct {
	id      int64
	title   string
	dueDate string
	done    bool
}

func (f *recordFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.id, "id", 0, "record id")
	cmd.Flags().StringVar(&f.title, "title", "", "record title")
	cmd.Flags().StringVar(&f.dueDate, "due-date", "", "due date, stored as given")
	cmd.Flags().BoolVar(&f.done, "done", false, "mark the record done")
	_ = cmd.MarkFlagRequired("id")
}

func (f *recordFlags) todo() todo.Todo {
	return todo.Todo{ID: f.id, Title: f.title, DueDate: f.dueDate, IsDone: f.done}
}

func newInitCommand(opts *RootOptions) *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the store with the caller as owner",
		Long: `Create the store with the caller as owner.

Initial records can be given as a YAML seed file:

  todos:
    - id: 1
      title: buy milk
      due_date: "2024-05-01"
      is_done: false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var initial []todo.Todo
			if seedPath != "" {
				records, err := loadSeedFile(seedPath)
				if err != nil {
					return WrapExitError(ExitUsage, "reading seed file", err)
				}
				initial = records
			}

			client, err := opts.client(cmd)
			if err != nil {
				return err
			}
			result, err := client.Initialize(cmd.Context(), initial)
			if err != nil {
				return err
			}
			return opts.printer(cmd).initialized(result)
		},
	}

	cmd.Flags().StringVarP(&seedPath, "file", "f", "", "YAML seed file with initial records")

	return cmd
}

func newAddCommand(opts *RootOptions) *cobra.Command {
	var rec recordFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client(cmd)
			if err != nil {
				return err
			}
			result, err := client.Add(cmd.Context(), rec.todo())
			if err != nil {
				return err
			}
			return opts.printer(cmd).transition(result)
		},
	}
	rec.register(cmd)

	return cmd
}

func newUpdateCommand(opts *RootOptions) *cobra.Command {
	var rec recordFlags

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace every record with the given id",
		Long: `Replace every record with the given id.

The replacement is appended to the end of the list. Fields not given are
stored empty, not kept from the old record.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client(cmd)
			if err != nil {
				return err
			}
			result, err := client.Update(cmd.Context(), rec.todo())
			if err != nil {
				return err
			}
			return opts.printer(cmd).transition(result)
		},
	}
	rec.register(cmd)

	return cmd
}

func newRemoveCommand(opts *RootOptions) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove every record with the given id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client(cmd)
			if err != nil {
				return err
			}
			result, err := client.Remove(cmd.Context(), id)
			if err != nil {
				return err
			}
			return opts.printer(cmd).transition(result)
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "record id")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newResetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the record list, keeping the owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client(cmd)
			if err != nil {
				return err
			}
			result, err := client.Reset(cmd.Context())
			if err != nil {
				return err
			}
			return opts.printer(cmd).transition(result)
		},
	}
}

func newListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every record in stored order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client(cmd)
			if err != nil {
				return err
			}
			records, err := client.List(cmd.Context())
			if err != nil {
				return err
			}
			return opts.printer(cmd).records(records)
		},
	}
}

func newHealthCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the store service is ready",
		Long: `Check that the store service is ready.

Queries the service's readiness endpoint. Exits with status 6 when the
service is unreachable or reports itself not ready.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client(cmd)
			if err != nil {
				return err
			}
			if err := client.HealthCheck(cmd.Context()); err != nil {
				return WrapExitError(ExitUnavailable, client.Name()+" is not ready", err)
			}
			return opts.printer(cmd).healthy(client.Name())
		},
	}
}

func (o *RootOptions) printer(cmd *cobra.Command) printer {
	return printer{format: o.Format, w: cmd.OutOrStdout()}
}
