package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jekabolt/grbpwr-tickets/config"
	"github.com/jekabolt/grbpwr-tickets/internal/dependency"
	"github.com/jekabolt/grbpwr-tickets/internal/entity"
	"github.com/jekabolt/grbpwr-tickets/internal/livesync"
	"github.com/jekabolt/grbpwr-tickets/internal/picker"
	"github.com/jekabolt/grbpwr-tickets/internal/store"
	"github.com/jekabolt/grbpwr-tickets/internal/termui"
	"github.com/jekabolt/grbpwr-tickets/internal/ticketform"
	"github.com/jekabolt/grbpwr-tickets/internal/ticketview"
	"github.com/jekabolt/grbpwr-tickets/log"
	"github.com/spf13/cobra"
)

// watchPollInterval is used by the watch command when live.poll_interval is
// unset, since writes made by the server process never reach a local hub.
const watchPollInterval = 2 * time.Second

type sessionFlags struct {
	user string
	name string
	role string
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.user, "user", "", "user id to act as (overrides session.user_id)")
	cmd.PersistentFlags().StringVar(&f.name, "name", "", "display name (overrides session.display_name)")
	cmd.PersistentFlags().StringVar(&f.role, "role", "", "role to act as: user or admin (overrides session.role)")
}

func (f *sessionFlags) session(cfg *config.Config) (entity.Session, error) {
	sc := cfg.Session
	if f.user != "" {
		sc.UserId = f.user
	}
	if f.name != "" {
		sc.DisplayName = f.name
	}
	if f.role != "" {
		sc.Role = f.role
	}
	if sc.UserId == "" {
		return entity.Session{}, errors.New("no user id: set session.user_id or pass --user")
	}
	return sc.Session(), nil
}

// terminal is what a ticket subcommand runs against.
type terminal struct {
	cfg     *config.Config
	session entity.Session
	db      *store.SQLStore
	live    *livesync.Store
	out     io.Writer
}

func openTerminal(ctx context.Context, flags *sessionFlags) (*terminal, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("cannot load a config %v", err.Error())
	}
	// keep stdout for the ticket itself
	lc := cfg.Logger
	lc.Format = log.FormatText
	logger := log.New(os.Stderr, lc)
	slog.SetDefault(logger)

	session, err := flags.session(cfg)
	if err != nil {
		return nil, err
	}
	db, err := store.New(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("cannot open the ticket store: %w", err)
	}
	return &terminal{
		cfg:     cfg,
		session: session,
		db:      db,
		live:    livesync.New(db.Tickets(), nil, &cfg.Live),
		out:     os.Stdout,
	}, nil
}

func (t *terminal) Close() {
	t.db.Close()
}

// view mounts ticketId and waits for the ticket and its comments to load.
func (t *terminal) view(ctx context.Context, ticketId string, presenter dependency.Presenter) (*ticketview.View, *termui.Navigator, error) {
	nav := termui.NewNavigator()
	v := ticketview.New(t.live, t.session, nav, presenter)
	if err := v.Mount(ctx, ticketId); err != nil {
		return nil, nil, err
	}
	if _, err := v.Loaded(ctx); err != nil {
		v.Unmount()
		return nil, nil, err
	}
	return v, nav, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func ticketCmd() *cobra.Command {
	flags := &sessionFlags{}
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Create, inspect and manage tickets from the terminal",
	}
	flags.register(cmd)
	cmd.AddCommand(
		ticketCreateCmd(flags),
		ticketShowCmd(flags),
		ticketWatchCmd(flags),
		ticketCommentCmd(flags),
		ticketStatusCmd(flags),
		ticketPriorityCmd(flags),
		ticketDeleteCmd(flags),
	)
	return cmd
}

func ticketCreateCmd(flags *sessionFlags) *cobra.Command {
	var (
		f     ticketform.Form
		image string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a ticket, optionally attaching a photo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			t, err := openTerminal(ctx, flags)
			if err != nil {
				return err
			}
			defer t.Close()

			var files dependency.FileStore
			if image != "" {
				b, err := t.cfg.Bucket.New()
				if err != nil {
					return err
				}
				files = b
			}

			presenter := termui.NewTerminal(os.Stdin, t.out)
			h := ticketform.New(&t.cfg.Form, t.session, t.live, files, picker.NewNative(image), termui.NewNavigator(), presenter)

			if _, err := h.PickImage(ctx); err != nil && !errors.Is(err, picker.ErrPickCanceled) {
				return err
			}
			id, err := h.Submit(ctx, f)
			if err != nil {
				return err
			}
			h.Wait()
			fmt.Fprintln(t.out, id)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.Title, "title", "", "ticket title")
	cmd.Flags().StringVar(&f.Description, "description", "", "what happened")
	cmd.Flags().StringVar((*string)(&f.Category), "category", "", "one of "+categoryList())
	cmd.Flags().StringVar(&f.Location, "location", "", "where it happened")
	cmd.Flags().StringVar(&image, "image", "", "path to a JPEG or PNG photo")
	return cmd
}

func categoryList() string {
	names := make([]string, 0, len(entity.TicketCategories))
	for _, c := range entity.TicketCategories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func ticketShowCmd(flags *sessionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <ticket-id>",
		Short: "Print a ticket with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			t, err := openTerminal(ctx, flags)
			if err != nil {
				return err
			}
			defer t.Close()

			v, _, err := t.view(ctx, args[0], termui.NewTerminal(os.Stdin, t.out))
			if err != nil {
				return err
			}
			defer v.Unmount()

			fmt.Fprintln(t.out, termui.RenderState(v.State()))
			if menu := v.Menu(); len(menu) > 0 {
				fmt.Fprintln(t.out, termui.RenderMenu(menu))
			}
			return nil
		},
	}
}

func ticketWatchCmd(flags *sessionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <ticket-id>",
		Short: "Follow a ticket and its comments until it is deleted or interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			t, err := openTerminal(ctx, flags)
			if err != nil {
				return err
			}
			defer t.Close()
			if t.cfg.Live.PollInterval <= 0 {
				t.cfg.Live.PollInterval = watchPollInterval
			}

			v, nav, err := t.view(ctx, args[0], termui.NewTerminal(os.Stdin, t.out))
			if err != nil {
				return err
			}
			defer v.Unmount()

			states := v.Watch(ctx)
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-nav.Left():
					return nil
				case st, ok := <-states:
					if !ok {
						return nil
					}
					fmt.Fprintln(t.out, termui.RenderState(st))
					if st.Gone {
						return nil
					}
				}
			}
		},
	}
}

func ticketCommentCmd(flags *sessionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <ticket-id> <text>",
		Short: "Add a comment to a ticket",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			t, err := openTerminal(ctx, flags)
			if err != nil {
				return err
			}
			defer t.Close()

			v, _, err := t.view(ctx, args[0], termui.NewTerminal(os.Stdin, t.out))
			if err != nil {
				return err
			}
			defer v.Unmount()

			return v.AddComment(ctx, strings.Join(args[1:], " "))
		},
	}
}

func ticketStatusCmd(flags *sessionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status <ticket-id> <open|in_progress|pending|resolved|closed>",
		Short: "Change the status of a ticket (admin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			t, err := openTerminal(ctx, flags)
			if err != nil {
				return err
			}
			defer t.Close()

			v, _, err := t.view(ctx, args[0], termui.NewTerminal(os.Stdin, t.out))
			if err != nil {
				return err
			}
			defer v.Unmount()

			return v.SetStatus(ctx, entity.TicketStatus(args[1]))
		},
	}
}

func ticketPriorityCmd(flags *sessionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "priority <ticket-id> <low|medium|high>",
		Short: "Change the priority of a ticket (admin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			t, err := openTerminal(ctx, flags)
			if err != nil {
				return err
			}
			defer t.Close()

			v, _, err := t.view(ctx, args[0], termui.NewTerminal(os.Stdin, t.out))
			if err != nil {
				return err
			}
			defer v.Unmount()

			return v.SetPriority(ctx, entity.TicketPriority(args[1]))
		},
	}
}

func ticketDeleteCmd(flags *sessionFlags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <ticket-id>",
		Short: "Delete a ticket after confirmation (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			t, err := openTerminal(ctx, flags)
			if err != nil {
				return err
			}
			defer t.Close()

			var in io.Reader = os.Stdin
			if yes {
				in = strings.NewReader("y\n")
			}
			v, _, err := t.view(ctx, args[0], termui.NewTerminal(in, t.out))
			if err != nil {
				return err
			}
			defer v.Unmount()

			if err := v.Delete(ctx); err != nil {
				if errors.Is(err, ticketview.ErrDeleteCanceled) {
					return nil
				}
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
