package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/joeshaw/envdecode"
	"github.com/spf13/cobra"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"recipecatalog"
	"recipecatalog/catalog"
	"recipecatalog/display"
	"recipecatalog/favorites"
	"recipecatalog/storage"
)

// app holds what every subcommand needs once the flags are parsed.
type app struct {
	recipesPath  string
	favoritesDir string
	width        int

	svc       *catalog.Service
	favorites *favorites.Store
	terminal  *display.Terminal
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var cfg recipecatalog.CatalogConfig
	if err := envdecode.Decode(&cfg); err != nil {
		cfg.RecipesPath = "artifacts/recipes.json"
		cfg.FavoritesDir = "artifacts/state"
	}

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Browse the recipe catalog from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.recipesPath, "recipes", cfg.RecipesPath, "recipe catalog file (.json, .yaml)")
	root.PersistentFlags().StringVar(&a.favoritesDir, "state", cfg.FavoritesDir, "directory holding the favorites")
	root.PersistentFlags().IntVar(&a.width, "width", 64, "card width in columns")

	root.AddCommand(
		a.listCmd(),
		a.searchCmd(),
		a.ingredientsCmd(),
		a.favoriteCmd(),
		a.favoritesCmd(),
	)
	return root
}

func (a *app) init(ctx context.Context) error {
	a.favorites = favorites.NewStore(storage.NewFileBlob(a.favoritesDir))
	a.terminal = display.NewTerminal(a.width)

	recipes, err := catalog.Load(ctx, storage.NewFileRecipeState(a.recipesPath), catalog.FormatFromPath(a.recipesPath))
	if err != nil {
		recipecatalog.ReportLoadFailure(ctx, nil, a.recipesPath, err)
		return fmt.Errorf("unable to load recipes: %w", err)
	}

	a.svc = catalog.NewService(recipes, recipecatalog.NewNoOpQueryLogger(),
		tracenoop.NewTracerProvider().Tracer(recipecatalog.TracerNameCatalog),
		metricnoop.NewMeterProvider().Meter(recipecatalog.TracerNameCatalog))
	return nil
}

func (a *app) listCmd() *cobra.Command {
	var (
		criteria catalog.Criteria
		bucket   string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := catalog.ParseTimeBucket(bucket)
			if err != nil {
				return err
			}
			criteria.Time = b
			return a.terminal.Render(cmd.OutOrStdout(), display.NewList(a.svc.Filter(cmd.Context(), criteria)))
		},
	}
	cmd.Flags().StringVar(&criteria.Category, "category", "", "category, exact match ignoring case")
	cmd.Flags().StringVar(&criteria.Difficulty, "difficulty", "", "difficulty label, exact match ignoring case")
	cmd.Flags().StringVar(&bucket, "time", "", "total time bucket: <30, 30-60 or 60+")
	cmd.Flags().StringVar(&criteria.Search, "name", "", "part of the recipe name")
	cmd.Flags().BoolVar(&criteria.VegetarianOnly, "vegetarian", false, "only vegetarian recipes")
	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Find recipes whose name or description contains term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.terminal.Render(cmd.OutOrStdout(), display.NewList(a.svc.Search(cmd.Context(), args[0])))
		},
	}
}

func (a *app) ingredientsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingredients",
		Short: "Print every ingredient used in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.svc.Ingredients(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func (a *app) favoriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle a recipe in the favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid recipe id %q", args[0])
			}
			on, err := a.favorites.Toggle(cmd.Context(), id)
			if err != nil {
				return err
			}
			if on {
				fmt.Fprintf(cmd.OutOrStdout(), "added %d to favorites\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d from favorites\n", id)
			}
			return nil
		},
	}
}

func (a *app) favoritesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "Show the favorite recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := a.favorites.List(cmd.Context())
			if err != nil {
				return err
			}
			recipes := make([]catalog.Recipe, 0, len(ids))
			for _, id := range ids {
				if r, ok := a.svc.Get(id); ok {
					recipes = append(recipes, r)
				}
			}
			return a.terminal.Render(cmd.OutOrStdout(), display.NewList(recipes))
		},
	}
}
