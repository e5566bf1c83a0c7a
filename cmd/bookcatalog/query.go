package main

import (
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/xiebiao/bookcatalog/internal/application/browse"
	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type searchOptions struct {
	title      string
	author     string
	genre      string
	page       int
	jsonOutput bool
}

func newSearchCmd(flags *rootFlags) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the catalog by title, author and genre",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, flags, func(ctx context.Context, svc *browse.Service) error {
				return runSearch(ctx, cmd.OutOrStdout(), svc, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Case-insensitive title substring")
	cmd.Flags().StringVarP(&opts.author, "author", "a", catalog.Any, "Author id, or \"any\"")
	cmd.Flags().StringVarP(&opts.genre, "genre", "g", catalog.Any, "Genre id, or \"any\"")
	cmd.Flags().IntVarP(&opts.page, "page", "p", int(catalog.FirstPage), "Page number, starting at 1")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")

	return cmd
}

func runSearch(ctx context.Context, out io.Writer, svc *browse.Service, opts *searchOptions) error {
	res, err := svc.Page(ctx, browse.PageQuery{
		Criteria: catalog.FilterCriteria{Title: opts.title, Author: opts.author, Genre: opts.genre},
		Page:     catalog.PageCursor(opts.page),
	})
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return writeJSON(out, dto.NewBookListResponse(res))
	}

	if res.ShowEmptyMessage {
		fmt.Fprintln(out, "No results found. Your filters might be too narrow.")
		return nil
	}
	for _, it := range res.Items {
		fmt.Fprintf(out, "%-12s %s by %s\n", it.ID, it.Title, it.Author)
	}
	fmt.Fprintf(out, "\nPage %d/%d · %d books · %s\n", res.Page, res.TotalPages, res.Total, res.ShowMoreLabel)
	return nil
}

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <book-id>",
		Short: "Show details of a single book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, flags, func(ctx context.Context, svc *browse.Service) error {
				return runShow(ctx, cmd.OutOrStdout(), svc, args[0], opts)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output book details as JSON")

	return cmd
}

func runShow(ctx context.Context, out io.Writer, svc *browse.Service, id string, opts *showOptions) error {
	detail, err := svc.Select(ctx, id)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return writeJSON(out, dto.NewBookDetailResponse(detail))
	}

	fmt.Fprintf(out, "%s\n%s\n\n%s\n", detail.Title, detail.Subtitle, detail.Description)
	if detail.Image != "" {
		fmt.Fprintf(out, "\nImage: %s\n", detail.Image)
	}
	return nil
}

func newOptionsCmd(flags *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List author and genre filter options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, flags, func(ctx context.Context, svc *browse.Service) error {
				return runOptions(cmd.OutOrStdout(), svc, jsonOutput)
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output options as JSON")

	return cmd
}

func runOptions(out io.Writer, svc *browse.Service, jsonOutput bool) error {
	opts := svc.Options()
	if jsonOutput {
		return writeJSON(out, &dto.OptionsResponse{Authors: opts.Authors, Genres: opts.Genres})
	}

	printOptions := func(heading string, options []catalog.Option) {
		fmt.Fprintln(out, heading)
		for _, o := range options {
			fmt.Fprintf(out, "  %-16s %s\n", o.Value, o.Label)
		}
	}
	printOptions("Authors:", opts.Authors)
	fmt.Fprintln(out)
	printOptions("Genres:", opts.Genres)
	return nil
}

// withService 加载配置、组装浏览服务后执行fn
func withService(cmd *cobra.Command, flags *rootFlags, fn func(ctx context.Context, svc *browse.Service) error) error {
	cfg, log, err := loadConfig(flags)
	if err != nil {
		return err
	}
	defer closeLogger(log)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, cleanup, err := initializeService(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(ctx, svc)
}

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
