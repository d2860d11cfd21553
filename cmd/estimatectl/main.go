// estimatectl inspects and moves estimates in the configured store without
// starting the HTTP server. It reads the same environment as cmd/api.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"ucraft_estimates/internal/adapter/http/dto/request"
	"ucraft_estimates/internal/adapter/http/dto/response"
	"ucraft_estimates/internal/app"
	"ucraft_estimates/internal/config"
	"ucraft_estimates/internal/domain/document"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/pflag"
)

var errUsage = errors.New("usage: estimatectl <list|show|status|export> [flags] [id]")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	command, args := args[0], args[1:]

	flags := pflag.NewFlagSet("estimatectl "+command, pflag.ContinueOnError)
	category := flags.String("category", "", "list: only estimates of this category")
	status := flags.String("to", "", "status: target status (sent or completed)")
	layout := flags.StringP("layout", "l", "", "export: document layout (A, B or C)")
	format := flags.StringP("format", "f", "pdf", "export: pdf or xlsx")
	outDir := flags.StringP("out", "o", ".", "export: directory the file is written to")
	if err := flags.Parse(args); err != nil {
		return err
	}

	svc, err := app.Build(ctx, config.LoadConfig())
	if err != nil {
		return err
	}

	switch command {
	case "list":
		estimates, err := svc.Estimates.List(ctx, *category)
		if err != nil && estimates == nil {
			return err
		}
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tCATEGORY\tPRICE\tTITLE")
		for _, e := range estimates {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", e.ID, e.Status, e.Category, e.Price, e.Title)
		}
		return w.Flush()

	case "show":
		id, err := singleArg(flags)
		if err != nil {
			return err
		}
		e, err := svc.Estimates.GetByID(ctx, id)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(response.FromEstimate(e))

	case "status":
		id, err := singleArg(flags)
		if err != nil {
			return err
		}
		to, err := request.StatusRequest{Status: *status}.ResolveStatus()
		if err != nil {
			return err
		}
		e, err := svc.Estimates.Transition(ctx, id, to)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", e.ID, e.Status)
		return nil

	case "export":
		id, err := singleArg(flags)
		if err != nil {
			return err
		}
		artifact, err := svc.Documents.Export(ctx, id, document.Layout(*layout), *format)
		if err != nil {
			return err
		}
		path := filepath.Join(*outDir, artifact.Filename)
		if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintln(out, path)
		return nil
	}
	return errUsage
}

func singleArg(flags *pflag.FlagSet) (string, error) {
	if flags.NArg() != 1 {
		return "", errUsage
	}
	return flags.Arg(0), nil
}
