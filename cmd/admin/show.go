package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/negociacion/admin/internal/detail"
)

func runShow(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	format := fs.String("o", formatTable, "Output format: table, json or yaml")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: admin show [options] <slug>\n\nShow a news post.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("slug is required")
	}
	if err := validFormat(*format); err != nil {
		return err
	}

	v := detail.New(a.api, a.cfg.DetailAssetURL, a.logger)
	if err := v.Load(ctx, fs.Arg(0)); err != nil {
		fmt.Fprintln(a.term.w, "Cargando...")
		return err
	}

	post := v.Post()
	if *format != formatTable {
		return printRecord(a.out, *format, post)
	}

	fmt.Fprintf(a.out, "%s\n%s\n\n", post.Title, post.PublishedAt)
	if img := v.ImageURL(); img != "" {
		fmt.Fprintf(a.out, "Imagen: %s\n\n", img)
	}
	fmt.Fprintln(a.out, post.Body)
	return nil
}
