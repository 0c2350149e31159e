package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/negociacion/admin/internal/apiclient"
	"github.com/negociacion/admin/internal/clients"
	"github.com/negociacion/admin/internal/entity"
	"github.com/negociacion/admin/internal/news"
	"github.com/negociacion/admin/internal/team"
)

// resource describes one entity table to the CLI.
type resource[T any, F any] struct {
	name     string
	fields   []string
	newTable func(*apiclient.Client, entity.Deps) *entity.Table[T, F, int64]
	columns  []column[T]
}

// setFlags collects repeated -set field=value flags.
type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ",") }

func (s *setFlags) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("expected field=value, got %q", v)
	}
	*s = append(*s, v)
	return nil
}

var clientResource = resource[clients.Client, clients.Form]{
	name: "clients",
	fields: []string{
		clients.FieldName, clients.FieldEconomicActivity, clients.FieldAddress, clients.FieldLocality,
		clients.FieldPhone, clients.FieldEmail, clients.FieldMemberCount, clients.FieldTestimonial,
	},
	newTable: clients.NewTable,
	columns: []column[clients.Client]{
		{"ID", func(c clients.Client) string { return strconv.FormatInt(c.ID, 10) }},
		{"NOMBRE", func(c clients.Client) string { return c.Name }},
		{"ACTIVIDAD", func(c clients.Client) string { return c.EconomicActivity }},
		{"LOCALIDAD", func(c clients.Client) string { return c.Locality }},
		{"EMAIL", func(c clients.Client) string { return c.Email }},
		{"MIEMBROS", func(c clients.Client) string { return strconv.Itoa(c.MemberCount) }},
		{"LOGO", func(c clients.Client) string { return c.Logo }},
	},
}

var teamResource = resource[team.Member, team.Form]{
	name: "team",
	fields: []string{
		team.FieldFirstName, team.FieldLastName, team.FieldEmail,
		team.FieldProfession, team.FieldExperience, team.FieldStatus,
	},
	newTable: team.NewTable,
	columns: []column[team.Member]{
		{"ID", func(m team.Member) string { return strconv.FormatInt(m.ID, 10) }},
		{"NOMBRE", func(m team.Member) string { return m.FullName() }},
		{"EMAIL", func(m team.Member) string { return m.Email }},
		{"PROFESION", func(m team.Member) string { return m.Profession }},
		{"ESTADO", func(m team.Member) string { return m.Status }},
		{"FOTO", func(m team.Member) string { return m.Photo }},
	},
}

var newsResource = resource[news.Post, news.Form]{
	name:     "news",
	fields:   []string{news.FieldTitle, news.FieldSummary, news.FieldBody},
	newTable: news.NewTable,
	columns: []column[news.Post]{
		{"ID", func(p news.Post) string { return strconv.FormatInt(p.ID, 10) }},
		{"TITULO", func(p news.Post) string { return truncate(p.Title, 40) }},
		{"SLUG", func(p news.Post) string { return p.Slug }},
		{"PUBLICADO", func(p news.Post) string { return p.PublishedAt }},
		{"EDITADO", func(p news.Post) string { return deref(p.EditedAt) }},
	},
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func runClients(ctx context.Context, a *app, args []string) error {
	return clientResource.run(ctx, a, args)
}

func runTeam(ctx context.Context, a *app, args []string) error {
	return teamResource.run(ctx, a, args)
}

func runNews(ctx context.Context, a *app, args []string) error {
	return newsResource.run(ctx, a, args)
}

func (r resource[T, F]) run(ctx context.Context, a *app, args []string) error {
	if len(args) < 1 {
		return r.usage(a)
	}
	switch args[0] {
	case "list":
		return r.list(ctx, a, args[1:])
	case "create":
		return r.create(ctx, a, args[1:])
	case "edit":
		return r.edit(ctx, a, args[1:])
	case "delete":
		return r.delete(ctx, a, args[1:])
	default:
		return r.usage(a)
	}
}

func (r resource[T, F]) usage(a *app) error {
	fmt.Fprintf(a.term.w, `Usage: admin %s <subcommand> [options]

Subcommands:
  list     List records
  create   Create a record from -set field=value flags
  edit     Edit the record given by -id
  delete   Delete the record given by -id

Fields: %s
`, r.name, strings.Join(r.fields, ", "))
	return fmt.Errorf("%s subcommand is required", r.name)
}

func (r resource[T, F]) list(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet(r.name+" list", flag.ContinueOnError)
	format := fs.String("o", formatTable, "Output format: table, json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validFormat(*format); err != nil {
		return err
	}

	table := r.newTable(a.api, a.deps(false))
	if err := table.Load(ctx); err != nil {
		if msg := table.LoadError(); msg != "" {
			a.term.Alert(msg)
		}
		return err
	}
	return printRecords(a.out, *format, table.Items(), r.columns)
}

func (r resource[T, F]) create(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet(r.name+" create", flag.ContinueOnError)
	var sets setFlags
	fs.Var(&sets, "set", "Field assignment field=value (repeatable)")
	file := fs.String("file", "", "Attachment to upload")
	format := fs.String("o", formatYAML, "Output format: json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	table := r.newTable(a.api, a.deps(false))
	if err := r.fill(table, sets, *file); err != nil {
		return err
	}
	if err := table.Submit(ctx); err != nil {
		return err
	}

	items := table.Items()
	return printRecord(a.out, *format, items[len(items)-1])
}

func (r resource[T, F]) edit(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet(r.name+" edit", flag.ContinueOnError)
	id := fs.Int64("id", 0, "Record id (required)")
	var sets setFlags
	fs.Var(&sets, "set", "Field assignment field=value (repeatable)")
	file := fs.String("file", "", "Replacement attachment")
	yes := fs.Bool("yes", false, "Do not ask for confirmation")
	format := fs.String("o", formatYAML, "Output format: json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	table := r.newTable(a.api, a.deps(*yes))
	if err := table.Load(ctx); err != nil {
		return err
	}
	record, ok := table.Find(*id)
	if !ok {
		return fmt.Errorf("%s %d not found", r.name, *id)
	}

	table.BeginEdit(record)
	if err := r.fill(table, sets, *file); err != nil {
		return err
	}
	if err := table.Submit(ctx); err != nil {
		if errors.Is(err, entity.ErrCancelled) {
			fmt.Fprintln(a.term.w, "Cancelado")
			return nil
		}
		return err
	}

	edited, _ := table.Find(*id)
	return printRecord(a.out, *format, edited)
}

func (r resource[T, F]) delete(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet(r.name+" delete", flag.ContinueOnError)
	id := fs.Int64("id", 0, "Record id (required)")
	yes := fs.Bool("yes", false, "Do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	table := r.newTable(a.api, a.deps(*yes))
	if err := table.Delete(ctx, *id); err != nil {
		if errors.Is(err, entity.ErrCancelled) {
			fmt.Fprintln(a.term.w, "Cancelado")
			return nil
		}
		return err
	}
	fmt.Fprintf(a.out, "%s %d eliminado\n", r.name, *id)
	return nil
}

func (r resource[T, F]) fill(table *entity.Table[T, F, int64], sets setFlags, file string) error {
	for _, s := range sets {
		name, value, _ := strings.Cut(s, "=")
		if err := table.SetField(name, value); err != nil {
			return err
		}
	}
	if file != "" {
		att, err := apiclient.ReadAttachment(file)
		if err != nil {
			return err
		}
		table.Attach(att)
	}
	return nil
}
