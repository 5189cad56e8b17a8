package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"nexus-asset-manager/internal/ai"
	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/form"
	"nexus-asset-manager/internal/inventory"
	"nexus-asset-manager/internal/labels"
	"nexus-asset-manager/internal/logger"
	"nexus-asset-manager/internal/renewal"
	"nexus-asset-manager/internal/report"
	"nexus-asset-manager/internal/scan"
	"nexus-asset-manager/internal/security"
	"nexus-asset-manager/internal/storage"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func filterFlags(fs *flag.FlagSet) *inventory.Filter {
	f := &inventory.Filter{}
	fs.StringVar(&f.Search, "q", "", "search name, id, serial or assignee")
	fs.StringVar(&f.Status, "status", inventory.All, "status filter")
	fs.StringVar(&f.Type, "type", inventory.All, "type filter")
	return f
}

func (a *app) list(ctx context.Context, args []string) error {
	fs := newFlagSet("list")
	filter := filterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.store(ctx)
	if err != nil {
		return err
	}
	assets, err := s.List(ctx)
	if err != nil {
		return err
	}
	visible := inventory.Apply(assets, *filter)
	if len(visible) == 0 {
		fmt.Fprintln(a.out, "No assets found.")
		return nil
	}
	printAssets(a.out, visible)
	return nil
}

func printAssets(w io.Writer, assets []domain.Asset) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tSTATUS\tASSIGNED TO\tPRICE")
	for _, a := range assets {
		assigned := a.AssignedTo
		if assigned == "" {
			assigned = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.2f\n", a.ID, a.Name, a.Type, a.Status, assigned, a.Price)
	}
	tw.Flush()
}

// assetFlags holds the editable fields of an asset. Only flags given on the
// command line are applied.
type assetFlags struct {
	id, name, model, serial, typ, status string
	purchase, assigned, notes             string
	renewal, billing                      string
	price                                 float64
}

func (f *assetFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.id, "id", "", "asset tag (new assets only)")
	fs.StringVar(&f.name, "name", "", "name")
	fs.StringVar(&f.model, "model", "", "model")
	fs.StringVar(&f.serial, "serial", "", "serial number")
	fs.StringVar(&f.typ, "type", "", "type")
	fs.StringVar(&f.status, "status", "", "status")
	fs.StringVar(&f.purchase, "purchase", "", "purchase date (YYYY-MM-DD)")
	fs.StringVar(&f.assigned, "assigned", "", "assigned to")
	fs.StringVar(&f.notes, "notes", "", "notes")
	fs.StringVar(&f.renewal, "renewal", "", "renewal date (YYYY-MM-DD)")
	fs.StringVar(&f.billing, "billing", "", "billing cycle")
	fs.Float64Var(&f.price, "price", 0, "price")
}

// apply sets the type first so that its coercion of status and billing cycle
// never overrides an explicit -status or -billing.
func (f *assetFlags) apply(fs *flag.FlagSet, c *form.Controller) error {
	if isSet(fs, "type") {
		t, err := domain.ParseAssetType(f.typ)
		if err != nil {
			return err
		}
		c.SetType(t)
	}

	var err error
	fs.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "id":
			err = c.SetID(f.id)
		case "name":
			c.SetName(f.name)
		case "model":
			c.SetModel(f.model)
		case "serial":
			c.SetSerialNumber(f.serial)
		case "status":
			var s domain.AssetStatus
			if s, err = domain.ParseAssetStatus(f.status); err == nil {
				c.SetStatus(s)
			}
		case "purchase":
			c.SetPurchaseDate(f.purchase)
		case "assigned":
			c.SetAssignedTo(f.assigned)
		case "notes":
			c.SetNotes(f.notes)
		case "renewal":
			c.SetRenewalDate(f.renewal)
		case "billing":
			c.SetBillingCycle(domain.BillingCycle(f.billing))
		case "price":
			err = c.SetPrice(f.price)
		}
	})
	return err
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

func (a *app) add(ctx context.Context, args []string) error {
	fs := newFlagSet("add")
	var fields assetFlags
	fields.register(fs)
	subscription := fs.Bool("subscription", false, "preset an active yearly subscription")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.store(ctx)
	if err != nil {
		return err
	}
	assets, err := s.List(ctx)
	if err != nil {
		return err
	}

	taken := form.IDsOf(assets)
	c := form.NewController(a.ids)
	open := c.OpenNew
	if *subscription {
		open = c.OpenNewSubscription
	}
	if err := open(a.now(), taken); err != nil {
		return err
	}
	if err := fields.apply(fs, c); err != nil {
		return err
	}
	if id := c.Draft().ID; isSet(fs, "id") {
		if _, exists := taken[id]; exists {
			return &domain.ValidationError{Field: "id", Reason: fmt.Sprintf("%s is already in use, use edit to change it", id)}
		}
	}
	saved, err := c.Submit(ctx, s)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s (%s)\n", saved.ID, saved.Name)
	return nil
}

func (a *app) edit(ctx context.Context, args []string) error {
	fs := newFlagSet("edit")
	var fields assetFlags
	fields.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: edit needs exactly one asset id", errUsage)
	}
	s, err := a.store(ctx)
	if err != nil {
		return err
	}
	asset, err := a.find(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	c := form.NewController(a.ids)
	c.OpenEdit(asset)
	if err := fields.apply(fs, c); err != nil {
		return err
	}
	saved, err := c.Submit(ctx, s)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated %s (%s)\n", saved.ID, saved.Name)
	return nil
}

func (a *app) remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: delete needs exactly one asset id", errUsage)
	}
	s, err := a.store(ctx)
	if err != nil {
		return err
	}
	if err := s.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s\n", args[0])
	return nil
}

func (a *app) find(ctx context.Context, id string) (domain.Asset, error) {
	s, err := a.store(ctx)
	if err != nil {
		return domain.Asset{}, err
	}
	assets, err := s.List(ctx)
	if err != nil {
		return domain.Asset{}, err
	}
	for _, asset := range assets {
		if asset.ID == id {
			return asset, nil
		}
	}
	return domain.Asset{}, fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
}

func (a *app) alerts(ctx context.Context, _ []string) error {
	s, err := a.store(ctx)
	if err != nil {
		return err
	}
	assets, err := s.List(ctx)
	if err != nil {
		return err
	}
	alerts := renewal.DeriveAlerts(assets, a.now())
	if len(alerts) == 0 {
		fmt.Fprintln(a.out, "No renewals in the next 30 days.")
		return nil
	}
	for _, n := range alerts {
		fmt.Fprintf(a.out, "[%s] %s: %s\n", n.Type, n.Title, n.Message)
	}
	return nil
}

// stringList collects a repeatable flag.
type stringList []string

func (l *stringList) String() string     { return strings.Join(*l, ",") }
func (l *stringList) Set(v string) error { *l = append(*l, v); return nil }

func parseMove(v string) (int, int, error) {
	from, to, ok := strings.Cut(v, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: -move expects from:to, got %q", errUsage, v)
	}
	f, err := strconv.Atoi(from)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad -move index %q", errUsage, from)
	}
	t, err := strconv.Atoi(to)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad -move index %q", errUsage, to)
	}
	return f, t, nil
}

// requireVisible reports ids that are unknown or hidden by the list filter.
func requireVisible(id string, assets, visible []domain.Asset) error {
	for _, a := range visible {
		if a.ID == id {
			return nil
		}
	}
	for _, a := range assets {
		if a.ID == id {
			return &domain.ValidationError{Field: "id", Reason: fmt.Sprintf("%s does not match the -q/-status/-type filter", id)}
		}
	}
	return fmt.Errorf("asset %s: %w", id, domain.ErrNotFound)
}

func (a *app) printer(pdf bool) (*labels.Printer, *storage.LocalStorage, error) {
	files, err := storage.NewLocalStorage(storage.Config{Dir: a.cfg.Labels.OutputDir, BaseURL: a.cfg.Labels.BaseURL})
	if err != nil {
		return nil, nil, err
	}
	if pdf {
		return labels.NewPrinter(labels.NewPDFRenderer(files, "labels", a.cfg.Labels.ChromePath)), files, nil
	}
	return labels.NewPrinter(labels.NewFileOpener(files, "labels")), files, nil
}

// reportLocation prints where the output landed on disk.
func (a *app) reportLocation(files *storage.LocalStorage, location string) {
	if u, err := url.Parse(location); err == nil {
		if key := u.Query().Get("key"); key != "" {
			fmt.Fprintf(a.out, "Labels written to %s\n", files.LocalPath(key))
			return
		}
	}
	fmt.Fprintf(a.out, "Labels written to %s\n", location)
}

func (a *app) print(ctx context.Context, args []string) error {
	fs := newFlagSet("print")
	filter := filterFlags(fs)
	pdf := fs.Bool("pdf", false, "render a PDF with headless Chrome")
	all := fs.Bool("all", false, "select every asset matching the filter")
	var moves, removes stringList
	fs.Var(&moves, "move", "reorder the queue, from:to (repeatable)")
	fs.Var(&removes, "remove", "drop an asset from the queue (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := a.store(ctx)
	if err != nil {
		return err
	}
	assets, err := s.List(ctx)
	if err != nil {
		return err
	}
	visible := inventory.Apply(assets, *filter)

	selection := inventory.NewSelection()
	if *all {
		selection.ToggleAll(visible)
	}
	for _, id := range fs.Args() {
		if err := requireVisible(id, assets, visible); err != nil {
			return err
		}
		if !selection.IsSelected(id) {
			selection.Toggle(id)
		}
	}
	queue := labels.NewQueue(selection.Ordered(visible))
	for _, m := range moves {
		from, to, err := parseMove(m)
		if err != nil {
			return err
		}
		if err := queue.Move(from, to); err != nil {
			return err
		}
	}
	for _, id := range removes {
		if !queue.Remove(id) {
			logger.Warn("Asset not in print queue", "id", id)
			fmt.Fprintf(a.out, "Skipped -remove %s: not in the print queue\n", id)
		}
	}

	printer, files, err := a.printer(*pdf)
	if err != nil {
		return err
	}
	location, err := printer.Print(ctx, queue)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Printed %d label(s)\n", queue.Len())
	a.reportLocation(files, location)
	return nil
}

func (a *app) label(ctx context.Context, args []string) error {
	fs := newFlagSet("label")
	pdf := fs.Bool("pdf", false, "render a PDF with headless Chrome")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: label needs exactly one asset id", errUsage)
	}
	asset, err := a.find(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	printer, files, err := a.printer(*pdf)
	if err != nil {
		return err
	}
	location, err := printer.PrintSingle(ctx, asset)
	if err != nil {
		return err
	}
	a.reportLocation(files, location)
	return nil
}

func (a *app) scan(ctx context.Context, args []string) error {
	fs := newFlagSet("scan")
	manual := fs.String("manual", "", "typed asset tag or serial number")
	image := fs.Bool("image", false, "decode QR codes from the image files given as arguments")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.store(ctx)
	if err != nil {
		return err
	}
	assets, err := s.List(ctx)
	if err != nil {
		return err
	}

	switch {
	case *manual != "":
		asset, err := scan.ManualEntry(*manual, assets)
		if err != nil {
			fmt.Fprintln(a.out, scan.NotFoundMessage(scan.NormalizeManual(*manual)))
			return err
		}
		printAssets(a.out, []domain.Asset{asset})
		return nil
	case *image && fs.NArg() > 0:
		return a.scanImages(ctx, assets, fs.Args())
	default:
		return fmt.Errorf("%w: scan needs -manual <text> or -image <file...>", errUsage)
	}
}

func (a *app) scanImages(ctx context.Context, assets []domain.Asset, paths []string) error {
	var matched *domain.Asset
	noDelay := time.Duration(0)
	session := scan.NewSession(scan.SessionConfig{
		Camera: scan.NewImageCamera(paths...),
		Assets: func() []domain.Asset { return assets },
		OnMatch: func(asset domain.Asset) {
			matched = &asset
		},
		OnMiss: func(text string, _ error) {
			fmt.Fprintln(a.out, scan.NotFoundMessage(text))
		},
		Delay: &noDelay,
	})
	defer session.Close()

	if err := session.Open(ctx); err != nil {
		return err
	}
	if matched == nil {
		return fmt.Errorf("no asset code recognised in %d image(s): %w", len(paths), domain.ErrNotFound)
	}
	printAssets(a.out, []domain.Asset{*matched})
	return nil
}

func (a *app) ask(ctx context.Context, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("%w: ask needs a question", errUsage)
	}
	s, err := a.store(ctx)
	if err != nil {
		return err
	}
	assets, err := s.List(ctx)
	if err != nil {
		return err
	}
	assistant, err := ai.New(ctx, a.cfg.AI)
	if err != nil {
		return err
	}
	answer, err := assistant.AnalyzeInventory(ctx, query, assets)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, answer)
	return nil
}

func (a *app) report(ctx context.Context, _ []string) error {
	s, err := a.store(ctx)
	if err != nil {
		return err
	}
	assets, err := s.List(ctx)
	if err != nil {
		return err
	}
	now := a.now()
	summary := report.Summarize(assets, now)
	subs := report.Subscriptions(assets, now)

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total assets\t%d\n", summary.TotalAssets)
	fmt.Fprintf(tw, "Total value\t$%.2f\n", summary.TotalValue)
	fmt.Fprintf(tw, "Assigned\t%d\n", summary.AssignedCount)
	fmt.Fprintf(tw, "Available\t%d\n", summary.AvailableCount)
	fmt.Fprintf(tw, "In repair\t%d\n", summary.RepairCount)
	fmt.Fprintf(tw, "Average age\t%.1f months\n", summary.AverageAgeMonths)
	for _, c := range summary.ByStatus {
		fmt.Fprintf(tw, "Status %s\t%d\n", c.Name, c.Value)
	}
	for _, c := range summary.ByType {
		fmt.Fprintf(tw, "Type %s\t%d\n", c.Name, c.Value)
	}
	fmt.Fprintf(tw, "Active subscriptions\t%d\n", subs.ActiveCount)
	fmt.Fprintf(tw, "Expiring soon\t%d\n", subs.ExpiringSoonCount)
	fmt.Fprintf(tw, "Monthly spend\t$%.2f\n", subs.MonthlyTotal)
	fmt.Fprintf(tw, "Yearly spend\t$%.2f\n", subs.YearlyTotal)
	return tw.Flush()
}

func (a *app) token(args []string) error {
	fs := newFlagSet("token")
	subject := fs.String("subject", "", "user id to embed")
	email := fs.String("email", "", "user email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *subject == "" {
		return fmt.Errorf("%w: token needs -subject", errUsage)
	}
	if a.cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret", domain.ErrConfigMissing)
	}
	token, err := security.NewTokenManager(a.cfg.Auth).GenerateAccessToken(*subject, *email, nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, token)
	return nil
}
