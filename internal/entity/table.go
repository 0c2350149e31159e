package entity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/negociacion/admin/internal/apiclient"
)

// ErrCancelled is returned when the user declines a confirmation prompt.
var ErrCancelled = errors.New("cancelled by user")

// Endpoints addresses a record type's REST resources.
type Endpoints[K comparable] struct {
	List   string
	Create string
	Edit   func(K) string
	Delete func(K) string
}

// Messages configures which failures are shown to the user. An empty message
// means the failure is only logged.
type Messages struct {
	LoadFailed   string
	CreateFailed string
	EditFailed   string
	DeleteFailed string
}

// Config describes one record type: its wire shape, endpoints, form fields and
// error policy.
type Config[T any, F any, K comparable] struct {
	Name      string
	Endpoints Endpoints[K]
	List      ListDecoder[T]

	Key      func(T) K
	FormOf   func(T) F
	Fields   func(F) []apiclient.Field
	SetField func(form *F, name, value string) error

	AttachmentField string

	// Extra appends mode-dependent fields after the form fields.
	Extra func(mode Mode[K], form F, now time.Time) []apiclient.Field
	// Validate runs before a create request is issued.
	Validate func(F) error
	// Created builds the alert shown after a successful create.
	Created func(T) string

	ConfirmEdit   string
	ConfirmDelete string
	Messages      Messages
}

// Table holds the in-memory list of one record type together with a single
// form under composition.
type Table[T any, F any, K comparable] struct {
	cfg     Config[T, F, K]
	api     *apiclient.Client
	view    View
	confirm Confirmer
	logger  *slog.Logger
	now     func() time.Time

	mu      sync.Mutex
	items   []T
	form    F
	pending *apiclient.Attachment
	mode    Mode[K]
	loading bool
	loadErr string
}

// New creates an empty table in create mode.
func New[T any, F any, K comparable](api *apiclient.Client, cfg Config[T, F, K], deps Deps) *Table[T, F, K] {
	deps = deps.withDefaults()
	if cfg.List == nil {
		cfg.List = ArrayList[T]
	}
	return &Table[T, F, K]{
		cfg:     cfg,
		api:     api,
		view:    deps.View,
		confirm: deps.Confirm,
		logger:  deps.Logger.With("table", cfg.Name),
		now:     deps.Now,
		items:   []T{},
		mode:    CreateMode[K]{},
		loading: true,
	}
}

// Load fetches the full list. On failure the current list is kept.
func (t *Table[T, F, K]) Load(ctx context.Context) error {
	items, err := t.cfg.List(ctx, t.api, t.cfg.Endpoints.List)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = false

	if err != nil {
		t.logger.Error("failed to load records", "error", err)
		t.loadErr = t.cfg.Messages.LoadFailed
		return fmt.Errorf("loading %s: %w", t.cfg.Name, err)
	}

	if items == nil {
		items = []T{}
	}
	t.items = items
	t.loadErr = ""
	return nil
}

// SetField merges a single field value into the form.
func (t *Table[T, F, K]) SetField(name, value string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	form := t.form
	if err := t.cfg.SetField(&form, name, value); err != nil {
		return err
	}
	t.form = form
	return nil
}

// Attach replaces the pending attachment. Nil clears it.
func (t *Table[T, F, K]) Attach(a *apiclient.Attachment) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = a
}

// BeginEdit switches to edit mode for record and copies its scalar fields
// into the form. The pending attachment is cleared, so the server keeps the
// stored one unless a new file is attached.
func (t *Table[T, F, K]) BeginEdit(record T) {
	t.mu.Lock()
	t.mode = EditMode[K]{Key: t.cfg.Key(record)}
	t.form = t.cfg.FormOf(record)
	t.pending = nil
	t.mu.Unlock()

	t.view.ScrollToTop()
}

// Reset clears the form, the attachment and the edit mode.
func (t *Table[T, F, K]) Reset() {
	t.mu.Lock()
	t.reset()
	t.mu.Unlock()

	t.view.ClearFileInput()
}

func (t *Table[T, F, K]) reset() {
	var zero F
	t.form = zero
	t.pending = nil
	t.mode = CreateMode[K]{}
}

// Submit creates or edits a record depending on the current mode.
func (t *Table[T, F, K]) Submit(ctx context.Context) error {
	t.mu.Lock()
	mode, form, pending := t.mode, t.form, t.pending
	t.mu.Unlock()

	switch m := mode.(type) {
	case CreateMode[K]:
		return t.create(ctx, form, pending)
	case EditMode[K]:
		return t.edit(ctx, m.Key, form, pending)
	default:
		panic(fmt.Sprintf("entity: unknown mode %T", mode))
	}
}

func (t *Table[T, F, K]) create(ctx context.Context, form F, pending *apiclient.Attachment) error {
	if t.cfg.Validate != nil {
		if err := t.cfg.Validate(form); err != nil {
			t.view.Alert(err.Error())
			return err
		}
	}

	payload := t.payload(CreateMode[K]{}, form, pending)
	resp, err := apiclient.Fetch[Envelope[T]](ctx, t.api, t.cfg.Endpoints.Create,
		apiclient.Method(http.MethodPost),
		apiclient.MultipartBody(payload),
	)
	if err != nil {
		t.fail("failed to create record", t.cfg.Messages.CreateFailed, err)
		return fmt.Errorf("creating %s: %w", t.cfg.Name, err)
	}

	t.mu.Lock()
	t.items = append(t.items, resp.Data)
	t.reset()
	t.mu.Unlock()

	t.view.ClearFileInput()
	t.logger.Info("record created", "key", t.cfg.Key(resp.Data))
	if t.cfg.Created != nil {
		t.view.Alert(t.cfg.Created(resp.Data))
	}
	return nil
}

func (t *Table[T, F, K]) edit(ctx context.Context, key K, form F, pending *apiclient.Attachment) error {
	if t.cfg.ConfirmEdit != "" && !t.confirm.Confirm(t.cfg.ConfirmEdit) {
		return ErrCancelled
	}

	payload := t.payload(EditMode[K]{Key: key}, form, pending)
	resp, err := apiclient.Fetch[Envelope[T]](ctx, t.api, t.cfg.Endpoints.Edit(key),
		apiclient.Method(http.MethodPut),
		apiclient.MultipartBody(payload),
	)
	if err != nil {
		t.fail("failed to edit record", t.cfg.Messages.EditFailed, err, "key", key)
		return fmt.Errorf("editing %s %v: %w", t.cfg.Name, key, err)
	}

	t.mu.Lock()
	for i := range t.items {
		if t.cfg.Key(t.items[i]) == key {
			t.items[i] = resp.Data
		}
	}
	t.reset()
	t.mu.Unlock()

	t.view.ClearFileInput()
	t.logger.Info("record edited", "key", key)
	return nil
}

// Delete removes the record identified by key after user confirmation.
func (t *Table[T, F, K]) Delete(ctx context.Context, key K) error {
	if t.cfg.ConfirmDelete != "" && !t.confirm.Confirm(t.cfg.ConfirmDelete) {
		return ErrCancelled
	}

	err := t.api.Do(ctx, t.cfg.Endpoints.Delete(key), apiclient.Method(http.MethodDelete))
	if err != nil {
		t.fail("failed to delete record", t.cfg.Messages.DeleteFailed, err, "key", key)
		return fmt.Errorf("deleting %s %v: %w", t.cfg.Name, key, err)
	}

	t.mu.Lock()
	t.items = slices.DeleteFunc(t.items, func(item T) bool {
		return t.cfg.Key(item) == key
	})
	t.mu.Unlock()

	t.logger.Info("record deleted", "key", key)
	return nil
}

func (t *Table[T, F, K]) payload(mode Mode[K], form F, pending *apiclient.Attachment) *apiclient.Form {
	f := apiclient.NewForm(t.cfg.Fields(form)...)
	if t.cfg.Extra != nil {
		for _, fld := range t.cfg.Extra(mode, form, t.now()) {
			f.Add(fld.Name, fld.Value)
		}
	}
	if pending != nil {
		f.Attach(t.cfg.AttachmentField, pending)
	}
	return f
}

func (t *Table[T, F, K]) fail(logMsg, alert string, err error, attrs ...any) {
	t.logger.Error(logMsg, append([]any{"error", err}, attrs...)...)
	if alert != "" {
		t.view.Alert(alert)
	}
}

// Items returns a copy of the current list.
func (t *Table[T, F, K]) Items() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.items)
}

// Find returns the record with the given key.
func (t *Table[T, F, K]) Find(key K) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, item := range t.items {
		if t.cfg.Key(item) == key {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Form returns the form under composition.
func (t *Table[T, F, K]) Form() F {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.form
}

// Mode returns the current form mode.
func (t *Table[T, F, K]) Mode() Mode[K] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}

// Pending returns the attachment waiting to be uploaded, if any.
func (t *Table[T, F, K]) Pending() *apiclient.Attachment {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

// Loading reports whether the first load has not finished yet.
func (t *Table[T, F, K]) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// LoadError returns the inline message of the last failed load, if the
// table exposes one.
func (t *Table[T, F, K]) LoadError() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loadErr
}
