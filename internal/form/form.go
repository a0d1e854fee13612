package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"trackr/backend/internal/repository"
	"trackr/backend/internal/storage"
)

var (
	// ErrBusy is returned while a previous submission is still running.
	ErrBusy = errors.New("form submission in progress")
	// ErrRequired is returned when a required field is empty.
	ErrRequired = errors.New("required field missing")
	// ErrSubmitFailed wraps any upload or save failure.
	ErrSubmitFailed = errors.New("save failed")
)

// Control is a rendered field with its starting value.
type Control struct {
	Field
	Value any `json:"value"`
}

// OptionLoader returns the select options of a table.
type OptionLoader interface {
	Options(ctx context.Context, table string) ([]repository.Option, error)
}

// OptionLoaderFunc adapts a function to OptionLoader.
type OptionLoaderFunc func(ctx context.Context, table string) ([]repository.Option, error)

func (f OptionLoaderFunc) Options(ctx context.Context, table string) ([]repository.Option, error) {
	return f(ctx, table)
}

// Render builds one control per field. Tables referenced by select fields
// are loaded at most once per call.
func Render(ctx context.Context, fields []Field, initial Record, loader OptionLoader) ([]Control, error) {
	loaded := map[string][]repository.Option{}
	controls := make([]Control, 0, len(fields))
	for _, f := range fields {
		c := Control{Field: f}
		path := f.Name
		if f.ValueFrom != "" {
			path = f.ValueFrom
		}
		c.Value = Lookup(initial, path)
		if c.Value == nil {
			c.Value = zeroValue(f.Kind)
		}

		if f.Table != "" && f.Options == nil && loader != nil {
			opts, ok := loaded[f.Table]
			if !ok {
				var err error
				opts, err = loader.Options(ctx, f.Table)
				if err != nil {
					return nil, fmt.Errorf("load %s options: %w", f.Table, err)
				}
				loaded[f.Table] = opts
			}
			c.Options = opts
		}
		controls = append(controls, c)
	}
	return controls, nil
}

func zeroValue(k Kind) any {
	switch k {
	case KindNumber, KindYear:
		return 0
	case KindMultiselect:
		return []any{}
	}
	return ""
}

// File is an image picked for an image field.
type File struct {
	Filename string
	Content  io.Reader
}

// SubmitFunc saves the final payload.
type SubmitFunc func(ctx context.Context, payload Record) error

// Form submits values for a fixed set of fields. Only one submission runs
// at a time.
type Form struct {
	fields    []Field
	store     storage.Store
	onSuccess func(Record)
	busy      atomic.Bool
	now       func() time.Time
}

// New returns a form. onSuccess may be nil.
func New(fields []Field, store storage.Store, onSuccess func(Record)) *Form {
	return &Form{fields: fields, store: store, onSuccess: onSuccess, now: time.Now}
}

func (f *Form) Fields() []Field { return f.fields }

// Busy reports whether a submission is running.
func (f *Form) Busy() bool { return f.busy.Load() }

// Submit checks required fields, uploads picked images and substitutes
// their public URLs, then calls save and the success hook.
func (f *Form) Submit(ctx context.Context, values Record, files map[string]File, save SubmitFunc) (Record, error) {
	if !f.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer f.busy.Store(false)

	payload := make(Record, len(values))
	for k, v := range values {
		payload[k] = v
	}

	for _, field := range f.fields {
		if !field.Required {
			continue
		}
		if _, picked := files[field.Name]; field.Kind == KindImage && picked {
			continue
		}
		if isEmpty(payload[field.Name]) {
			return nil, fmt.Errorf("%w: %s", ErrRequired, field.Name)
		}
	}

	for _, field := range f.fields {
		if field.Kind != KindImage {
			continue
		}
		file, ok := files[field.Name]
		if !ok {
			continue
		}
		name := storage.ObjectName(f.now(), file.Filename)
		path, err := f.store.Upload(ctx, field.Bucket, name, file.Content)
		if err != nil {
			return nil, fmt.Errorf("%w: upload %s: %w", ErrSubmitFailed, field.Name, err)
		}
		payload[field.Name] = f.store.PublicURL(field.Bucket, path)
	}

	if err := save(ctx, payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	if f.onSuccess != nil {
		f.onSuccess(payload)
	}
	return payload, nil
}
