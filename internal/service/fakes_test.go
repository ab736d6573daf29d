package service

import (
	"context"
	"fmt"
	"time"

	"github.com/paperdock/librarysync/internal/errs"
	"github.com/paperdock/librarysync/internal/model"
)

// fakeRepo is an in-memory RecordRepository for service tests.
type fakeRepo struct {
	docs  map[string]model.Document
	anns  map[string]model.Annotation
	colls map[string]model.Collection
	tags  map[string]model.Tag

	failOn string // method name forced to error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		docs:  map[string]model.Document{},
		anns:  map[string]model.Annotation{},
		colls: map[string]model.Collection{},
		tags:  map[string]model.Tag{},
	}
}

func (f *fakeRepo) fail(method string) error {
	if f.failOn == method {
		return fmt.Errorf("%s: forced failure", method)
	}
	return nil
}

func (f *fakeRepo) UpsertDocument(_ context.Context, d model.Document) (model.Document, bool, error) {
	if err := f.fail("UpsertDocument"); err != nil {
		return model.Document{}, false, err
	}
	if d.ID == "" {
		return model.Document{}, false, errs.ErrInvalidID
	}
	_, existed := f.docs[d.ID]
	f.docs[d.ID] = d
	return d, !existed, nil
}

func (f *fakeRepo) GetDocument(_ context.Context, id string) (*model.Document, error) {
	if err := f.fail("GetDocument"); err != nil {
		return nil, err
	}
	d, ok := f.docs[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &d, nil
}

func (f *fakeRepo) ListDocuments(_ context.Context, includeDeleted bool) ([]model.Document, error) {
	if err := f.fail("ListDocuments"); err != nil {
		return nil, err
	}
	var out []model.Document
	for _, d := range f.docs {
		if includeDeleted || !d.Deleted {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRepo) DocumentsModifiedSince(_ context.Context, since time.Time) ([]model.Document, error) {
	var out []model.Document
	for _, d := range f.docs {
		if d.Modified.After(since) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteDocument(_ context.Context, id string, hard bool) error {
	d, ok := f.docs[id]
	if !ok {
		return errs.ErrNotFound
	}
	if hard {
		delete(f.docs, id)
		return nil
	}
	d.Deleted = true
	d.Modified = time.Now().UTC()
	f.docs[id] = d
	return nil
}

func (f *fakeRepo) UpsertAnnotation(_ context.Context, a model.Annotation) (model.Annotation, error) {
	if a.ID == "" || a.DocumentID == "" {
		return model.Annotation{}, errs.ErrInvalidID
	}
	f.anns[a.ID] = a
	return a, nil
}

func (f *fakeRepo) GetAnnotation(_ context.Context, id string) (*model.Annotation, error) {
	a, ok := f.anns[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &a, nil
}

func (f *fakeRepo) ListAnnotations(_ context.Context, includeDeleted bool) ([]model.Annotation, error) {
	var out []model.Annotation
	for _, a := range f.anns {
		if includeDeleted || !a.Deleted {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) AnnotationsModifiedSince(_ context.Context, since time.Time) ([]model.Annotation, error) {
	var out []model.Annotation
	for _, a := range f.anns {
		if a.Modified.After(since) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteAnnotation(_ context.Context, id string, hard bool) error {
	a, ok := f.anns[id]
	if !ok {
		return errs.ErrNotFound
	}
	if hard {
		delete(f.anns, id)
		return nil
	}
	a.Deleted = true
	a.Modified = time.Now().UTC()
	f.anns[id] = a
	return nil
}

func (f *fakeRepo) UpsertCollection(_ context.Context, c model.Collection) (model.Collection, error) {
	if c.ID == "" {
		return model.Collection{}, errs.ErrInvalidID
	}
	f.colls[c.ID] = c
	return c, nil
}

func (f *fakeRepo) GetCollection(_ context.Context, id string) (*model.Collection, error) {
	c, ok := f.colls[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &c, nil
}

func (f *fakeRepo) ListCollections(_ context.Context, includeDeleted bool) ([]model.Collection, error) {
	var out []model.Collection
	for _, c := range f.colls {
		if includeDeleted || !c.Deleted {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) CollectionsModifiedSince(_ context.Context, since time.Time) ([]model.Collection, error) {
	var out []model.Collection
	for _, c := range f.colls {
		if c.Modified.After(since) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteCollection(_ context.Context, id string, hard bool) error {
	c, ok := f.colls[id]
	if !ok {
		return errs.ErrNotFound
	}
	if hard {
		delete(f.colls, id)
		return nil
	}
	c.Deleted = true
	c.Modified = time.Now().UTC()
	f.colls[id] = c
	return nil
}

func (f *fakeRepo) UpsertTag(_ context.Context, t model.Tag) (model.Tag, error) {
	if t.ID == "" {
		return model.Tag{}, errs.ErrInvalidID
	}
	f.tags[t.ID] = t
	return t, nil
}

func (f *fakeRepo) GetTag(_ context.Context, id string) (*model.Tag, error) {
	t, ok := f.tags[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &t, nil
}

func (f *fakeRepo) ListTags(_ context.Context, includeDeleted bool) ([]model.Tag, error) {
	var out []model.Tag
	for _, t := range f.tags {
		if includeDeleted || !t.Deleted {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRepo) TagsModifiedSince(_ context.Context, since time.Time) ([]model.Tag, error) {
	var out []model.Tag
	for _, t := range f.tags {
		if t.Modified.After(since) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteTag(_ context.Context, id string, hard bool) error {
	t, ok := f.tags[id]
	if !ok {
		return errs.ErrNotFound
	}
	if hard {
		delete(f.tags, id)
		return nil
	}
	t.Deleted = true
	t.Modified = time.Now().UTC()
	f.tags[id] = t
	return nil
}

func (f *fakeRepo) Counts(_ context.Context) (model.Counts, error) {
	if err := f.fail("Counts"); err != nil {
		return model.Counts{}, err
	}
	var c model.Counts
	for _, d := range f.docs {
		if !d.Deleted {
			c.Documents++
		}
	}
	for _, a := range f.anns {
		if !a.Deleted {
			c.Annotations++
		}
	}
	for _, co := range f.colls {
		if !co.Deleted {
			c.Collections++
		}
	}
	for _, t := range f.tags {
		if !t.Deleted {
			c.Tags++
		}
	}
	return c, nil
}

func (f *fakeRepo) PurgeDeletedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for id, a := range f.anns {
		if a.Deleted && a.Modified.Before(cutoff) {
			delete(f.anns, id)
			n++
		}
	}
	for id, d := range f.docs {
		if d.Deleted && d.Modified.Before(cutoff) {
			delete(f.docs, id)
			n++
		}
	}
	for id, c := range f.colls {
		if c.Deleted && c.Modified.Before(cutoff) {
			delete(f.colls, id)
			n++
		}
	}
	for id, t := range f.tags {
		if t.Deleted && t.Modified.Before(cutoff) {
			delete(f.tags, id)
			n++
		}
	}
	return n, nil
}

// fakeBlob is an in-memory blob.Store.
type fakeBlob struct {
	files   map[string][]byte
	saveErr error
}

func newFakeBlob() *fakeBlob {
	return &fakeBlob{files: map[string][]byte{}}
}

func (f *fakeBlob) Save(_ context.Context, id string, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	f.files[id] = cp
	return nil
}

func (f *fakeBlob) Read(_ context.Context, id string) ([]byte, error) {
	data, ok := f.files[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return data, nil
}

func (f *fakeBlob) Delete(_ context.Context, id string) (bool, error) {
	_, ok := f.files[id]
	delete(f.files, id)
	return ok, nil
}

func (f *fakeBlob) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.files[id]
	return ok, nil
}

func (f *fakeBlob) Size(_ context.Context, id string) (int64, error) {
	data, ok := f.files[id]
	if !ok {
		return 0, errs.ErrNotFound
	}
	return int64(len(data)), nil
}
