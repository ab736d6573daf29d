// Package convert maps between protobuf wire messages and domain entities.
package convert

import (
	"fmt"
	"time"

	pb "github.com/paperdock/librarysync/gen/go/librarysync/v1"
	"github.com/paperdock/librarysync/internal/model"
)

// Wire timestamps are ISO-8601 with millisecond precision, UTC.
const wireTime = "2006-01-02T15:04:05.000Z"

// FormatTime renders a timestamp for the wire; zero becomes "".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(wireTime)
}

// ParseTime accepts the canonical format plus full RFC 3339 from older
// clients; "" parses to the zero time.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(wireTime, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, s)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t.UTC(), nil
}

// --- Document ---

func ToProtoDocument(d model.Document) *pb.Document {
	return &pb.Document{
		Id:                 d.ID,
		Title:              d.Title,
		Authors:            d.Authors,
		Abstract:           d.Abstract,
		Doi:                d.DOI,
		PublishedDate:      d.PublishedDate,
		Journal:            d.Journal,
		Volume:             d.Volume,
		Issue:              d.Issue,
		Pages:              d.Pages,
		Keywords:           d.Keywords,
		PageCount:          int32(d.PageCount),
		FileSize:           d.FileSize,
		Thumbnail:          d.Thumbnail,
		ReadingProgress:    d.ReadingProgress,
		CurrentPage:        int32(d.CurrentPage),
		LastOpened:         FormatTime(d.LastOpened),
		ReadingTimeSeconds: d.ReadingTimeSeconds,
		ImportedAt:         FormatTime(d.ImportedAt),
		Metadata:           d.Metadata,
		Tags:               d.Tags,
		TagIds:             d.TagIDs,
		CollectionIds:      d.CollectionIDs,
		Modified:           FormatTime(d.Modified),
		IsDeleted:          d.Deleted,
	}
}

func FromProtoDocument(in *pb.Document) (model.Document, error) {
	if in == nil {
		return model.Document{}, fmt.Errorf("nil document")
	}
	lastOpened, err := ParseTime(in.GetLastOpened())
	if err != nil {
		return model.Document{}, fmt.Errorf("last_opened: %w", err)
	}
	importedAt, err := ParseTime(in.GetImportedAt())
	if err != nil {
		return model.Document{}, fmt.Errorf("imported_at: %w", err)
	}
	modified, err := ParseTime(in.GetModified())
	if err != nil {
		return model.Document{}, fmt.Errorf("modified: %w", err)
	}
	return model.Document{
		ID:                 in.GetId(),
		Title:              in.GetTitle(),
		Authors:            in.GetAuthors(),
		Abstract:           in.GetAbstract(),
		DOI:                in.GetDoi(),
		PublishedDate:      in.GetPublishedDate(),
		Journal:            in.GetJournal(),
		Volume:             in.GetVolume(),
		Issue:              in.GetIssue(),
		Pages:              in.GetPages(),
		Keywords:           in.GetKeywords(),
		PageCount:          int(in.GetPageCount()),
		FileSize:           in.GetFileSize(),
		Thumbnail:          in.GetThumbnail(),
		ReadingProgress:    in.GetReadingProgress(),
		CurrentPage:        int(in.GetCurrentPage()),
		LastOpened:         lastOpened,
		ReadingTimeSeconds: in.GetReadingTimeSeconds(),
		ImportedAt:         importedAt,
		Metadata:           in.GetMetadata(),
		Tags:               in.GetTags(),
		TagIDs:             in.GetTagIds(),
		CollectionIDs:      in.GetCollectionIds(),
		Modified:           modified,
		Deleted:            in.GetIsDeleted(),
	}, nil
}

// --- Annotation ---

func ToProtoAnnotation(a model.Annotation) *pb.Annotation {
	return &pb.Annotation{
		Id:           a.ID,
		DocumentId:   a.DocumentID,
		Type:         string(a.Type),
		Color:        a.Color,
		Page:         int32(a.Page),
		X:            a.Bounds.X,
		Y:            a.Bounds.Y,
		Width:        a.Bounds.Width,
		Height:       a.Bounds.Height,
		SelectedText: a.SelectedText,
		Note:         a.Note,
		DrawingData:  a.DrawingData,
		Tags:         a.Tags,
		Created:      FormatTime(a.Created),
		Modified:     FormatTime(a.Modified),
		IsDeleted:    a.Deleted,
	}
}

func FromProtoAnnotation(in *pb.Annotation) (model.Annotation, error) {
	if in == nil {
		return model.Annotation{}, fmt.Errorf("nil annotation")
	}
	created, err := ParseTime(in.GetCreated())
	if err != nil {
		return model.Annotation{}, fmt.Errorf("created: %w", err)
	}
	modified, err := ParseTime(in.GetModified())
	if err != nil {
		return model.Annotation{}, fmt.Errorf("modified: %w", err)
	}
	return model.Annotation{
		ID:         in.GetId(),
		DocumentID: in.GetDocumentId(),
		Type:       model.AnnotationType(in.GetType()),
		Color:      in.GetColor(),
		Page:       int(in.GetPage()),
		Bounds: model.Rect{
			X:      in.GetX(),
			Y:      in.GetY(),
			Width:  in.GetWidth(),
			Height: in.GetHeight(),
		},
		SelectedText: in.GetSelectedText(),
		Note:         in.GetNote(),
		DrawingData:  in.GetDrawingData(),
		Tags:         in.GetTags(),
		Created:      created,
		Modified:     modified,
		Deleted:      in.GetIsDeleted(),
	}, nil
}

// --- Collection ---

func ToProtoCollection(c model.Collection) *pb.Collection {
	return &pb.Collection{
		Id:          c.ID,
		Name:        c.Name,
		Type:        string(c.Type),
		Color:       c.Color,
		Icon:        c.Icon,
		ParentId:    c.ParentID,
		DocumentIds: c.DocumentIDs,
		SmartFilter: c.SmartFilter,
		Notes:       c.Notes,
		SortOrder:   int32(c.SortOrder),
		Modified:    FormatTime(c.Modified),
		IsDeleted:   c.Deleted,
	}
}

func FromProtoCollection(in *pb.Collection) (model.Collection, error) {
	if in == nil {
		return model.Collection{}, fmt.Errorf("nil collection")
	}
	modified, err := ParseTime(in.GetModified())
	if err != nil {
		return model.Collection{}, fmt.Errorf("modified: %w", err)
	}
	return model.Collection{
		ID:          in.GetId(),
		Name:        in.GetName(),
		Type:        model.CollectionType(in.GetType()),
		Color:       in.GetColor(),
		Icon:        in.GetIcon(),
		ParentID:    in.GetParentId(),
		DocumentIDs: in.GetDocumentIds(),
		SmartFilter: in.GetSmartFilter(),
		Notes:       in.GetNotes(),
		SortOrder:   int(in.GetSortOrder()),
		Modified:    modified,
		Deleted:     in.GetIsDeleted(),
	}, nil
}

// --- Tag ---

func ToProtoTag(t model.Tag) *pb.Tag {
	return &pb.Tag{
		Id:          t.ID,
		Name:        t.Name,
		Color:       t.Color,
		UsageCount:  int32(t.UsageCount),
		DocumentIds: t.DocumentIDs,
		Modified:    FormatTime(t.Modified),
		IsDeleted:   t.Deleted,
	}
}

func FromProtoTag(in *pb.Tag) (model.Tag, error) {
	if in == nil {
		return model.Tag{}, fmt.Errorf("nil tag")
	}
	modified, err := ParseTime(in.GetModified())
	if err != nil {
		return model.Tag{}, fmt.Errorf("modified: %w", err)
	}
	return model.Tag{
		ID:          in.GetId(),
		Name:        in.GetName(),
		Color:       in.GetColor(),
		UsageCount:  int(in.GetUsageCount()),
		DocumentIDs: in.GetDocumentIds(),
		Modified:    modified,
		Deleted:     in.GetIsDeleted(),
	}, nil
}

// --- Batches ---

func ToProtoChanges(ch model.Changes) ([]*pb.Document, []*pb.Annotation, []*pb.Collection, []*pb.Tag) {
	docs := make([]*pb.Document, 0, len(ch.Documents))
	for _, d := range ch.Documents {
		docs = append(docs, ToProtoDocument(d))
	}
	anns := make([]*pb.Annotation, 0, len(ch.Annotations))
	for _, a := range ch.Annotations {
		anns = append(anns, ToProtoAnnotation(a))
	}
	colls := make([]*pb.Collection, 0, len(ch.Collections))
	for _, c := range ch.Collections {
		colls = append(colls, ToProtoCollection(c))
	}
	tags := make([]*pb.Tag, 0, len(ch.Tags))
	for _, t := range ch.Tags {
		tags = append(tags, ToProtoTag(t))
	}
	return docs, anns, colls, tags
}

func FromProtoChanges(docs []*pb.Document, anns []*pb.Annotation, colls []*pb.Collection, tags []*pb.Tag) (model.Changes, error) {
	var ch model.Changes
	ch.Documents = make([]model.Document, 0, len(docs))
	for i, d := range docs {
		m, err := FromProtoDocument(d)
		if err != nil {
			return model.Changes{}, fmt.Errorf("document[%d]: %w", i, err)
		}
		ch.Documents = append(ch.Documents, m)
	}
	ch.Annotations = make([]model.Annotation, 0, len(anns))
	for i, a := range anns {
		m, err := FromProtoAnnotation(a)
		if err != nil {
			return model.Changes{}, fmt.Errorf("annotation[%d]: %w", i, err)
		}
		ch.Annotations = append(ch.Annotations, m)
	}
	ch.Collections = make([]model.Collection, 0, len(colls))
	for i, c := range colls {
		m, err := FromProtoCollection(c)
		if err != nil {
			return model.Changes{}, fmt.Errorf("collection[%d]: %w", i, err)
		}
		ch.Collections = append(ch.Collections, m)
	}
	ch.Tags = make([]model.Tag, 0, len(tags))
	for i, t := range tags {
		m, err := FromProtoTag(t)
		if err != nil {
			return model.Changes{}, fmt.Errorf("tag[%d]: %w", i, err)
		}
		ch.Tags = append(ch.Tags, m)
	}
	return ch, nil
}

func ToProtoDeletions(d model.Deletions) *pb.Deletions {
	return &pb.Deletions{
		DocumentIds:   d.DocumentIDs,
		AnnotationIds: d.AnnotationIDs,
		CollectionIds: d.CollectionIDs,
		TagIds:        d.TagIDs,
	}
}

func FromProtoDeletions(in *pb.Deletions) model.Deletions {
	if in == nil {
		return model.Deletions{}
	}
	return model.Deletions{
		DocumentIDs:   in.GetDocumentIds(),
		AnnotationIDs: in.GetAnnotationIds(),
		CollectionIDs: in.GetCollectionIds(),
		TagIDs:        in.GetTagIds(),
	}
}

func ToProtoConflicts(cs []model.Conflict) []*pb.Conflict {
	out := make([]*pb.Conflict, 0, len(cs))
	for _, c := range cs {
		out = append(out, &pb.Conflict{
			EntityType: string(c.EntityType),
			EntityId:   c.EntityID,
			Resolution: c.Resolution,
			Reason:     c.Reason,
		})
	}
	return out
}
