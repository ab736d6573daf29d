// Package model defines domain entities used by services and repositories.
package model

import "time"

// Kind identifies one of the four synchronized entity kinds.
type Kind string

const (
	KindDocument   Kind = "document"
	KindAnnotation Kind = "annotation"
	KindCollection Kind = "collection"
	KindTag        Kind = "tag"
)

// AnnotationType enumerates supported annotation shapes.
type AnnotationType string

const (
	AnnotationHighlight     AnnotationType = "highlight"
	AnnotationUnderline     AnnotationType = "underline"
	AnnotationStrikethrough AnnotationType = "strikethrough"
	AnnotationTextNote      AnnotationType = "text_note"
	AnnotationStickyNote    AnnotationType = "sticky_note"
	AnnotationDrawing       AnnotationType = "drawing"
	AnnotationShape         AnnotationType = "shape"
	AnnotationBookmark      AnnotationType = "bookmark"
)

// CollectionType distinguishes plain folders from rule-based collections.
type CollectionType string

const (
	CollectionFolder CollectionType = "folder"
	CollectionSmart  CollectionType = "smart"
)

// Document is a paper with its metadata and reading state.
// Modified drives both delta sync and conflict resolution.
type Document struct {
	ID                 string
	Title              string
	Authors            []string // ordered
	Abstract           string
	DOI                string
	PublishedDate      string
	Journal            string
	Volume             string
	Issue              string
	Pages              string
	Keywords           []string
	PageCount          int
	FileSize           int64
	Thumbnail          []byte
	ReadingProgress    float64 // 0.0 - 1.0
	CurrentPage        int
	LastOpened         time.Time
	ReadingTimeSeconds int64
	ImportedAt         time.Time
	Metadata           map[string]string
	Tags               []string // legacy plain-text tags
	TagIDs             []string
	CollectionIDs      []string
	Modified           time.Time
	Deleted            bool
}

// Rect is an annotation's bounding box in page coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Annotation belongs to a document; deleting the document hard-deletes it.
type Annotation struct {
	ID           string
	DocumentID   string
	Type         AnnotationType
	Color        string
	Page         int
	Bounds       Rect
	SelectedText string
	Note         string
	DrawingData  string
	Tags         []string
	Created      time.Time
	Modified     time.Time
	Deleted      bool
}

// Collection groups documents, optionally nested via ParentID.
type Collection struct {
	ID          string
	Name        string
	Type        CollectionType
	Color       string
	Icon        string
	ParentID    string
	DocumentIDs []string // ordered
	SmartFilter string   // serialized rule payload for smart collections
	Notes       string
	SortOrder   int
	Modified    time.Time
	Deleted     bool
}

// Tag is a lower-case label with a usage counter.
type Tag struct {
	ID          string
	Name        string
	Color       string
	UsageCount  int
	DocumentIDs []string
	Modified    time.Time
	Deleted     bool
}

// Changes is the per-kind result of a pull or a modified-since query.
type Changes struct {
	Documents   []Document
	Annotations []Annotation
	Collections []Collection
	Tags        []Tag
}

// Deletions carries per-kind id lists for soft deletion during push,
// and echoes deleted ids back during pull.
type Deletions struct {
	DocumentIDs   []string
	AnnotationIDs []string
	CollectionIDs []string
	TagIDs        []string
}

// Conflict records one rejected write during push.
type Conflict struct {
	EntityType Kind
	EntityID   string
	Resolution string
	Reason     string
}

// ResolutionServerWins is the only resolution the server currently reports.
const ResolutionServerWins = "server_wins"

// Counts reports live (non-deleted) entity totals for Status.
type Counts struct {
	Documents   int64
	Annotations int64
	Collections int64
	Tags        int64
}
