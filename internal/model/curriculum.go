package model

// Wire-level record classes. The backend returns the curriculum as one flat
// ordered list where chapter records act as delimiters, not containers.
const (
	ClassChapter  = "chapter"
	ClassLecture  = "lecture"
	ClassQuiz     = "quiz"
	ClassPractice = "practice"
)

// Asset describes the primary asset of a lecture record.
type Asset struct {
	AssetType string `json:"asset_type"`
}

// Attachment is a supplementary asset belonging to a lecture, quiz or
// practice item. It is never addressable outside its parent item.
type Attachment struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
}

// DisplayName returns the attachment title, falling back to its filename.
func (a Attachment) DisplayName() string {
	if a.Title != "" {
		return a.Title
	}
	if a.Filename != "" {
		return a.Filename
	}
	return "Asset"
}

// CurriculumRecord is one entry of the flat curriculum list, discriminated by
// Class. Fields not relevant for a given class are simply absent on the wire.
type CurriculumRecord struct {
	Class               string       `json:"_class"`
	ID                  int64        `json:"id"`
	Title               string       `json:"title"`
	ObjectIndex         int          `json:"object_index"`
	Asset               *Asset       `json:"asset"`
	SupplementaryAssets []Attachment `json:"supplementary_assets"`
}

// ItemKind identifies the normalized kind of a curriculum item.
type ItemKind string

const (
	ItemKindLecture  ItemKind = "lecture"
	ItemKindQuiz     ItemKind = "quiz"
	ItemKindPractice ItemKind = "practice"
)

// Display types used for iconography and action rendering.
const (
	DisplayTypeVideo   = "Video"
	DisplayTypeArticle = "Article"
	DisplayTypeQuiz    = "Quiz"
)

// Item is a normalized curriculum entry ready for rendering.
type Item struct {
	ID          int64
	Index       int // object index as reported by the backend, 0 if unknown
	Title       string
	Kind        ItemKind
	DisplayType string
	Attachments []Attachment
}

// IsVideo reports whether the item renders a downloadable video lecture.
func (it Item) IsVideo() bool {
	return it.DisplayType == DisplayTypeVideo
}

// Icon returns the glyph shown next to the item title.
func (it Item) Icon() string {
	switch it.DisplayType {
	case DisplayTypeVideo:
		return "▶️"
	case DisplayTypeArticle:
		return "📄"
	case DisplayTypeQuiz:
		return "❓"
	default:
		return "📎"
	}
}

// ChapterGroup is one chapter heading with the items that follow it in fetch
// order. Index is 0 when the backend did not report one, and both Index and
// Title are zero for the implicit leading group.
type ChapterGroup struct {
	Index int
	Title string
	Items []Item
}
