package curriculum

// Package curriculum reconstructs the nested chapter/item tree from the flat
// ordered record list the backend returns. Chapter records are positional
// delimiters on the wire, so sequence order is the only grouping signal.

import (
	"github.com/coursedeck/coursedeck/internal/model"
)

// Normalize folds the flat record sequence into chapter groups in a single
// left-to-right pass. A chapter record opens a new group; lecture, quiz and
// practice records append to the currently open group, creating an implicit
// unlabeled leading group if none is open yet. Unknown record classes are
// dropped. Order within a group is preserved exactly as received.
func Normalize(records []model.CurriculumRecord) []model.ChapterGroup {
	var groups []model.ChapterGroup

	for _, rec := range records {
		switch rec.Class {
		case model.ClassChapter:
			groups = append(groups, model.ChapterGroup{
				Index: rec.ObjectIndex,
				Title: rec.Title,
			})
		case model.ClassLecture, model.ClassQuiz, model.ClassPractice:
			if len(groups) == 0 {
				groups = append(groups, model.ChapterGroup{})
			}
			group := &groups[len(groups)-1]
			group.Items = append(group.Items, itemFromRecord(rec))
		default:
			// New backend record kinds fail closed: ignored, never an error.
		}
	}

	return groups
}

// itemFromRecord derives the renderable item for a non-chapter record.
// A lecture's display type is its asset type when present, else Article;
// quiz and practice records always render as the Quiz display type.
func itemFromRecord(rec model.CurriculumRecord) model.Item {
	item := model.Item{
		ID:          rec.ID,
		Index:       rec.ObjectIndex,
		Title:       rec.Title,
		Attachments: rec.SupplementaryAssets,
	}

	switch rec.Class {
	case model.ClassLecture:
		item.Kind = model.ItemKindLecture
		item.DisplayType = model.DisplayTypeArticle
		if rec.Asset != nil && rec.Asset.AssetType != "" {
			item.DisplayType = rec.Asset.AssetType
		}
	case model.ClassQuiz:
		item.Kind = model.ItemKindQuiz
		item.DisplayType = model.DisplayTypeQuiz
	case model.ClassPractice:
		item.Kind = model.ItemKindPractice
		item.DisplayType = model.DisplayTypeQuiz
	}

	return item
}
