package curriculum

import (
	"testing"

	"github.com/coursedeck/coursedeck/internal/model"
)

func chapter(index int, title string) model.CurriculumRecord {
	return model.CurriculumRecord{Class: model.ClassChapter, ObjectIndex: index, Title: title}
}

func lecture(id int64, title string, assetType string) model.CurriculumRecord {
	rec := model.CurriculumRecord{Class: model.ClassLecture, ID: id, Title: title}
	if assetType != "" {
		rec.Asset = &model.Asset{AssetType: assetType}
	}
	return rec
}

func TestNormalize_GroupsByChapterDelimiters(t *testing.T) {
	records := []model.CurriculumRecord{
		chapter(1, "Getting Started"),
		lecture(10, "Welcome", "Video"),
		lecture(11, "Setup", "Video"),
		chapter(2, "Deep Dive"),
		lecture(20, "Internals", "Video"),
	}

	groups := Normalize(records)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	if groups[0].Title != "Getting Started" || len(groups[0].Items) != 2 {
		t.Errorf("first group wrong: %+v", groups[0])
	}
	if groups[1].Title != "Deep Dive" || len(groups[1].Items) != 1 {
		t.Errorf("second group wrong: %+v", groups[1])
	}
	if groups[0].Items[0].ID != 10 || groups[0].Items[1].ID != 11 {
		t.Error("item order within a group must match fetch order")
	}
}

func TestNormalize_ImplicitLeadingGroup(t *testing.T) {
	records := []model.CurriculumRecord{
		lecture(1, "Orphan A", "Video"),
		lecture(2, "Orphan B", ""),
		chapter(1, "First Real Chapter"),
		lecture(3, "Homed", "Video"),
	}

	groups := Normalize(records)
	if len(groups) != 2 {
		t.Fatalf("expected implicit group plus one chapter, got %d groups", len(groups))
	}
	if groups[0].Title != "" || groups[0].Index != 0 {
		t.Errorf("leading group should be unlabeled, got %+v", groups[0])
	}
	if len(groups[0].Items) != 2 {
		t.Errorf("leading group should hold the orphans, got %d items", len(groups[0].Items))
	}
}

func TestNormalize_NoChaptersSingleGroup(t *testing.T) {
	records := []model.CurriculumRecord{
		lecture(1, "A", "Video"),
		{Class: model.ClassQuiz, ID: 2, Title: "B"},
		{Class: model.ClassPractice, ID: 3, Title: "C"},
	}

	groups := Normalize(records)
	if len(groups) != 1 {
		t.Fatalf("expected exactly one implicit group, got %d", len(groups))
	}
	if len(groups[0].Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(groups[0].Items))
	}
	for i, id := range []int64{1, 2, 3} {
		if groups[0].Items[i].ID != id {
			t.Errorf("item %d has ID %d, expected %d (original order)", i, groups[0].Items[i].ID, id)
		}
	}
}

func TestNormalize_UnknownKindsDropped(t *testing.T) {
	records := []model.CurriculumRecord{
		chapter(1, "Only Chapter"),
		{Class: "assessment", ID: 5, Title: "New Thing"},
		lecture(6, "Kept", "Video"),
	}

	groups := Normalize(records)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if len(groups[0].Items) != 1 || groups[0].Items[0].ID != 6 {
		t.Errorf("unknown record should be dropped silently, got %+v", groups[0].Items)
	}
}

func TestNormalize_EveryItemInExactlyOneGroup(t *testing.T) {
	records := []model.CurriculumRecord{
		lecture(1, "pre", "Video"),
		chapter(1, "One"),
		lecture(2, "a", "Video"),
		chapter(2, "Two"),
		{Class: model.ClassQuiz, ID: 3, Title: "q"},
		lecture(4, "b", ""),
	}

	groups := Normalize(records)

	seen := make(map[int64]int)
	total := 0
	for _, group := range groups {
		for _, item := range group.Items {
			seen[item.ID]++
			total++
		}
	}

	if total != 4 {
		t.Fatalf("expected 4 items across groups, got %d", total)
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("item %d appears in %d groups, expected exactly 1", id, count)
		}
	}
}

func TestNormalize_DisplayTypeDerivation(t *testing.T) {
	tests := []struct {
		name    string
		record  model.CurriculumRecord
		kind    model.ItemKind
		display string
	}{
		{"video lecture", lecture(1, "v", "Video"), model.ItemKindLecture, model.DisplayTypeVideo},
		{"lecture without asset", lecture(2, "a", ""), model.ItemKindLecture, model.DisplayTypeArticle},
		{"lecture with other asset", lecture(3, "e", "E-Book"), model.ItemKindLecture, "E-Book"},
		{"quiz", model.CurriculumRecord{Class: model.ClassQuiz, ID: 4}, model.ItemKindQuiz, model.DisplayTypeQuiz},
		{"practice renders as quiz", model.CurriculumRecord{Class: model.ClassPractice, ID: 5}, model.ItemKindPractice, model.DisplayTypeQuiz},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := Normalize([]model.CurriculumRecord{tt.record})
			if len(groups) != 1 || len(groups[0].Items) != 1 {
				t.Fatalf("unexpected normalization result: %+v", groups)
			}
			item := groups[0].Items[0]
			if item.Kind != tt.kind {
				t.Errorf("Kind = %s, expected %s", item.Kind, tt.kind)
			}
			if item.DisplayType != tt.display {
				t.Errorf("DisplayType = %s, expected %s", item.DisplayType, tt.display)
			}
		})
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if groups := Normalize(nil); len(groups) != 0 {
		t.Errorf("empty input should produce no groups, got %+v", groups)
	}
}

func TestNormalize_AttachmentsCarriedOver(t *testing.T) {
	rec := lecture(1, "With extras", "Video")
	rec.SupplementaryAssets = []model.Attachment{
		{ID: 100, Title: "Slides"},
		{ID: 101, Filename: "code.zip"},
	}

	groups := Normalize([]model.CurriculumRecord{rec})
	item := groups[0].Items[0]
	if len(item.Attachments) != 2 {
		t.Fatalf("expected 2 attachments, got %d", len(item.Attachments))
	}
	if item.Attachments[0].DisplayName() != "Slides" || item.Attachments[1].DisplayName() != "code.zip" {
		t.Errorf("attachment display names wrong: %+v", item.Attachments)
	}
}
