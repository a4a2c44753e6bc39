package editor

import "go-resume-builder/internal/domain"

// DropContext tags which nesting level a drag gesture operated on.
type DropContext string

const (
	DropSections DropContext = "sections"
	DropItems    DropContext = "items"
)

// DropEvent describes a completed drag gesture as reported by the
// client. Destination is nil when the user cancelled or dropped outside
// any target.
type DropEvent struct {
	Context     DropContext `json:"context"`
	SectionID   string      `json:"sectionId,omitempty"`
	Source      int         `json:"source"`
	Destination *int        `json:"destination"`
}

// ReorderIntent is the tagged union the two drag nesting levels decode
// into. Decoding happens once at the boundary; each variant dispatches
// to its own pure function.
type ReorderIntent interface {
	isReorderIntent()
}

type ReorderSectionsIntent struct {
	From int
	To   int
}

type ReorderItemsIntent struct {
	SectionID string
	From      int
	To        int
}

func (ReorderSectionsIntent) isReorderIntent() {}
func (ReorderItemsIntent) isReorderIntent()    {}

// DecodeDrop turns a drop event into a reorder intent. It returns
// ok=false for cancelled drops (nil destination) and unknown contexts;
// those gestures must not touch the document.
func DecodeDrop(ev DropEvent) (ReorderIntent, bool) {
	if ev.Destination == nil {
		return nil, false
	}
	switch ev.Context {
	case DropSections:
		return ReorderSectionsIntent{From: ev.Source, To: *ev.Destination}, true
	case DropItems:
		return ReorderItemsIntent{SectionID: ev.SectionID, From: ev.Source, To: *ev.Destination}, true
	}
	return nil, false
}

// ApplyReorder executes a decoded intent against the document. Invalid
// drops (stale section id, out-of-range index) leave the document
// untouched rather than failing: a drag gesture must never error out,
// only land or not land.
func ApplyReorder(doc domain.ResumeContent, intent ReorderIntent) domain.ResumeContent {
	switch in := intent.(type) {
	case ReorderSectionsIntent:
		out, err := ReorderSections(doc, in.From, in.To)
		if err != nil {
			return doc
		}
		return out

	case ReorderItemsIntent:
		idx := sectionIndex(doc, in.SectionID)
		if idx < 0 {
			// Section deleted mid-drag.
			return doc
		}
		items, err := ReorderItems(doc.Sections[idx].Items, in.From, in.To)
		if err != nil {
			return doc
		}
		out, err := SetSectionItems(doc, in.SectionID, items)
		if err != nil {
			return doc
		}
		return out
	}
	return doc
}
