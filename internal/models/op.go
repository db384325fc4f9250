package models

// Op is a single content edit. Exactly one field must be set:
// Retain skips n characters, Insert splices text in at the cursor,
// Delete removes n characters at the cursor.
type Op struct {
	Retain int    `json:"retain,omitempty"`
	Insert string `json:"insert,omitempty"`
	Delete int    `json:"delete,omitempty"`
}

// DocUpdate is a change applied to a document, fanned out to live
// subscribers of that document.
type DocUpdate struct {
	DocID   string `json:"doc_id"`
	Version int64  `json:"version"`
	Ops     []Op   `json:"ops"`
	ActorID string `json:"actor_id"`
}

func (o Op) IsValid() bool {
	set := 0
	if o.Retain > 0 {
		set++
	}
	if o.Insert != "" {
		set++
	}
	if o.Delete > 0 {
		set++
	}
	return set == 1
}
