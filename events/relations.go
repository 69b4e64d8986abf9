////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package events

import (
	"encoding/json"

	"github.com/forPelevin/gomoji"
	"github.com/pkg/errors"
)

// RelType identifies how one event relates to another.
type RelType string

const (
	RelAnnotation RelType = "m.annotation"
	RelReplace    RelType = "m.replace"
	RelReference  RelType = "m.reference"
	RelThread     RelType = "m.thread"
	RelReplyTo    RelType = "m.in_reply_to"
)

// Relation is a single cross-reference from this event to another. Key is
// only meaningful for annotations, where it holds the reaction emoji.
type Relation struct {
	Type    RelType `json:"rel_type"`
	EventID string  `json:"event_id"`
	Key     string  `json:"key,omitempty"`
}

// Relations is the aggregated set of cross-references attached to an event.
// The nil slice is the canonical empty set. A later enrichment pass may
// replace the set wholesale once reactions and edits referencing the event
// have been collected.
type Relations []Relation

// Annotations returns the annotation (reaction) relations in order.
func (r Relations) Annotations() []Relation {
	var out []Relation
	for _, rel := range r {
		if rel.Type == RelAnnotation {
			out = append(out, rel)
		}
	}
	return out
}

// Replaces returns the event ID this event replaces (an edit), or empty. The
// last replace relation wins.
func (r Relations) Replaces() string {
	id := ""
	for _, rel := range r {
		if rel.Type == RelReplace {
			id = rel.EventID
		}
	}
	return id
}

// ReplyTo returns the event ID this event replies to, or empty.
func (r Relations) ReplyTo() string {
	for _, rel := range r {
		if rel.Type == RelReplyTo {
			return rel.EventID
		}
	}
	return ""
}

// relationWire is the m.relates_to wire object. Replies nest under
// m.in_reply_to instead of using rel_type.
type relationWire struct {
	Type      RelType `json:"rel_type,omitempty"`
	EventID   string  `json:"event_id,omitempty"`
	Key       string  `json:"key,omitempty"`
	InReplyTo *struct {
		EventID string `json:"event_id"`
	} `json:"m.in_reply_to,omitempty"`
}

func (w relationWire) relations() Relations {
	var out Relations
	if w.Type != "" && w.EventID != "" {
		out = append(out, Relation{Type: w.Type, EventID: w.EventID, Key: w.Key})
	}
	if w.InReplyTo != nil && w.InReplyTo.EventID != "" {
		out = append(out, Relation{Type: RelReplyTo, EventID: w.InReplyTo.EventID})
	}
	return out
}

// UnmarshalJSON accepts either the single m.relates_to wire object or an
// already-aggregated array of relations.
func (r *Relations) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var list []Relation
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*r = list
		return nil
	}
	var w relationWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = w.relations()
	return nil
}

// MarshalJSON emits the single wire object when the set holds one relation
// and the aggregated array form otherwise.
func (r Relations) MarshalJSON() ([]byte, error) {
	if len(r) == 1 {
		rel := r[0]
		if rel.Type == RelReplyTo {
			w := relationWire{}
			w.InReplyTo = &struct {
				EventID string `json:"event_id"`
			}{EventID: rel.EventID}
			return json.Marshal(w)
		}
		return json.Marshal(relationWire{
			Type: rel.Type, EventID: rel.EventID, Key: rel.Key})
	}
	return json.Marshal([]Relation(r))
}

// InvalidAnnotation is returned when an annotation key is not a single emoji.
var InvalidAnnotation = errors.New("The annotation key is not valid, " +
	"it must be a single emoji")

// ValidateAnnotation checks that an annotation (reaction) key contains
// exactly one emoji and nothing else.
func ValidateAnnotation(key string) error {
	if len(gomoji.RemoveEmojis(key)) > 0 {
		return InvalidAnnotation
	}

	if len(gomoji.FindAll(key)) != 1 {
		return InvalidAnnotation
	}

	return nil
}
