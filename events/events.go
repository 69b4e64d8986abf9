////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

// Package events models the closed set of timeline event records a client
// session can hold: a common envelope, two wrapper kinds (room and state),
// and one content shape per event type. Instances are built once by Parse
// and are immutable afterwards, except for the relation set, which the
// aggregation pass may replace through the accessor layer.
//
// Callers outside this module read fields through the accessors package
// rather than switching on content shapes directly, so that field semantics
// stay defined in one place.
package events

import "encoding/json"

// TimelineEvent is the closed union of event records. Only RoomEvent and
// StateEvent satisfy it.
type TimelineEvent interface {
	json.Marshaler

	// GetEnvelope returns the fields common to every event kind.
	GetEnvelope() *Envelope

	// GetContent returns the active content shape.
	GetContent() Content

	sealedEvent()
}

// RoomEvent is a transient timeline message: an envelope plus one content
// shape.
type RoomEvent struct {
	Envelope
	Content Content
}

func (ev *RoomEvent) GetEnvelope() *Envelope { return &ev.Envelope }
func (ev *RoomEvent) GetContent() Content    { return ev.Content }
func (ev *RoomEvent) sealedEvent()           {}

// StateEvent is a persistent room property change. It carries everything a
// RoomEvent does plus the state key and, optionally, the content the change
// replaced.
type StateEvent struct {
	RoomEvent
	StateKey    string
	PrevContent Content
}

type eventWire struct {
	EventID        string        `json:"event_id,omitempty"`
	RoomID         string        `json:"room_id,omitempty"`
	Sender         string        `json:"sender,omitempty"`
	OriginServerTS int64         `json:"origin_server_ts"`
	Unsigned       *UnsignedData `json:"unsigned,omitempty"`
	Type           string        `json:"type"`
	Content        Content       `json:"content"`
	StateKey       *string       `json:"state_key,omitempty"`
	PrevContent    Content       `json:"prev_content,omitempty"`
}

func (ev *RoomEvent) wire() eventWire {
	w := eventWire{
		EventID:        ev.EventID,
		RoomID:         ev.RoomID,
		Sender:         ev.Sender,
		OriginServerTS: ev.OriginServerTS,
		Type:           ev.Content.EventType(),
		Content:        ev.Content,
	}
	if !ev.Unsigned.isZero() {
		u := ev.Unsigned
		w.Unsigned = &u
	}
	return w
}

// MarshalJSON encodes the event as the flat wire object.
func (ev *RoomEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(ev.wire())
}

// MarshalJSON encodes the event as the flat wire object, including the state
// key and any previous content.
func (ev *StateEvent) MarshalJSON() ([]byte, error) {
	w := ev.wire()
	key := ev.StateKey
	w.StateKey = &key
	w.PrevContent = ev.PrevContent
	return json.Marshal(w)
}
