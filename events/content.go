////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package events

import "encoding/json"

// Event type discriminators as they appear on the wire.
const (
	TypeRoomMessage           = "m.room.message"
	TypeSticker               = "m.sticker"
	TypeReaction              = "m.reaction"
	TypeRoomRedaction         = "m.room.redaction"
	TypeRoomEncrypted         = "m.room.encrypted"
	TypeCallInvite            = "m.call.invite"
	TypeCallAnswer            = "m.call.answer"
	TypeCallHangUp            = "m.call.hangup"
	TypeCallCandidates        = "m.call.candidates"
	TypeRoomName              = "m.room.name"
	TypeRoomTopic             = "m.room.topic"
	TypeRoomAvatar            = "m.room.avatar"
	TypeRoomMember            = "m.room.member"
	TypeRoomCreate            = "m.room.create"
	TypeRoomCanonicalAlias    = "m.room.canonical_alias"
	TypeRoomJoinRules         = "m.room.join_rules"
	TypeRoomHistoryVisibility = "m.room.history_visibility"
	TypeRoomPinnedEvents      = "m.room.pinned_events"
)

// FormatCustomHTML is the only rich-text format tag this client honors; a
// formatted body carrying any other format tag is ignored.
const FormatCustomHTML = "org.matrix.custom.html"

// Content is the payload-specific part of a timeline event. The set of
// shapes is closed: only types in this package satisfy the interface, so
// dispatching code can rely on seeing every shape it was written against.
type Content interface {
	// EventType returns the wire discriminator for this shape.
	EventType() string

	sealedContent()
}

// UnknownContent preserves the payload of an event type this client does not
// model. The raw content round-trips through serialization untouched.
type UnknownContent struct {
	Type string
	Raw  json.RawMessage
}

func (c *UnknownContent) EventType() string { return c.Type }
func (c *UnknownContent) sealedContent()    {}

// MarshalJSON emits the preserved raw content verbatim.
func (c *UnknownContent) MarshalJSON() ([]byte, error) {
	if len(c.Raw) == 0 {
		return []byte("{}"), nil
	}
	return c.Raw, nil
}

// UnmarshalJSON stores the raw content for later round-tripping.
func (c *UnknownContent) UnmarshalJSON(data []byte) error {
	c.Raw = append(c.Raw[:0], data...)
	return nil
}
