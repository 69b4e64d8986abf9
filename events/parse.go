////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package events

import (
	"encoding/json"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

var stateTypes = map[string]bool{
	TypeRoomName:              true,
	TypeRoomTopic:             true,
	TypeRoomAvatar:            true,
	TypeRoomMember:            true,
	TypeRoomCreate:            true,
	TypeRoomCanonicalAlias:    true,
	TypeRoomJoinRules:         true,
	TypeRoomHistoryVisibility: true,
	TypeRoomPinnedEvents:      true,
}

// Parse builds the event record for one raw wire event. The wrapper kind is
// chosen by the event type, falling back to the presence of a state key for
// types this client does not model. Unrecognized types parse into
// UnknownContent rather than failing; only malformed JSON or a missing type
// discriminator is an error.
func Parse(raw []byte) (TimelineEvent, error) {
	var probe struct {
		Envelope
		Type        string          `json:"type"`
		StateKey    *string         `json:"state_key"`
		Content     json.RawMessage `json:"content"`
		PrevContent json.RawMessage `json:"prev_content"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, errors.Wrap(err, "failed to decode event")
	}
	if probe.Type == "" {
		return nil, errors.New("event has no type")
	}

	content, err := newContent(probe.Type, probe.Content)
	if err != nil {
		return nil, errors.WithMessagef(err,
			"failed to decode %s content", probe.Type)
	}

	re := RoomEvent{Envelope: probe.Envelope, Content: content}
	if !stateTypes[probe.Type] && probe.StateKey == nil {
		return &re, nil
	}

	se := &StateEvent{RoomEvent: re}
	if probe.StateKey != nil {
		se.StateKey = *probe.StateKey
	}
	if len(probe.PrevContent) > 0 {
		prev, err := newContent(probe.Type, probe.PrevContent)
		if err != nil {
			return nil, errors.WithMessagef(err,
				"failed to decode %s prev_content", probe.Type)
		}
		se.PrevContent = prev
	}
	return se, nil
}

// newContent picks the content shape for an event type and decodes the raw
// content into it.
func newContent(eventType string, raw json.RawMessage) (Content, error) {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}

	var content Content
	switch eventType {
	case TypeRoomMessage:
		return newMessageContent(raw)
	case TypeSticker:
		content = &StickerContent{}
	case TypeReaction:
		content = &ReactionContent{}
	case TypeRoomRedaction:
		content = &RedactionContent{}
	case TypeRoomEncrypted:
		content = &EncryptedContent{}
	case TypeCallInvite:
		content = &CallInviteContent{}
	case TypeCallAnswer:
		content = &CallAnswerContent{}
	case TypeCallHangUp:
		content = &CallHangUpContent{}
	case TypeCallCandidates:
		content = &CallCandidatesContent{}
	case TypeRoomName:
		content = &NameContent{}
	case TypeRoomTopic:
		content = &TopicContent{}
	case TypeRoomAvatar:
		content = &AvatarContent{}
	case TypeRoomMember:
		content = &MemberContent{}
	case TypeRoomCreate:
		content = &CreateContent{}
	case TypeRoomCanonicalAlias:
		content = &CanonicalAliasContent{}
	case TypeRoomJoinRules:
		content = &JoinRulesContent{}
	case TypeRoomHistoryVisibility:
		content = &HistoryVisibilityContent{}
	case TypeRoomPinnedEvents:
		content = &PinnedEventsContent{}
	default:
		jww.DEBUG.Printf("Preserving unmodeled event type %q", eventType)
		content = &UnknownContent{Type: eventType}
	}

	if err := json.Unmarshal(raw, content); err != nil {
		return nil, err
	}
	return content, nil
}

// newMessageContent dispatches m.room.message content on its msgtype tag.
// Messages with an unrecognized tag keep their raw content, mirroring how
// unmodeled event types are handled.
func newMessageContent(raw json.RawMessage) (Content, error) {
	var probe struct {
		MsgType string `json:"msgtype"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}

	var content Content
	switch ParseMessageType(probe.MsgType) {
	case MsgText:
		content = &TextContent{}
	case MsgEmote:
		content = &EmoteContent{}
	case MsgNotice:
		content = &NoticeContent{}
	case MsgImage:
		content = &ImageContent{}
	case MsgFile:
		content = &FileContent{}
	case MsgAudio:
		content = &AudioContent{}
	case MsgVideo:
		content = &VideoContent{}
	case MsgLocation:
		content = &LocationContent{}
	default:
		jww.DEBUG.Printf("Preserving unmodeled msgtype %q", probe.MsgType)
		content = &UnknownContent{Type: TypeRoomMessage}
	}

	if err := json.Unmarshal(raw, content); err != nil {
		return nil, err
	}
	return content, nil
}
