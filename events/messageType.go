////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package events

import (
	"encoding/json"
	"fmt"
)

// MessageType is the resolved category of a room message. It is derived from
// the msgtype tag carried on the content; tags this client does not recognize
// resolve to MsgUnknown rather than an error.
type MessageType uint32

const (
	MsgUnknown MessageType = iota
	MsgText
	MsgEmote
	MsgNotice
	MsgImage
	MsgFile
	MsgAudio
	MsgVideo
	MsgLocation
)

var messageTypeTags = map[MessageType]string{
	MsgText:     "m.text",
	MsgEmote:    "m.emote",
	MsgNotice:   "m.notice",
	MsgImage:    "m.image",
	MsgFile:     "m.file",
	MsgAudio:    "m.audio",
	MsgVideo:    "m.video",
	MsgLocation: "m.location",
}

var messageTypesByTag = func() map[string]MessageType {
	m := make(map[string]MessageType, len(messageTypeTags))
	for mt, tag := range messageTypeTags {
		m[tag] = mt
	}
	return m
}()

// ParseMessageType resolves a msgtype tag to its MessageType. Unrecognized
// tags, including the empty string, resolve to MsgUnknown.
func ParseMessageType(tag string) MessageType {
	return messageTypesByTag[tag]
}

// Tag returns the wire tag for the message type; empty for MsgUnknown.
func (mt MessageType) Tag() string {
	return messageTypeTags[mt]
}

// String returns a human-readable version of [MessageType], used for
// debugging and logging. This function adheres to the [fmt.Stringer]
// interface.
func (mt MessageType) String() string {
	switch mt {
	case MsgText:
		return "Text"
	case MsgEmote:
		return "Emote"
	case MsgNotice:
		return "Notice"
	case MsgImage:
		return "Image"
	case MsgFile:
		return "File"
	case MsgAudio:
		return "Audio"
	case MsgVideo:
		return "Video"
	case MsgLocation:
		return "Location"
	default:
		return fmt.Sprintf("Unknown messageType %d", mt)
	}
}

// MarshalJSON encodes the message type as its wire tag.
func (mt MessageType) MarshalJSON() ([]byte, error) {
	return json.Marshal(mt.Tag())
}

// UnmarshalJSON decodes a wire tag; unrecognized tags become MsgUnknown.
func (mt *MessageType) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	*mt = ParseMessageType(tag)
	return nil
}
