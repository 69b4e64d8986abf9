////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

// Package accessors is the single sanctioned way to read fields off a
// timeline event without knowing its content shape. Every accessor is total:
// a shape that lacks the queried field yields that accessor's documented
// default (empty string, 0, events.DimensionUnknown, nil, or the empty
// relation set) instead of an error.
//
// Each accessor resolves a capability query - an interface assertion against
// the active content shape - and runs the matching extraction branch. Because
// the events union is sealed, the assertions cover every shape the union can
// hold.
package accessors

import (
	"encoding/json"
	"time"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elara-im/timeline/crypto"
	"gitlab.com/elara-im/timeline/events"
)

// Capability queries. A content shape opts into an accessor by carrying the
// matching method set.
type (
	bodied interface {
		GetBody() string
	}
	formatted interface {
		GetFormat() (format, formattedBody string)
	}
	enumTyped interface {
		GetMessageType() events.MessageType
	}
	tagTyped interface {
		GetMsgTypeTag() string
	}
	addressed interface {
		GetURL() string
	}
	encryptedFiled interface {
		GetFile() *crypto.EncryptedFile
	}
	informed interface {
		GetInfo() *events.FileInfo
	}
	related interface {
		GetRelations() events.Relations
		SetRelations(events.Relations)
	}
)

// EventID returns the event's globally unique identifier.
func EventID(ev events.TimelineEvent) string {
	return ev.GetEnvelope().EventID
}

// RoomID returns the room the event belongs to.
func RoomID(ev events.TimelineEvent) string {
	return ev.GetEnvelope().RoomID
}

// Sender returns the user ID that sent the event.
func Sender(ev events.TimelineEvent) string {
	return ev.GetEnvelope().Sender
}

// OriginServerTS returns the origin server timestamp as an exact UTC point
// in time.
func OriginServerTS(ev events.TimelineEvent) time.Time {
	return ev.GetEnvelope().Timestamp()
}

// TransactionID returns the client transaction ID for events this session
// sent, or empty.
func TransactionID(ev events.TimelineEvent) string {
	return ev.GetEnvelope().Unsigned.TransactionID
}

// IsStateEvent reports whether the event uses the state wrapper, independent
// of content shape.
func IsStateEvent(ev events.TimelineEvent) bool {
	_, ok := ev.(*events.StateEvent)
	return ok
}

// MsgType resolves the message type from whichever tag the shape carries:
// the enumerated field on text-like shapes, the free-text tag on media
// shapes, and MsgUnknown for everything else.
func MsgType(ev events.TimelineEvent) events.MessageType {
	switch c := ev.GetContent().(type) {
	case enumTyped:
		return c.GetMessageType()
	case tagTyped:
		return events.ParseMessageType(c.GetMsgTypeTag())
	}
	return events.MsgUnknown
}

// Body returns the plain-text body, or empty for shapes without one.
func Body(ev events.TimelineEvent) string {
	if c, ok := ev.GetContent().(bodied); ok {
		return c.GetBody()
	}
	return ""
}

// RoomName returns the new room name for a name state event, empty for
// everything else.
func RoomName(ev events.TimelineEvent) string {
	if se, ok := ev.(*events.StateEvent); ok {
		if c, ok := se.GetContent().(*events.NameContent); ok {
			return c.Name
		}
	}
	return ""
}

// RoomTopic returns the new room topic for a topic state event, empty for
// everything else.
func RoomTopic(ev events.TimelineEvent) string {
	if se, ok := ev.(*events.StateEvent); ok {
		if c, ok := se.GetContent().(*events.TopicContent); ok {
			return c.Topic
		}
	}
	return ""
}

// File returns the encrypted-file reference for media sent in encrypted
// rooms, or nil.
func File(ev events.TimelineEvent) *crypto.EncryptedFile {
	if c, ok := ev.GetContent().(encryptedFiled); ok {
		return c.GetFile()
	}
	return nil
}

// ThumbnailFile returns the encrypted-file reference of the thumbnail, or
// nil.
func ThumbnailFile(ev events.TimelineEvent) *crypto.EncryptedFile {
	if c, ok := ev.GetContent().(informed); ok {
		return c.GetInfo().ThumbnailFile
	}
	return nil
}

// URL returns the media URL. An encrypted-file reference takes precedence
// over the plaintext URL field.
func URL(ev events.TimelineEvent) string {
	if c, ok := ev.GetContent().(addressed); ok {
		if file := File(ev); file != nil {
			return file.URL
		}
		return c.GetURL()
	}
	return ""
}

// ThumbnailURL returns the thumbnail URL, with the encrypted thumbnail
// reference taking precedence over the plaintext field.
func ThumbnailURL(ev events.TimelineEvent) string {
	if c, ok := ev.GetContent().(informed); ok {
		if file := c.GetInfo().ThumbnailFile; file != nil {
			return file.URL
		}
		return c.GetInfo().ThumbnailURL
	}
	return ""
}

// Duration returns the media duration in milliseconds, or 0.
func Duration(ev events.TimelineEvent) uint64 {
	if c, ok := ev.GetContent().(informed); ok {
		return c.GetInfo().Duration
	}
	return 0
}

// Blurhash returns the blurhash placeholder string, or empty.
func Blurhash(ev events.TimelineEvent) string {
	if c, ok := ev.GetContent().(informed); ok {
		return c.GetInfo().BlurHash
	}
	return ""
}

// MimeType returns the media MIME type, or empty.
func MimeType(ev events.TimelineEvent) string {
	if c, ok := ev.GetContent().(informed); ok {
		return c.GetInfo().MimeType
	}
	return ""
}

// Filesize returns the media size in bytes, or 0.
func Filesize(ev events.TimelineEvent) int64 {
	if c, ok := ev.GetContent().(informed); ok {
		return c.GetInfo().Size
	}
	return 0
}

// MediaHeight returns the media height in pixels, or
// events.DimensionUnknown.
func MediaHeight(ev events.TimelineEvent) int64 {
	if c, ok := ev.GetContent().(informed); ok {
		return c.GetInfo().Height
	}
	return events.DimensionUnknown
}

// MediaWidth returns the media width in pixels, or events.DimensionUnknown.
// The dispatch keys off the same height capability as MediaHeight; a shape
// that somehow carried only a width would report unknown.
func MediaWidth(ev events.TimelineEvent) int64 {
	if c, ok := ev.GetContent().(informed); ok {
		return c.GetInfo().Width
	}
	return events.DimensionUnknown
}

// Relations returns the event's aggregated relation set; nil when the shape
// has none.
func Relations(ev events.TimelineEvent) events.Relations {
	if c, ok := ev.GetContent().(related); ok {
		return c.GetRelations()
	}
	return nil
}

// SetRelations replaces the event's relation set in place, the one sanctioned
// mutation after construction. On a shape without a relation field the call
// is a silent no-op; callers that can race this with reads of the same
// instance must serialize externally.
func SetRelations(ev events.TimelineEvent, relations events.Relations) {
	if c, ok := ev.GetContent().(related); ok {
		c.SetRelations(relations)
	}
}

// SerializeEvent returns the wire encoding of the active variant. Every
// variant marshals from fully in-memory state, so a failure here indicates a
// programming error; it is logged and reported as nil rather than surfaced.
func SerializeEvent(ev events.TimelineEvent) json.RawMessage {
	data, err := ev.MarshalJSON()
	if err != nil {
		jww.WARN.Printf("Failed to serialize event %s: %+v", EventID(ev), err)
		return nil
	}
	return data
}
