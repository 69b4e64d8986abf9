////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package events

// TextContent is the content of a plain m.text room message.
type TextContent struct {
	Body          string      `json:"body"`
	MsgType       MessageType `json:"msgtype"`
	Format        string      `json:"format,omitempty"`
	FormattedBody string      `json:"formatted_body,omitempty"`
	Relations     Relations   `json:"m.relates_to,omitempty"`
}

func (c *TextContent) EventType() string           { return TypeRoomMessage }
func (c *TextContent) sealedContent()              {}
func (c *TextContent) GetBody() string             { return c.Body }
func (c *TextContent) GetFormat() (string, string) { return c.Format, c.FormattedBody }
func (c *TextContent) GetMessageType() MessageType { return c.MsgType }
func (c *TextContent) GetRelations() Relations     { return c.Relations }
func (c *TextContent) SetRelations(r Relations)    { c.Relations = r }

// NoticeContent is the content of an m.notice room message, an automated
// message that clients render without notification noise.
type NoticeContent struct {
	Body          string      `json:"body"`
	MsgType       MessageType `json:"msgtype"`
	Format        string      `json:"format,omitempty"`
	FormattedBody string      `json:"formatted_body,omitempty"`
	Relations     Relations   `json:"m.relates_to,omitempty"`
}

func (c *NoticeContent) EventType() string           { return TypeRoomMessage }
func (c *NoticeContent) sealedContent()              {}
func (c *NoticeContent) GetBody() string             { return c.Body }
func (c *NoticeContent) GetFormat() (string, string) { return c.Format, c.FormattedBody }
func (c *NoticeContent) GetMessageType() MessageType { return c.MsgType }
func (c *NoticeContent) GetRelations() Relations     { return c.Relations }
func (c *NoticeContent) SetRelations(r Relations)    { c.Relations = r }

// EmoteContent is the content of an m.emote room message (the /me action).
type EmoteContent struct {
	Body          string      `json:"body"`
	MsgType       MessageType `json:"msgtype"`
	Format        string      `json:"format,omitempty"`
	FormattedBody string      `json:"formatted_body,omitempty"`
	Relations     Relations   `json:"m.relates_to,omitempty"`
}

func (c *EmoteContent) EventType() string           { return TypeRoomMessage }
func (c *EmoteContent) sealedContent()              {}
func (c *EmoteContent) GetBody() string             { return c.Body }
func (c *EmoteContent) GetFormat() (string, string) { return c.Format, c.FormattedBody }
func (c *EmoteContent) GetMessageType() MessageType { return c.MsgType }
func (c *EmoteContent) GetRelations() Relations     { return c.Relations }
func (c *EmoteContent) SetRelations(r Relations)    { c.Relations = r }

// LocationContent is the content of an m.location room message.
type LocationContent struct {
	Body      string    `json:"body"`
	MsgType   string    `json:"msgtype"`
	GeoURI    string    `json:"geo_uri"`
	Relations Relations `json:"m.relates_to,omitempty"`
}

func (c *LocationContent) EventType() string        { return TypeRoomMessage }
func (c *LocationContent) sealedContent()           {}
func (c *LocationContent) GetBody() string          { return c.Body }
func (c *LocationContent) GetMsgTypeTag() string    { return c.MsgType }
func (c *LocationContent) GetRelations() Relations  { return c.Relations }
func (c *LocationContent) SetRelations(r Relations) { c.Relations = r }

// ReactionContent is the content of an m.reaction event; it carries nothing
// but the annotation relation pointing at the reacted-to event.
type ReactionContent struct {
	Relations Relations `json:"m.relates_to,omitempty"`
}

func (c *ReactionContent) EventType() string        { return TypeReaction }
func (c *ReactionContent) sealedContent()           {}
func (c *ReactionContent) GetRelations() Relations  { return c.Relations }
func (c *ReactionContent) SetRelations(r Relations) { c.Relations = r }

// RedactionContent is the content of an m.room.redaction event.
type RedactionContent struct {
	Reason string `json:"reason,omitempty"`
}

func (c *RedactionContent) EventType() string { return TypeRoomRedaction }
func (c *RedactionContent) sealedContent()    {}

// EncryptedContent is the undecrypted content of an m.room.encrypted event.
// The ciphertext is opaque to this layer; relations ride outside it so that
// reactions and edits still aggregate on encrypted timelines.
type EncryptedContent struct {
	Algorithm  string    `json:"algorithm"`
	Ciphertext string    `json:"ciphertext"`
	SenderKey  string    `json:"sender_key,omitempty"`
	SessionID  string    `json:"session_id,omitempty"`
	DeviceID   string    `json:"device_id,omitempty"`
	Relations  Relations `json:"m.relates_to,omitempty"`
}

func (c *EncryptedContent) EventType() string        { return TypeRoomEncrypted }
func (c *EncryptedContent) sealedContent()           {}
func (c *EncryptedContent) GetRelations() Relations  { return c.Relations }
func (c *EncryptedContent) SetRelations(r Relations) { c.Relations = r }
