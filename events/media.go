////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package events

import (
	"encoding/json"

	"gitlab.com/elara-im/timeline/crypto"
)

// DimensionUnknown is the sentinel reported for media dimensions that are
// absent from the wire or not applicable to the shape. It is distinct from an
// explicit 0.
const DimensionUnknown int64 = -1

// FileInfo describes the media an event points at. Height and Width are
// DimensionUnknown when the wire carried no value; build literal values with
// NewFileInfo so the sentinel is preserved.
type FileInfo struct {
	MimeType      string
	Size          int64
	Duration      uint64
	Height        int64
	Width         int64
	ThumbnailURL  string
	ThumbnailFile *crypto.EncryptedFile
	BlurHash      string
}

// NewFileInfo returns a FileInfo with the dimension sentinels set.
func NewFileInfo() FileInfo {
	return FileInfo{Height: DimensionUnknown, Width: DimensionUnknown}
}

type fileInfoWire struct {
	MimeType      string                `json:"mimetype,omitempty"`
	Size          int64                 `json:"size,omitempty"`
	Duration      uint64                `json:"duration,omitempty"`
	Height        *int64                `json:"h,omitempty"`
	Width         *int64                `json:"w,omitempty"`
	ThumbnailURL  string                `json:"thumbnail_url,omitempty"`
	ThumbnailFile *crypto.EncryptedFile `json:"thumbnail_file,omitempty"`
	BlurHash      string                `json:"xyz.amorgan.blurhash,omitempty"`
}

// MarshalJSON keeps the dimension sentinel local; absent dimensions are
// omitted from the wire rather than written as -1.
func (fi FileInfo) MarshalJSON() ([]byte, error) {
	w := fileInfoWire{
		MimeType:      fi.MimeType,
		Size:          fi.Size,
		Duration:      fi.Duration,
		ThumbnailURL:  fi.ThumbnailURL,
		ThumbnailFile: fi.ThumbnailFile,
		BlurHash:      fi.BlurHash,
	}
	if fi.Height != DimensionUnknown {
		h := fi.Height
		w.Height = &h
	}
	if fi.Width != DimensionUnknown {
		wd := fi.Width
		w.Width = &wd
	}
	return json.Marshal(w)
}

// UnmarshalJSON maps absent h/w to DimensionUnknown.
func (fi *FileInfo) UnmarshalJSON(data []byte) error {
	var w fileInfoWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*fi = FileInfo{
		MimeType:      w.MimeType,
		Size:          w.Size,
		Duration:      w.Duration,
		Height:        DimensionUnknown,
		Width:         DimensionUnknown,
		ThumbnailURL:  w.ThumbnailURL,
		ThumbnailFile: w.ThumbnailFile,
		BlurHash:      w.BlurHash,
	}
	if w.Height != nil {
		fi.Height = *w.Height
	}
	if w.Width != nil {
		fi.Width = *w.Width
	}
	return nil
}

// ImageContent is the content of an m.image room message.
type ImageContent struct {
	Body      string                `json:"body"`
	MsgType   string                `json:"msgtype"`
	URL       string                `json:"url,omitempty"`
	File      *crypto.EncryptedFile `json:"file,omitempty"`
	Info      FileInfo              `json:"info,omitempty"`
	Relations Relations             `json:"m.relates_to,omitempty"`
}

func (c *ImageContent) EventType() string              { return TypeRoomMessage }
func (c *ImageContent) sealedContent()                 {}
func (c *ImageContent) GetBody() string                { return c.Body }
func (c *ImageContent) GetMsgTypeTag() string          { return c.MsgType }
func (c *ImageContent) GetURL() string                 { return c.URL }
func (c *ImageContent) GetFile() *crypto.EncryptedFile { return c.File }
func (c *ImageContent) GetInfo() *FileInfo             { return &c.Info }
func (c *ImageContent) GetRelations() Relations        { return c.Relations }
func (c *ImageContent) SetRelations(r Relations)       { c.Relations = r }

// UnmarshalJSON seeds the info block so absent dimensions stay unknown.
func (c *ImageContent) UnmarshalJSON(data []byte) error {
	type alias ImageContent
	a := alias{Info: NewFileInfo()}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = ImageContent(a)
	return nil
}

// VideoContent is the content of an m.video room message.
type VideoContent struct {
	Body      string                `json:"body"`
	MsgType   string                `json:"msgtype"`
	URL       string                `json:"url,omitempty"`
	File      *crypto.EncryptedFile `json:"file,omitempty"`
	Info      FileInfo              `json:"info,omitempty"`
	Relations Relations             `json:"m.relates_to,omitempty"`
}

func (c *VideoContent) EventType() string              { return TypeRoomMessage }
func (c *VideoContent) sealedContent()                 {}
func (c *VideoContent) GetBody() string                { return c.Body }
func (c *VideoContent) GetMsgTypeTag() string          { return c.MsgType }
func (c *VideoContent) GetURL() string                 { return c.URL }
func (c *VideoContent) GetFile() *crypto.EncryptedFile { return c.File }
func (c *VideoContent) GetInfo() *FileInfo             { return &c.Info }
func (c *VideoContent) GetRelations() Relations        { return c.Relations }
func (c *VideoContent) SetRelations(r Relations)       { c.Relations = r }

func (c *VideoContent) UnmarshalJSON(data []byte) error {
	type alias VideoContent
	a := alias{Info: NewFileInfo()}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = VideoContent(a)
	return nil
}

// AudioContent is the content of an m.audio room message.
type AudioContent struct {
	Body      string                `json:"body"`
	MsgType   string                `json:"msgtype"`
	URL       string                `json:"url,omitempty"`
	File      *crypto.EncryptedFile `json:"file,omitempty"`
	Info      FileInfo              `json:"info,omitempty"`
	Relations Relations             `json:"m.relates_to,omitempty"`
}

func (c *AudioContent) EventType() string              { return TypeRoomMessage }
func (c *AudioContent) sealedContent()                 {}
func (c *AudioContent) GetBody() string                { return c.Body }
func (c *AudioContent) GetMsgTypeTag() string          { return c.MsgType }
func (c *AudioContent) GetURL() string                 { return c.URL }
func (c *AudioContent) GetFile() *crypto.EncryptedFile { return c.File }
func (c *AudioContent) GetInfo() *FileInfo             { return &c.Info }
func (c *AudioContent) GetRelations() Relations        { return c.Relations }
func (c *AudioContent) SetRelations(r Relations)       { c.Relations = r }

func (c *AudioContent) UnmarshalJSON(data []byte) error {
	type alias AudioContent
	a := alias{Info: NewFileInfo()}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = AudioContent(a)
	return nil
}

// FileContent is the content of an m.file room message. Unlike the other
// media shapes it may carry an explicit filename distinct from the body.
type FileContent struct {
	Body      string                `json:"body"`
	Filename  string                `json:"filename,omitempty"`
	MsgType   string                `json:"msgtype"`
	URL       string                `json:"url,omitempty"`
	File      *crypto.EncryptedFile `json:"file,omitempty"`
	Info      FileInfo              `json:"info,omitempty"`
	Relations Relations             `json:"m.relates_to,omitempty"`
}

func (c *FileContent) EventType() string              { return TypeRoomMessage }
func (c *FileContent) sealedContent()                 {}
func (c *FileContent) GetBody() string                { return c.Body }
func (c *FileContent) GetMsgTypeTag() string          { return c.MsgType }
func (c *FileContent) GetURL() string                 { return c.URL }
func (c *FileContent) GetFile() *crypto.EncryptedFile { return c.File }
func (c *FileContent) GetInfo() *FileInfo             { return &c.Info }
func (c *FileContent) GetRelations() Relations        { return c.Relations }
func (c *FileContent) SetRelations(r Relations)       { c.Relations = r }

func (c *FileContent) UnmarshalJSON(data []byte) error {
	type alias FileContent
	a := alias{Info: NewFileInfo()}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = FileContent(a)
	return nil
}

// StickerContent is the content of an m.sticker event. Stickers carry no
// msgtype tag at all, so their message type always resolves to MsgUnknown.
type StickerContent struct {
	Body      string                `json:"body"`
	URL       string                `json:"url,omitempty"`
	File      *crypto.EncryptedFile `json:"file,omitempty"`
	Info      FileInfo              `json:"info,omitempty"`
	Relations Relations             `json:"m.relates_to,omitempty"`
}

func (c *StickerContent) EventType() string              { return TypeSticker }
func (c *StickerContent) sealedContent()                 {}
func (c *StickerContent) GetBody() string                { return c.Body }
func (c *StickerContent) GetURL() string                 { return c.URL }
func (c *StickerContent) GetFile() *crypto.EncryptedFile { return c.File }
func (c *StickerContent) GetInfo() *FileInfo             { return &c.Info }
func (c *StickerContent) GetRelations() Relations        { return c.Relations }
func (c *StickerContent) SetRelations(r Relations)       { c.Relations = r }

func (c *StickerContent) UnmarshalJSON(data []byte) error {
	type alias StickerContent
	a := alias{Info: NewFileInfo()}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = StickerContent(a)
	return nil
}
