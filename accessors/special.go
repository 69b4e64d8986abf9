////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package accessors

import (
	"html"
	"strings"

	"gitlab.com/elara-im/timeline/events"
)

// Filename derives a display filename for media events. For file messages
// the explicit filename wins over the body; for image, video, and audio
// messages the body is the filename. Every other shape yields empty.
func Filename(ev events.TimelineEvent) string {
	switch c := ev.GetContent().(type) {
	case *events.FileContent:
		if c.Filename != "" {
			return c.Filename
		}
		return c.Body
	case *events.ImageContent:
		// body may be the original filename
		return c.Body
	case *events.VideoContent:
		return c.Body
	case *events.AudioContent:
		return c.Body
	}
	return ""
}

// CallType classifies a call invite as "video" or "voice" by scanning the
// offered session description for an m=video media line, case-insensitively.
// An offer without that line, including an empty or malformed one, is
// "voice". Events that are not call invites yield empty.
func CallType(ev events.TimelineEvent) string {
	c, ok := ev.GetContent().(*events.CallInviteContent)
	if !ok {
		return ""
	}
	if strings.Contains(strings.ToLower(c.Offer.SDP), "m=video") {
		return "video"
	}
	return "voice"
}

// FormattedBody returns the rich-text body when the content is tagged with
// the custom-HTML format; empty otherwise, even if a formatted body is
// present under another format tag.
func FormattedBody(ev events.TimelineEvent) string {
	if c, ok := ev.GetContent().(formatted); ok {
		if format, formattedBody := c.GetFormat(); format == events.FormatCustomHTML {
			return formattedBody
		}
	}
	return ""
}

// FormattedBodyWithFallback returns the rich-text body when present and
// otherwise lifts the plain body into HTML: the body is escaped and newlines
// become <br> tags. This is the one accessor that transforms rather than
// extracts.
func FormattedBodyWithFallback(ev events.TimelineEvent) string {
	if formattedBody := FormattedBody(ev); formattedBody != "" {
		return formattedBody
	}
	return strings.ReplaceAll(html.EscapeString(Body(ev)), "\n", "<br>")
}
