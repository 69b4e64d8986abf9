////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package accessors

import (
	"testing"

	"gitlab.com/elara-im/timeline/events"
)

func TestFilename_Precedence(t *testing.T) {
	// an explicit filename on a file message wins over the body
	ev := roomEvent(&events.FileContent{
		Body:     "upload.bin",
		Filename: "holiday photos.zip",
		Info:     events.NewFileInfo(),
	})
	if got := Filename(ev); got != "holiday photos.zip" {
		t.Errorf("Filename returned %q, expected the explicit filename", got)
	}

	// without one, the body is the filename
	ev = roomEvent(&events.FileContent{
		Body: "upload.bin",
		Info: events.NewFileInfo(),
	})
	if got := Filename(ev); got != "upload.bin" {
		t.Errorf("Filename returned %q, expected the body", got)
	}

	// image, video, and audio always use the body
	media := []events.Content{
		&events.ImageContent{Body: "cat.png", Info: events.NewFileInfo()},
		&events.VideoContent{Body: "clip.mp4", Info: events.NewFileInfo()},
		&events.AudioContent{Body: "song.ogg", Info: events.NewFileInfo()},
	}
	expected := []string{"cat.png", "clip.mp4", "song.ogg"}
	for i, c := range media {
		if got := Filename(roomEvent(c)); got != expected[i] {
			t.Errorf("Filename for %T returned %q, expected %q",
				c, got, expected[i])
		}
	}

	// non-media shapes have no filename
	if got := Filename(roomEvent(&events.TextContent{Body: "hi"})); got != "" {
		t.Errorf("Filename for text returned %q, expected empty", got)
	}
}

func TestCallType(t *testing.T) {
	invite := func(sdp string) events.TimelineEvent {
		return roomEvent(&events.CallInviteContent{
			CallID: "c1",
			Offer:  events.SessionDescription{Type: "offer", SDP: sdp},
		})
	}

	// the media-line search is case-insensitive
	if got := CallType(invite("v=0\r\nM=VIDEO 9 UDP/TLS/RTP/SAVPF")); got != "video" {
		t.Errorf("CallType returned %q, expected video", got)
	}
	if got := CallType(invite("v=0\r\nm=audio 9 UDP/TLS/RTP/SAVPF")); got != "voice" {
		t.Errorf("CallType returned %q, expected voice", got)
	}

	// the heuristic defaults to voice for empty or malformed descriptions
	if got := CallType(invite("")); got != "voice" {
		t.Errorf("CallType returned %q, expected voice", got)
	}

	// only call invites have a call type
	if got := CallType(roomEvent(&events.CallAnswerContent{})); got != "" {
		t.Errorf("CallType for an answer returned %q, expected empty", got)
	}
}

func TestFormattedBody_FormatGate(t *testing.T) {
	ev := roomEvent(&events.TextContent{
		Body:          "hello",
		Format:        events.FormatCustomHTML,
		FormattedBody: "<b>hello</b>",
	})
	if got := FormattedBody(ev); got != "<b>hello</b>" {
		t.Errorf("FormattedBody returned %q", got)
	}

	// a formatted body under any other format tag is ignored
	ev = roomEvent(&events.TextContent{
		Body:          "hello",
		Format:        "org.example.markdown",
		FormattedBody: "**hello**",
	})
	if got := FormattedBody(ev); got != "" {
		t.Errorf("FormattedBody returned %q, expected empty", got)
	}
}

func TestFormattedBodyWithFallback(t *testing.T) {
	// a present formatted body is returned verbatim
	ev := roomEvent(&events.TextContent{
		Body:          "hello",
		Format:        events.FormatCustomHTML,
		FormattedBody: "<em>hello</em>",
	})
	if got := FormattedBodyWithFallback(ev); got != "<em>hello</em>" {
		t.Errorf("FormattedBodyWithFallback returned %q", got)
	}

	// otherwise the plain body is escaped and newlines become breaks
	ev = roomEvent(&events.TextContent{Body: "a\nb"})
	if got := FormattedBodyWithFallback(ev); got != "a<br>b" {
		t.Errorf("FormattedBodyWithFallback returned %q, expected a<br>b", got)
	}

	ev = roomEvent(&events.TextContent{Body: "1 < 2 & \"three\"\ndone"})
	expected := "1 &lt; 2 &amp; &#34;three&#34;<br>done"
	if got := FormattedBodyWithFallback(ev); got != expected {
		t.Errorf("FormattedBodyWithFallback returned %q, expected %q",
			got, expected)
	}

	// shapes without a body fall back to the empty string
	if got := FormattedBodyWithFallback(
		roomEvent(&events.RedactionContent{})); got != "" {
		t.Errorf("FormattedBodyWithFallback returned %q, expected empty", got)
	}
}
