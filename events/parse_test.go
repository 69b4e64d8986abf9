////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_TextMessage(t *testing.T) {
	ev, err := Parse([]byte(`{
		"event_id": "$text1",
		"room_id": "!room",
		"sender": "@alice:example.org",
		"origin_server_ts": 1662580000123,
		"unsigned": {"transaction_id": "txn9"},
		"type": "m.room.message",
		"content": {"msgtype": "m.text", "body": "hello",
			"format": "org.matrix.custom.html",
			"formatted_body": "<b>hello</b>"}
	}`))
	require.NoError(t, err)

	re, ok := ev.(*RoomEvent)
	require.True(t, ok, "expected a room event, got %T", ev)
	require.Equal(t, "$text1", re.EventID)
	require.Equal(t, "!room", re.RoomID)
	require.Equal(t, "@alice:example.org", re.Sender)
	require.Equal(t, "txn9", re.Unsigned.TransactionID)

	c, ok := re.Content.(*TextContent)
	require.True(t, ok, "expected text content, got %T", re.Content)
	require.Equal(t, "hello", c.Body)
	require.Equal(t, MsgText, c.MsgType)
	require.Equal(t, FormatCustomHTML, c.Format)
	require.Equal(t, "<b>hello</b>", c.FormattedBody)
}

func TestParse_ImageDimensions(t *testing.T) {
	ev, err := Parse([]byte(`{
		"type": "m.room.message",
		"origin_server_ts": 1,
		"content": {"msgtype": "m.image", "body": "cat.png",
			"url": "mxc://example.org/cat",
			"info": {"mimetype": "image/png", "size": 1024, "h": 480}}
	}`))
	require.NoError(t, err)

	c, ok := ev.GetContent().(*ImageContent)
	require.True(t, ok, "expected image content, got %T", ev.GetContent())
	require.Equal(t, int64(480), c.Info.Height)
	// w was absent from the wire
	require.Equal(t, DimensionUnknown, c.Info.Width)
	require.Equal(t, "image/png", c.Info.MimeType)
	require.Equal(t, int64(1024), c.Info.Size)
}

func TestParse_MediaWithoutInfo(t *testing.T) {
	ev, err := Parse([]byte(`{
		"type": "m.room.message",
		"origin_server_ts": 1,
		"content": {"msgtype": "m.video", "body": "clip.mp4"}
	}`))
	require.NoError(t, err)

	c, ok := ev.GetContent().(*VideoContent)
	require.True(t, ok)
	require.Equal(t, DimensionUnknown, c.Info.Height)
	require.Equal(t, DimensionUnknown, c.Info.Width)
}

func TestParse_StateWithPrevContent(t *testing.T) {
	ev, err := Parse([]byte(`{
		"event_id": "$name1",
		"origin_server_ts": 2,
		"type": "m.room.name",
		"state_key": "",
		"content": {"name": "After"},
		"prev_content": {"name": "Before"}
	}`))
	require.NoError(t, err)

	se, ok := ev.(*StateEvent)
	require.True(t, ok, "expected a state event, got %T", ev)
	require.Equal(t, "After", se.Content.(*NameContent).Name)
	require.NotNil(t, se.PrevContent)
	require.Equal(t, "Before", se.PrevContent.(*NameContent).Name)
}

func TestParse_StateKeyFallback(t *testing.T) {
	// A state type this client does not model still lands on the state
	// wrapper because it carries a state key.
	ev, err := Parse([]byte(`{
		"origin_server_ts": 3,
		"type": "m.room.power_levels",
		"state_key": "",
		"content": {"users_default": 0}
	}`))
	require.NoError(t, err)

	se, ok := ev.(*StateEvent)
	require.True(t, ok, "expected a state event, got %T", ev)
	uc, ok := se.Content.(*UnknownContent)
	require.True(t, ok, "expected unknown content, got %T", se.Content)
	require.Equal(t, "m.room.power_levels", uc.EventType())
}

func TestParse_CallInvite(t *testing.T) {
	ev, err := Parse([]byte(`{
		"origin_server_ts": 4,
		"type": "m.call.invite",
		"content": {"call_id": "c1", "version": 0, "lifetime": 60000,
			"offer": {"type": "offer", "sdp": "v=0\r\nm=audio 9 UDP/TLS/RTP"}}
	}`))
	require.NoError(t, err)

	c, ok := ev.GetContent().(*CallInviteContent)
	require.True(t, ok, "expected call invite content, got %T", ev.GetContent())
	require.Equal(t, "c1", c.CallID)
	require.Contains(t, c.Offer.SDP, "m=audio")
}

func TestParse_UnknownMsgType(t *testing.T) {
	raw := []byte(`{
		"origin_server_ts": 5,
		"type": "m.room.message",
		"content": {"msgtype": "org.custom.widget", "payload": 7}
	}`)
	ev, err := Parse(raw)
	require.NoError(t, err)

	uc, ok := ev.GetContent().(*UnknownContent)
	require.True(t, ok, "expected unknown content, got %T", ev.GetContent())
	require.Equal(t, TypeRoomMessage, uc.EventType())
	require.JSONEq(t,
		`{"msgtype": "org.custom.widget", "payload": 7}`, string(uc.Raw))
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse([]byte(`{"content": {}}`)); err == nil {
		t.Error("Parse accepted an event with no type")
	}
	if _, err := Parse([]byte(`not json`)); err == nil {
		t.Error("Parse accepted malformed JSON")
	}
	if _, err := Parse([]byte(`{"type": "m.room.message",
		"content": {"msgtype": "m.text", "body": 5}}`)); err == nil {
		t.Error("Parse accepted a non-string body")
	}
}

// Reserializing a parsed event must preserve the discriminator, the envelope,
// and the content fields.
func TestParse_MarshalRoundTrip(t *testing.T) {
	raw := []byte(`{
		"event_id": "$rt",
		"room_id": "!room",
		"sender": "@bob:example.org",
		"origin_server_ts": 1662580000123,
		"type": "m.room.message",
		"content": {"msgtype": "m.file", "body": "report.pdf",
			"filename": "Q3 report.pdf", "url": "mxc://example.org/f",
			"info": {"mimetype": "application/pdf", "size": 2048}}
	}`)
	ev, err := Parse(raw)
	require.NoError(t, err)

	out, err := json.Marshal(ev)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &m))
	require.Equal(t, "m.room.message", m["type"])
	require.Equal(t, "$rt", m["event_id"])
	require.Equal(t, "@bob:example.org", m["sender"])

	content := m["content"].(map[string]interface{})
	require.Equal(t, "m.file", content["msgtype"])
	require.Equal(t, "Q3 report.pdf", content["filename"])

	info := content["info"].(map[string]interface{})
	require.Equal(t, "application/pdf", info["mimetype"])
	// the local dimension sentinel must not leak onto the wire
	require.NotContains(t, info, "h")
	require.NotContains(t, info, "w")
}

func TestParse_StateMarshalRoundTrip(t *testing.T) {
	raw := []byte(`{
		"event_id": "$topic",
		"origin_server_ts": 9,
		"type": "m.room.topic",
		"state_key": "",
		"content": {"topic": "weekly sync"},
		"prev_content": {"topic": "old"}
	}`)
	ev, err := Parse(raw)
	require.NoError(t, err)

	out, err := json.Marshal(ev)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &m))
	require.Equal(t, "m.room.topic", m["type"])
	require.Contains(t, m, "state_key")
	require.Equal(t, "weekly sync",
		m["content"].(map[string]interface{})["topic"])
	require.Equal(t, "old",
		m["prev_content"].(map[string]interface{})["topic"])
}
