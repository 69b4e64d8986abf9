////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package events

import "time"

// Envelope holds the fields shared by every timeline event regardless of its
// content shape: identity, origin, sender, timestamp, and transaction
// metadata. It is embedded by value in every event wrapper.
type Envelope struct {
	EventID        string       `json:"event_id,omitempty"`
	RoomID         string       `json:"room_id,omitempty"`
	Sender         string       `json:"sender,omitempty"`
	OriginServerTS int64        `json:"origin_server_ts"`
	Unsigned       UnsignedData `json:"unsigned"`
}

// UnsignedData carries metadata the origin server attaches outside the signed
// portion of an event.
type UnsignedData struct {
	// TransactionID echoes the client-chosen ID for events this session
	// sent itself; empty for everything received from other clients.
	TransactionID string `json:"transaction_id,omitempty"`

	// Age is the time in milliseconds since the event was sent, as
	// reported by the origin server.
	Age int64 `json:"age,omitempty"`
}

// Timestamp converts the origin server's epoch-millisecond timestamp to a
// time.Time in UTC. The conversion is exact for every valid epoch value.
func (e *Envelope) Timestamp() time.Time {
	return time.UnixMilli(e.OriginServerTS).UTC()
}

func (u UnsignedData) isZero() bool {
	return u.TransactionID == "" && u.Age == 0
}
