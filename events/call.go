////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package events

// SessionDescription is the SDP blob inside call offers and answers.
type SessionDescription struct {
	Type string `json:"type"`
	SDP  string `json:"sdp"`
}

// CallInviteContent is the content of an m.call.invite event.
type CallInviteContent struct {
	CallID   string             `json:"call_id"`
	Offer    SessionDescription `json:"offer"`
	Version  int                `json:"version"`
	Lifetime int64              `json:"lifetime,omitempty"`
}

func (c *CallInviteContent) EventType() string { return TypeCallInvite }
func (c *CallInviteContent) sealedContent()    {}

// CallAnswerContent is the content of an m.call.answer event.
type CallAnswerContent struct {
	CallID  string             `json:"call_id"`
	Answer  SessionDescription `json:"answer"`
	Version int                `json:"version"`
}

func (c *CallAnswerContent) EventType() string { return TypeCallAnswer }
func (c *CallAnswerContent) sealedContent()    {}

// CallHangUpContent is the content of an m.call.hangup event.
type CallHangUpContent struct {
	CallID  string `json:"call_id"`
	Version int    `json:"version"`
	Reason  string `json:"reason,omitempty"`
}

func (c *CallHangUpContent) EventType() string { return TypeCallHangUp }
func (c *CallHangUpContent) sealedContent()    {}

// CallCandidate is a single ICE candidate offered during call setup.
type CallCandidate struct {
	SDPMid        string `json:"sdpMid"`
	SDPMLineIndex int    `json:"sdpMLineIndex"`
	Candidate     string `json:"candidate"`
}

// CallCandidatesContent is the content of an m.call.candidates event.
type CallCandidatesContent struct {
	CallID     string          `json:"call_id"`
	Candidates []CallCandidate `json:"candidates"`
	Version    int             `json:"version"`
}

func (c *CallCandidatesContent) EventType() string { return TypeCallCandidates }
func (c *CallCandidatesContent) sealedContent()    {}
