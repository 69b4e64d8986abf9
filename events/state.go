////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package events

// NameContent is the content of an m.room.name state event.
type NameContent struct {
	Name string `json:"name"`
}

func (c *NameContent) EventType() string { return TypeRoomName }
func (c *NameContent) sealedContent()    {}

// TopicContent is the content of an m.room.topic state event.
type TopicContent struct {
	Topic string `json:"topic"`
}

func (c *TopicContent) EventType() string { return TypeRoomTopic }
func (c *TopicContent) sealedContent()    {}

// AvatarContent is the content of an m.room.avatar state event.
type AvatarContent struct {
	URL string `json:"url"`
}

func (c *AvatarContent) EventType() string { return TypeRoomAvatar }
func (c *AvatarContent) sealedContent()    {}
func (c *AvatarContent) GetURL() string    { return c.URL }

// MemberContent is the content of an m.room.member state event.
type MemberContent struct {
	Membership  string `json:"membership"`
	DisplayName string `json:"displayname,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

func (c *MemberContent) EventType() string { return TypeRoomMember }
func (c *MemberContent) sealedContent()    {}

// CreateContent is the content of an m.room.create state event.
type CreateContent struct {
	Creator     string `json:"creator,omitempty"`
	RoomVersion string `json:"room_version,omitempty"`
}

func (c *CreateContent) EventType() string { return TypeRoomCreate }
func (c *CreateContent) sealedContent()    {}

// CanonicalAliasContent is the content of an m.room.canonical_alias state
// event.
type CanonicalAliasContent struct {
	Alias      string   `json:"alias,omitempty"`
	AltAliases []string `json:"alt_aliases,omitempty"`
}

func (c *CanonicalAliasContent) EventType() string { return TypeRoomCanonicalAlias }
func (c *CanonicalAliasContent) sealedContent()    {}

// JoinRulesContent is the content of an m.room.join_rules state event.
type JoinRulesContent struct {
	JoinRule string `json:"join_rule"`
}

func (c *JoinRulesContent) EventType() string { return TypeRoomJoinRules }
func (c *JoinRulesContent) sealedContent()    {}

// HistoryVisibilityContent is the content of an m.room.history_visibility
// state event.
type HistoryVisibilityContent struct {
	HistoryVisibility string `json:"history_visibility"`
}

func (c *HistoryVisibilityContent) EventType() string { return TypeRoomHistoryVisibility }
func (c *HistoryVisibilityContent) sealedContent()    {}

// PinnedEventsContent is the content of an m.room.pinned_events state event.
type PinnedEventsContent struct {
	Pinned []string `json:"pinned"`
}

func (c *PinnedEventsContent) EventType() string { return TypeRoomPinnedEvents }
func (c *PinnedEventsContent) sealedContent()    {}
