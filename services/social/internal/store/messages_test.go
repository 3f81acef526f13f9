package store

import (
	"testing"

	"cinesocial/services/social/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversations(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	b := mustUser(t, s, "bob")
	c := mustUser(t, s, "carol")
	name := "trio"

	direct := s.CreateConversation(a.ID, []int64{b.ID, a.ID}, nil)
	assert.Equal(t, entity.ConversationDirect, direct.Type)
	assert.Equal(t, []int64{a.ID, b.ID}, direct.MemberIDs)

	group := s.CreateConversation(a.ID, []int64{b.ID, c.ID}, &name)
	assert.Equal(t, entity.ConversationGroup, group.Type)

	s.SendMessage(b.ID, entity.NewMessage{ConversationID: direct.ID, Content: "hey"})

	convs := s.GetConversations(a.ID)
	require.Len(t, convs, 2)
	assert.Equal(t, direct.ID, convs[0].ID)
	assert.Len(t, s.GetConversations(c.ID), 1)
}

func TestMessages_LimitEditDelete(t *testing.T) {
	s, _ := newTestStore(t)
	conv := s.CreateConversation(1, []int64{2}, nil)
	m1 := s.SendMessage(1, entity.NewMessage{ConversationID: conv.ID, Content: "one"})
	m2 := s.SendMessage(2, entity.NewMessage{ConversationID: conv.ID, Content: "two"})
	m3 := s.SendMessage(1, entity.NewMessage{ConversationID: conv.ID, Content: "three"})

	latest := s.GetMessages(conv.ID, 2)
	require.Len(t, latest, 2)
	assert.Equal(t, m2.ID, latest[0].ID)
	assert.Equal(t, m3.ID, latest[1].ID)
	assert.Len(t, s.GetMessages(conv.ID, 0), 3)

	edited, err := s.EditMessage(m1.ID, "uno")
	require.NoError(t, err)
	assert.Equal(t, "uno", edited.Content)
	assert.NotNil(t, edited.EditedAt)

	require.NoError(t, s.DeleteMessage(m1.ID))
	all := s.GetMessages(conv.ID, 0)
	require.Len(t, all, 3)
	assert.True(t, all[0].IsDeleted)
	assert.Empty(t, all[0].Content)

	_, err = s.EditMessage(m1.ID, "again")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommunities(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustUser(t, s, "alice")
	b := mustUser(t, s, "bob")

	c := s.CreateCommunity(a.ID, entity.NewCommunity{Name: "noir"})
	assert.Equal(t, entity.CommunityPublic, c.Type)

	role, ok := s.GetCommunityRole(a.ID, c.ID)
	require.True(t, ok)
	assert.Equal(t, entity.CommunityRoleOwner, role)

	require.NoError(t, s.JoinCommunity(b.ID, c.ID, ""))
	members := s.GetCommunityMembers(c.ID)
	require.Len(t, members, 2)
	assert.Equal(t, b.ID, members[1].User.ID)
	assert.Equal(t, entity.CommunityRoleMember, members[1].Role)

	require.NoError(t, s.JoinCommunity(b.ID, c.ID, entity.CommunityRoleModerator))
	role, _ = s.GetCommunityRole(b.ID, c.ID)
	assert.Equal(t, entity.CommunityRoleModerator, role)

	s.LeaveCommunity(b.ID, c.ID)
	_, ok = s.GetCommunityRole(b.ID, c.ID)
	assert.False(t, ok)

	assert.ErrorIs(t, s.JoinCommunity(b.ID, 99, ""), ErrNotFound)

	communityID := c.ID
	p := s.CreatePost(a.ID, entity.NewPost{Content: "welcome", CommunityID: &communityID})
	posts := s.GetCommunityPosts(c.ID)
	require.Len(t, posts, 1)
	assert.Equal(t, p.ID, posts[0].ID)
}
