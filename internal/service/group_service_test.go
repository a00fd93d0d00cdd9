package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vengeful-vineyard/backend/internal/domain"
	"github.com/vengeful-vineyard/backend/internal/testutil"
)

func TestGetByID_Group(t *testing.T) {
	groupRepo := testutil.NewMockGroupRepository()
	groupService := NewGroupService(groupRepo)

	groupRepo.AddGroup(&domain.Group{GroupID: 1, Name: "Dotkom", NameShort: "DK"})

	group, err := groupService.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Dotkom", group.Name)

	_, err = groupService.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrGroupNotFound)
}

func TestGetUserGroups_ByInternalAndExternalID(t *testing.T) {
	groupRepo := testutil.NewMockGroupRepository()
	groupService := NewGroupService(groupRepo)

	groupRepo.AddGroup(&domain.Group{GroupID: 1, Name: "Dotkom", NameShort: "DK"})
	groupRepo.AddGroup(&domain.Group{GroupID: 2, Name: "Arrkom", NameShort: "AK"})
	groupRepo.AddMember(5, 101, 1)
	groupRepo.AddMember(5, 101, 2)

	byInternal, err := groupService.GetUserGroups(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, byInternal, 2)

	byExternal, err := groupService.GetExternalUserGroups(context.Background(), 101)
	require.NoError(t, err)
	assert.Len(t, byExternal, 2)

	none, err := groupService.GetUserGroups(context.Background(), 6)
	require.NoError(t, err)
	assert.Empty(t, none)
}
