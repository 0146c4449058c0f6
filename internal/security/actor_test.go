package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentadesk-backend/internal/domain"
)

func TestCurrentActor_AccountIdentity(t *testing.T) {
	resolver := NewActorResolver()
	ctx := WithAccountID(context.Background(), 42)

	actor := resolver.CurrentActor(ctx)
	assert.Equal(t, domain.ActorKindAccount, actor.Kind)
	require.NotNil(t, actor.ID)
	assert.Equal(t, int32(42), *actor.ID)
}

func TestCurrentActor_TenantLocalIdentity(t *testing.T) {
	resolver := NewActorResolver()
	ctx := WithTenantLocalID(context.Background(), 7)

	actor := resolver.CurrentActor(ctx)
	assert.Equal(t, domain.ActorKindTenantLocal, actor.Kind)
	require.NotNil(t, actor.ID)
	assert.Equal(t, int32(7), *actor.ID)
}

func TestCurrentActor_AccountWinsOverTenantLocal(t *testing.T) {
	resolver := NewActorResolver()
	ctx := WithTenantLocalID(WithAccountID(context.Background(), 42), 7)

	actor := resolver.CurrentActor(ctx)
	assert.Equal(t, domain.ActorKindAccount, actor.Kind)
	require.NotNil(t, actor.ID)
	assert.Equal(t, int32(42), *actor.ID)
}

func TestCurrentActor_NoIdentity(t *testing.T) {
	resolver := NewActorResolver()

	actor := resolver.CurrentActor(context.Background())
	assert.Equal(t, domain.ActorKindNone, actor.Kind)
	assert.Nil(t, actor.ID)
}
