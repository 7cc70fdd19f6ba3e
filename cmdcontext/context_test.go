package cmdcontext_test

import (
	"testing"

	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/backend/noop"
	"github.com/ashenforge/render/cmdcontext"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T) (*cmdcontext.Context, *noop.Backend) {
	t.Helper()
	b := noop.New(nil)
	require.NoError(t, b.Initialize(0, 640, 480))
	require.NoError(t, b.BeginFrame())
	list := b.CreateCommandContext()
	return cmdcontext.New(list, b.Arenas()), b
}

func TestDrawWithoutVertexBufferFails(t *testing.T) {
	ctx, _ := newContext(t)
	err := ctx.Draw(3, 1, 0)
	require.ErrorIs(t, err, render.ErrResourceNotBound)
}

func TestDrawIndexedRequiresBothBuffers(t *testing.T) {
	ctx, _ := newContext(t)
	require.NoError(t, ctx.SetVertexBuffer(make([]byte, 48), 16))
	err := ctx.DrawIndexed(6, 1, 0, 0)
	require.ErrorIs(t, err, render.ErrResourceNotBound)

	require.NoError(t, ctx.SetIndexBuffer(make([]byte, 12), false))
	require.NoError(t, ctx.DrawIndexed(6, 1, 0, 0))
}

func TestSetConstantBufferRejectsUnknownName(t *testing.T) {
	ctx, _ := newContext(t)
	err := ctx.SetConstantBuffer("NotARealConstant", make([]byte, 64))
	require.ErrorIs(t, err, render.ErrUnknownConstantName)
}

func TestSetConstantBufferAcceptsFixedNames(t *testing.T) {
	ctx, _ := newContext(t)
	for _, name := range render.ConstantNames {
		require.NoError(t, ctx.SetConstantBuffer(name, make([]byte, 64)))
	}
}

func TestInvalidViewportAndScissorRejected(t *testing.T) {
	ctx, _ := newContext(t)
	require.ErrorIs(t, ctx.SetViewport(render.Viewport{Width: 0, Height: 10}), render.ErrInvalidViewport)
	require.ErrorIs(t, ctx.SetScissorRect(render.ScissorRect{Width: -1, Height: 10}), render.ErrInvalidScissor)
}

func TestDrawAfterBindingSucceeds(t *testing.T) {
	ctx, b := newContext(t)
	require.NoError(t, ctx.SetVertexBuffer(make([]byte, 48), 16))
	require.NoError(t, ctx.Draw(3, 1, 0))

	recs := b.RecordedDraws()
	if len(recs) != 1 || len(recs[0].Draws) != 1 {
		t.Fatalf("expected one recorded draw, got %+v", recs)
	}
}
