package noop

import (
	render "github.com/ashenforge/render"
	"github.com/ashenforge/render/backend"
)

// commandList is the noop implementation of backend.CommandList. It does
// not validate bindings itself - that is cmdcontext's job - it only
// records what the backend was asked to do, for test inspection.
type commandList struct {
	sink *Recorded
}

func (c *commandList) BindVertexBuffer(_ uint64, _ uint32)                    {}
func (c *commandList) BindIndexBuffer(_ uint64, _ bool)                       {}
func (c *commandList) BindConstant(_ render.ConstantSlot, _ uint64, _ uint32) {}
func (c *commandList) BindShaderResource(_ uint32, _ render.Handle)           {}
func (c *commandList) BindSampler(_ uint32, _ render.Handle)                  {}
func (c *commandList) SetViewport(_ render.Viewport)                         {}
func (c *commandList) SetScissor(_ render.ScissorRect)                       {}

func (c *commandList) SetRenderTargets(colorViews []backend.RenderTargetView, depth backend.DepthStencilView) {
	c.sink.RenderTargetCount = len(colorViews)
}

func (c *commandList) ClearRenderTarget(_ backend.RenderTargetView, color [4]float32) {
	c.sink.Clears = append(c.sink.Clears, color)
}

func (c *commandList) ClearDepthStencil(_ backend.DepthStencilView, depth float32) {
	c.sink.DepthClears = append(c.sink.DepthClears, depth)
}

func (c *commandList) Draw(vertexCount, instanceCount, firstVertex uint32) {
	c.sink.Draws = append(c.sink.Draws, DrawCall{
		VertexCount:   vertexCount,
		InstanceCount: instanceCount,
		FirstVertex:   firstVertex,
	})
}

func (c *commandList) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32) {
	c.sink.Draws = append(c.sink.Draws, DrawCall{
		Indexed:       true,
		VertexCount:   indexCount,
		InstanceCount: instanceCount,
		FirstIndex:    firstIndex,
		BaseVertex:    baseVertex,
	})
}
