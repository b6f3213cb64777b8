package oit

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/driver"
)

// recordingCommandBuffer captures pipeline barriers instead of recording
// them into a live command buffer.
type recordingCommandBuffer struct {
	core1_0.CommandBuffer

	calls []barrierCall
	err   error
}

type barrierCall struct {
	srcStages core1_0.PipelineStageFlags
	dstStages core1_0.PipelineStageFlags
	memory    []core1_0.MemoryBarrier
	buffer    []core1_0.BufferMemoryBarrier
	image     []core1_0.ImageMemoryBarrier
}

func (c *recordingCommandBuffer) CmdPipelineBarrier(srcStageMask core1_0.PipelineStageFlags, dstStageMask core1_0.PipelineStageFlags, dependencies core1_0.DependencyFlags, memoryBarriers []core1_0.MemoryBarrier, bufferMemoryBarriers []core1_0.BufferMemoryBarrier, imageMemoryBarriers []core1_0.ImageMemoryBarrier) error {
	if c.err != nil {
		return c.err
	}
	c.calls = append(c.calls, barrierCall{
		srcStages: srcStageMask,
		dstStages: dstStageMask,
		memory:    memoryBarriers,
		buffer:    bufferMemoryBarriers,
		image:     imageMemoryBarriers,
	})
	return nil
}

type fakeImage struct {
	core1_0.Image

	destroyed int
}

func (i *fakeImage) Destroy(callbacks *driver.AllocationCallbacks) {
	i.destroyed++
}

type fakeImageView struct {
	core1_0.ImageView

	destroyed int
}

func (v *fakeImageView) Destroy(callbacks *driver.AllocationCallbacks) {
	v.destroyed++
}

type fakeBuffer struct {
	core1_0.Buffer

	destroyed int
}

func (b *fakeBuffer) Destroy(callbacks *driver.AllocationCallbacks) {
	b.destroyed++
}

type fakeBufferView struct {
	core1_0.BufferView

	destroyed int
}

func (v *fakeBufferView) Destroy(callbacks *driver.AllocationCallbacks) {
	v.destroyed++
}

// newTestImage builds a tracker in the state Create leaves it in, backed by
// fake handles so tests need no device.
func newTestImage(format core1_0.Format, width, height, layers int) *ImageAndView {
	return &ImageAndView{
		Image:  &fakeImage{},
		View:   &fakeImageView{},
		width:  width,
		height: height,
		layers: layers,
		format: format,
		state:  initialState,
	}
}

// newTestBuffer builds a created BufferAndView backed by fake handles.
func newTestBuffer(size int, withView bool) *BufferAndView {
	b := &BufferAndView{
		Buffer: &fakeBuffer{},
		size:   size,
	}
	if withView {
		b.View = &fakeBufferView{}
	}
	return b
}
