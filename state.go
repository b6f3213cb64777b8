package oit

import (
	"github.com/vkngwrapper/core/v2/core1_0"
)

// ResourceState is the synchronization state of an image resource as of its
// last barrier: the layout it is organized in, the pipeline stages that may
// access it, and the access rights those stages hold. Barriers are described
// as a before/after pair of these.
type ResourceState struct {
	Layout   core1_0.ImageLayout
	Stages   core1_0.PipelineStageFlags
	Accesses core1_0.AccessFlags
}

// initialState is the baseline for freshly created and destroyed images.
var initialState = ResourceState{
	Layout:   core1_0.ImageLayoutUndefined,
	Stages:   core1_0.PipelineStageTopOfPipe,
	Accesses: 0,
}

// CmdImageBarrier appends one pipeline barrier to commandBuffer that moves
// image from the before state to the after state. The barrier covers mip
// level 0 and layerCount layers starting at layer 0, stays on the same queue
// family, and applies to the given image aspect.
func CmdImageBarrier(commandBuffer core1_0.CommandBuffer, image core1_0.Image, aspect core1_0.ImageAspectFlags, layerCount int, before, after ResourceState) error {
	return commandBuffer.CmdPipelineBarrier(
		before.Stages, after.Stages, 0, nil, nil,
		[]core1_0.ImageMemoryBarrier{
			{
				OldLayout:           before.Layout,
				NewLayout:           after.Layout,
				SrcQueueFamilyIndex: -1,
				DstQueueFamilyIndex: -1,
				Image:               image,
				SubresourceRange: core1_0.ImageSubresourceRange{
					AspectMask:     aspect,
					BaseMipLevel:   0,
					LevelCount:     1,
					BaseArrayLayer: 0,
					LayerCount:     layerCount,
				},
				SrcAccessMask: before.Accesses,
				DstAccessMask: after.Accesses,
			},
		})
}

// aspectForLayout picks the aspect a transition to layout applies to. Only
// the depth-stencil attachment layout selects the depth plane, plus the
// stencil plane when the format carries one; every other layout is treated
// as color.
func aspectForLayout(layout core1_0.ImageLayout, format core1_0.Format) core1_0.ImageAspectFlags {
	if layout != core1_0.ImageLayoutDepthStencilAttachmentOptimal {
		return core1_0.ImageAspectColor
	}

	aspect := core1_0.ImageAspectDepth
	if hasStencilComponent(format) {
		aspect |= core1_0.ImageAspectStencil
	}
	return aspect
}

func hasStencilComponent(format core1_0.Format) bool {
	return format == core1_0.FormatD32SignedFloatS8UnsignedInt || format == core1_0.FormatD24UnsignedNormalizedS8UnsignedInt
}
