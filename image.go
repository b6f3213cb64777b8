package oit

import (
	"github.com/vkngwrapper/arsenal/vam"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/exp/slog"
)

// ImageAndView owns a 2D image, its device memory, and a full-resource view,
// and tracks the image's current synchronization state. The three live and
// die together: Create builds all of them, Destroy releases all of them.
//
// The state fields are authoritative. Between Create and Destroy they change
// only through TransitionTo, EndRenderPass, and EndRenderPassState; code
// that mutates the image's layout behind the tracker's back will make the
// next barrier's "before" half wrong.
//
// All methods must be called from the thread that records into the
// associated command buffer. There is no internal locking.
type ImageAndView struct {
	// Image and View are exposed for descriptor writes, framebuffer
	// attachments, and similar read-only uses.
	Image core1_0.Image
	View  core1_0.ImageView

	allocation *vam.Allocation

	width  int
	height int
	layers int
	format core1_0.Format

	state ResourceState
}

// ImageAndViewCreateInfo carries the creation parameters for an
// ImageAndView. Layers and Samples may be left zero, which selects one
// layer and one sample.
type ImageAndViewCreateInfo struct {
	// Aspect is the image aspect the view covers.
	Aspect core1_0.ImageAspectFlags
	Format core1_0.Format
	Width  int
	Height int
	Layers int
	// Usage is added to the sampled-image usage every image gets.
	Usage   core1_0.ImageUsageFlags
	Samples core1_0.SampleCountFlags
}

// Create allocates the image with device-local memory and creates its view.
// The image always has a single mip level, optimal tiling, exclusive
// sharing, an undefined initial layout, and sampled usage in addition to
// o.Usage. The view is a 2D view for a single layer and a 2D-array view
// otherwise. The synchronization state starts at undefined layout,
// top-of-pipe stage, no access.
//
// Create panics if the tracker already holds a live view; a created
// ImageAndView must be destroyed before it can be created again. Failures
// from the device or allocator are returned as-is.
func (i *ImageAndView) Create(device core1_0.Device, allocator *vam.Allocator, o ImageAndViewCreateInfo) error {
	if i.View != nil {
		panic("oit: image already created")
	}

	layers := o.Layers
	if layers == 0 {
		layers = 1
	}
	samples := o.Samples
	if samples == 0 {
		samples = core1_0.Samples1
	}

	image, _, err := device.CreateImage(nil, core1_0.ImageCreateInfo{
		ImageType: core1_0.ImageType2D,
		Extent: core1_0.Extent3D{
			Width:  o.Width,
			Height: o.Height,
			Depth:  1,
		},
		MipLevels:     1,
		ArrayLayers:   layers,
		Format:        o.Format,
		Tiling:        core1_0.ImageTilingOptimal,
		InitialLayout: core1_0.ImageLayoutUndefined,
		Usage:         core1_0.ImageUsageSampled | o.Usage,
		SharingMode:   core1_0.SharingModeExclusive,
		Samples:       samples,
	})
	if err != nil {
		return err
	}

	var allocation vam.Allocation
	_, err = allocator.AllocateMemoryForImage(image, vam.AllocationCreateInfo{
		Usage:         vam.MemoryUsageUnknown,
		RequiredFlags: core1_0.MemoryPropertyDeviceLocal,
	}, &allocation)
	if err != nil {
		image.Destroy(nil)
		return err
	}
	_, err = allocation.BindImageMemoryWithOffset(0, image, nil)
	if err != nil {
		allocation.Free()
		image.Destroy(nil)
		return err
	}

	viewType := core1_0.ImageViewType2D
	if layers > 1 {
		viewType = core1_0.ImageViewType2DArray
	}
	view, _, err := device.CreateImageView(nil, core1_0.ImageViewCreateInfo{
		Image:    image,
		ViewType: viewType,
		Format:   o.Format,
		SubresourceRange: core1_0.ImageSubresourceRange{
			AspectMask:     o.Aspect,
			BaseMipLevel:   0,
			LevelCount:     1,
			BaseArrayLayer: 0,
			LayerCount:     layers,
		},
	})
	if err != nil {
		allocation.Free()
		image.Destroy(nil)
		return err
	}

	i.Image = image
	i.View = view
	i.allocation = &allocation
	i.width = o.Width
	i.height = o.Height
	i.layers = layers
	i.format = o.Format
	i.state = initialState

	Logger().Debug("ImageAndView::Create",
		slog.Int("width", o.Width),
		slog.Int("height", o.Height),
		slog.Int("layers", layers),
	)
	return nil
}

// TransitionTo appends a barrier moving the image to the given layout,
// stages, and accesses, then records that state as current. The "before"
// half of the barrier is the tracker's stored state. The aspect is derived
// from the target layout and the image's format: the depth-stencil
// attachment layout selects depth (plus stencil for combined formats),
// anything else selects color. The barrier covers mip 0 and every layer and
// performs no queue-family ownership transfer.
func (i *ImageAndView) TransitionTo(commandBuffer core1_0.CommandBuffer, layout core1_0.ImageLayout, stages core1_0.PipelineStageFlags, accesses core1_0.AccessFlags) error {
	after := ResourceState{
		Layout:   layout,
		Stages:   stages,
		Accesses: accesses,
	}
	err := CmdImageBarrier(commandBuffer, i.Image, aspectForLayout(layout, i.format), i.layers, i.state, after)
	if err != nil {
		return err
	}
	i.state = after
	Logger().Debug("ImageAndView::TransitionTo", slog.Int("layout", int(layout)))
	return nil
}

// EndRenderPass records that a render pass left the image in finalLayout
// through its implicit final-layout transition. Only the layout is updated;
// use EndRenderPassState when the post-pass stages and accesses are known.
func (i *ImageAndView) EndRenderPass(finalLayout core1_0.ImageLayout) {
	i.state.Layout = finalLayout
}

// EndRenderPassState records the full synchronization state a render pass
// left the image in, so the next TransitionTo computes a complete "before"
// half.
func (i *ImageAndView) EndRenderPassState(state ResourceState) {
	i.state = state
}

// Destroy releases the view, the image, and its memory, and resets the
// synchronization state to the creation-time baseline. Calling Destroy on a
// never-created or already-destroyed ImageAndView is a no-op.
func (i *ImageAndView) Destroy() error {
	if i.View == nil {
		return nil
	}

	i.View.Destroy(nil)
	i.View = nil
	if i.Image != nil {
		i.Image.Destroy(nil)
		i.Image = nil
	}

	var err error
	if i.allocation != nil {
		err = i.allocation.Free()
		i.allocation = nil
	}

	i.width = 0
	i.height = 0
	i.layers = 0
	i.format = core1_0.FormatUndefined
	i.state = initialState

	Logger().Debug("ImageAndView::Destroy")
	return err
}

// SetName attaches a diagnostic label to the image's memory allocation.
func (i *ImageAndView) SetName(name string) {
	if i.allocation != nil {
		i.allocation.SetName(name)
	}
	Logger().Debug("ImageAndView::SetName", slog.String("name", name))
}

// State returns the image's current synchronization state.
func (i *ImageAndView) State() ResourceState {
	return i.state
}

// Width returns the image width recorded at creation.
func (i *ImageAndView) Width() int {
	return i.width
}

// Height returns the image height recorded at creation.
func (i *ImageAndView) Height() int {
	return i.height
}

// Layers returns the array layer count recorded at creation.
func (i *ImageAndView) Layers() int {
	return i.layers
}

// Format returns the pixel format recorded at creation.
func (i *ImageAndView) Format() core1_0.Format {
	return i.format
}
