// Package oit wraps the Vulkan buffer and image resources used by an
// order-independent-transparency sample. Each wrapper pairs a resource with
// its device memory and a full-resource view, and ImageAndView additionally
// tracks the image's current synchronization state (layout, pipeline stages,
// access mask) so that every pipeline barrier it emits carries the correct
// "before" half.
//
// The model is deliberately small: one queue family, a single mip level, no
// sub-resource granularity, and no barrier batching. All layout transitions
// for a tracked image go through ImageAndView.TransitionTo; transitions a
// render pass performs on its own are reported back with EndRenderPassState
// (or EndRenderPass when only the layout is known). Images outside the
// tracker's ownership, such as swapchain images, can be transitioned with
// CmdImageBarrier directly.
//
// Device memory comes from a vam.Allocator. The package borrows the device
// and allocator during Create and never stores them.
package oit
