package oit

import (
	"github.com/vkngwrapper/arsenal/vam"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/exp/slog"
)

// BufferAndView owns a buffer, its device memory, and, for texel-buffer
// usages, a whole-buffer view. Unlike ImageAndView it keeps no
// synchronization state: buffer barriers are issued ad hoc through
// MemoryBarrier with caller-supplied masks.
type BufferAndView struct {
	Buffer core1_0.Buffer
	// View is non-nil only when the buffer was created with uniform-texel
	// or storage-texel usage.
	View core1_0.BufferView

	allocation *vam.Allocation
	size       int
}

// BufferAndViewCreateInfo carries the creation parameters for a
// BufferAndView. Format is only consulted when Usage includes a
// texel-buffer flag, in which case it becomes the view's element format.
type BufferAndViewCreateInfo struct {
	Size   int
	Usage  core1_0.BufferUsageFlags
	Format core1_0.Format
}

// Create allocates the buffer with device-local memory and, when o.Usage
// includes uniform-texel or storage-texel usage, a view covering the whole
// buffer. Sharing is exclusive.
//
// Create panics if the tracker already holds a live buffer. Failures from
// the device or allocator are returned as-is.
func (b *BufferAndView) Create(device core1_0.Device, allocator *vam.Allocator, o BufferAndViewCreateInfo) error {
	if b.Buffer != nil {
		panic("oit: buffer already created")
	}

	buffer, _, err := device.CreateBuffer(nil, core1_0.BufferCreateInfo{
		Size:        o.Size,
		Usage:       o.Usage,
		SharingMode: core1_0.SharingModeExclusive,
	})
	if err != nil {
		return err
	}

	var allocation vam.Allocation
	_, err = allocator.AllocateMemoryForBuffer(buffer, vam.AllocationCreateInfo{
		Usage:         vam.MemoryUsageUnknown,
		RequiredFlags: core1_0.MemoryPropertyDeviceLocal,
	}, &allocation)
	if err != nil {
		buffer.Destroy(nil)
		return err
	}
	_, err = allocation.BindBufferMemoryWithOffset(0, buffer, nil)
	if err != nil {
		allocation.Free()
		buffer.Destroy(nil)
		return err
	}

	if hasTexelUsage(o.Usage) {
		view, _, err := device.CreateBufferView(nil, core1_0.BufferViewCreateInfo{
			Buffer: buffer,
			Format: o.Format,
			Offset: 0,
			Range:  o.Size,
		})
		if err != nil {
			allocation.Free()
			buffer.Destroy(nil)
			return err
		}
		b.View = view
	}

	b.Buffer = buffer
	b.allocation = &allocation
	b.size = o.Size

	Logger().Debug("BufferAndView::Create", slog.Int("size", o.Size))
	return nil
}

// MemoryBarrier appends a whole-buffer barrier ordering the given source
// stages and accesses before the given destination stages and accesses. No
// queue-family ownership transfer is performed.
func (b *BufferAndView) MemoryBarrier(commandBuffer core1_0.CommandBuffer, srcStages, dstStages core1_0.PipelineStageFlags, srcAccesses, dstAccesses core1_0.AccessFlags) error {
	return commandBuffer.CmdPipelineBarrier(
		srcStages, dstStages, 0, nil,
		[]core1_0.BufferMemoryBarrier{
			{
				SrcAccessMask:       srcAccesses,
				DstAccessMask:       dstAccesses,
				SrcQueueFamilyIndex: -1,
				DstQueueFamilyIndex: -1,
				Buffer:              b.Buffer,
				Offset:              0,
				Size:                b.size,
			},
		}, nil)
}

// Destroy releases the view (when one was created), the buffer, and its
// memory. Calling Destroy on a never-created or already-destroyed
// BufferAndView is a no-op.
func (b *BufferAndView) Destroy() error {
	if b.Buffer == nil {
		return nil
	}

	if b.View != nil {
		b.View.Destroy(nil)
		b.View = nil
	}
	b.Buffer.Destroy(nil)
	b.Buffer = nil

	var err error
	if b.allocation != nil {
		err = b.allocation.Free()
		b.allocation = nil
	}
	b.size = 0

	Logger().Debug("BufferAndView::Destroy")
	return err
}

// SetName attaches a diagnostic label to the buffer's memory allocation.
func (b *BufferAndView) SetName(name string) {
	if b.allocation != nil {
		b.allocation.SetName(name)
	}
	Logger().Debug("BufferAndView::SetName", slog.String("name", name))
}

// Size returns the buffer's byte size recorded at creation.
func (b *BufferAndView) Size() int {
	return b.size
}

func hasTexelUsage(usage core1_0.BufferUsageFlags) bool {
	return usage&(core1_0.BufferUsageUniformTexelBuffer|core1_0.BufferUsageStorageTexelBuffer) != 0
}
