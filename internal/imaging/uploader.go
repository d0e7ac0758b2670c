package imaging

import (
	"context"
	"fmt"
)

// SlotState tracks where a slot is in the select → crop → transfer pipeline.
type SlotState int

const (
	StateIdle SlotState = iota
	StateCropping
	StateUploading
	StateRemoving
)

// Binding ties a slot to the draft field it manages and the transport calls
// that mutate the server copy. Get and Set read and write the draft's URL for
// the slot; Upload and Remove talk to the backend.
type Binding struct {
	Get    func() string
	Set    func(url string)
	Upload func(ctx context.Context, filename string, data []byte) (string, error)
	Remove func(ctx context.Context) error
}

// Uploader runs the image pipeline for a single slot. Transfers are split in
// three phases so that only the network call leaves the update loop: a Start
// method mutates slot state and snapshots the draft, a Run method performs
// the remote call without touching any slot state, and a Finish method
// applies the outcome. A failed transfer never leaves the draft pointing
// anywhere new.
type Uploader struct {
	Slot    Slot
	binding Binding

	state SlotState
	task  *CropTask
	prev  string
}

func NewUploader(slot Slot, b Binding) *Uploader {
	return &Uploader{Slot: slot, binding: b}
}

func (u *Uploader) State() SlotState {
	return u.state
}

// Task returns the in-flight crop task, or nil outside the cropping state.
func (u *Uploader) Task() *CropTask {
	return u.task
}

// Select loads the file at path and opens a crop task for it. A slot that is
// already cropping or transferring rejects the new selection.
func (u *Uploader) Select(path string) error {
	if u.state != StateIdle {
		return fmt.Errorf("slot is busy")
	}
	img, err := LoadFile(path)
	if err != nil {
		return err
	}
	u.task = NewCropTask(img, u.Slot)
	u.state = StateCropping
	return nil
}

// Cancel discards the in-flight crop and returns the slot to idle. The draft
// value is untouched. Cancelling a transfer in progress is not supported; the
// call is a no-op outside the cropping state.
func (u *Uploader) Cancel() {
	if u.state != StateCropping {
		return
	}
	u.task = nil
	u.state = StateIdle
}

// StartUpload encodes the crop and marks the slot as uploading. The returned
// payload is handed to RunUpload off the update loop; FinishUpload applies
// the outcome.
func (u *Uploader) StartUpload() (filename string, data []byte, err error) {
	if u.state != StateCropping {
		return "", nil, fmt.Errorf("nothing to confirm")
	}
	data, err = u.task.Confirm()
	if err != nil {
		return "", nil, err
	}
	u.state = StateUploading
	return u.task.Filename(), data, nil
}

// RunUpload performs the network transfer only. It reads no slot state and is
// safe to call from a command goroutine.
func (u *Uploader) RunUpload(ctx context.Context, filename string, data []byte) (string, error) {
	return u.binding.Upload(ctx, filename, data)
}

// FinishUpload applies the transfer outcome. On failure the draft keeps its
// previous value and the slot returns to cropping so the user can retry or
// cancel; on success the server URL is written and the slot idles.
func (u *Uploader) FinishUpload(url string, err error) {
	if u.state != StateUploading {
		return
	}
	if err != nil {
		u.state = StateCropping
		return
	}
	u.binding.Set(url)
	u.task = nil
	u.state = StateIdle
}

// StartRemove snapshots the draft value, clears it, and marks the slot as
// removing. Reports false with no error when the slot has nothing to remove.
func (u *Uploader) StartRemove() (bool, error) {
	if u.state != StateIdle {
		return false, fmt.Errorf("slot is busy")
	}
	prev := u.binding.Get()
	if prev == "" {
		return false, nil
	}
	u.prev = prev
	u.binding.Set("")
	u.state = StateRemoving
	return true, nil
}

// RunRemove performs the server-side deletion only; safe off the update loop.
func (u *Uploader) RunRemove(ctx context.Context) error {
	return u.binding.Remove(ctx)
}

// FinishRemove restores the snapshotted value if the deletion failed.
func (u *Uploader) FinishRemove(err error) {
	if u.state != StateRemoving {
		return
	}
	if err != nil {
		u.binding.Set(u.prev)
	}
	u.prev = ""
	u.state = StateIdle
}
