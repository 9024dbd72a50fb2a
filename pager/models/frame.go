package models

// EmptyOwner marks a frame that holds no page.
const EmptyOwner = -1

// Frame is a physical memory slot. Page and ticks are meaningless while the frame is empty.
type Frame struct {
	Owner        int `json:"owner"`
	Page         int `json:"page"`
	LastUsedTick int `json:"last_used_tick"`
	LoadTick     int `json:"load_tick"`
}

func EmptyFrame() Frame {
	return Frame{Owner: EmptyOwner}
}

func (f Frame) IsEmpty() bool {
	return f.Owner == EmptyOwner
}

// Holds reports whether the frame maps page of process.
func (f Frame) Holds(process, page int) bool {
	return f.Owner == process && f.Page == page
}
