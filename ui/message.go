// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import "cogentcore.org/uix/pool"

// Message is a routed UI message, delivered in FIFO order to the node
// identified by Destination during [Interface.FlushMessages]. Data is
// one of the payload types defined in this file, dispatched by type
// switch in the destination's [Node.HandleMessage].
type Message struct {
	// Destination is the handle of the node this message is addressed to.
	// Messages to dead or nil handles are dropped.
	Destination pool.Handle

	// Data is the message payload.
	Data any

	// Handled marks the message as consumed by a handler.
	Handled bool
}

// WidgetTopmost requests that the destination widget be rendered above
// its siblings, by moving it to the end of its parent's child list.
type WidgetTopmost struct{}

// WidgetVisible sets the visibility of the destination widget.
type WidgetVisible struct {
	Visible bool
}

// PopupOpen requests that the destination [Popup] transition to open.
type PopupOpen struct{}

// PopupClose requests that the destination [Popup] transition to closed.
type PopupClose struct{}

// PopupContent replaces the content subtree of the destination [Popup].
// A nil Content handle leaves the popup without content.
type PopupContent struct {
	Content pool.Handle
}

// PopupPlacement sets the placement strategy of the destination [Popup].
type PopupPlacement struct {
	Placement Placement
}
