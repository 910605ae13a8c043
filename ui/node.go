// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"fmt"

	"cogentcore.org/uix/events"
	"cogentcore.org/uix/pool"
)

// Node is the interface that all uix widget variants satisfy.
// The core widget functionality is defined on [WidgetBase], which all
// variants must embed; this interface contains only the capabilities
// that variants may override.
type Node interface {
	// AsWidget returns the [WidgetBase] of this node.
	AsWidget() *WidgetBase

	// HandleMessage processes one routed message addressed to this node.
	// It is called synchronously during [Interface.FlushMessages], and
	// only for messages whose destination matches this node's handle.
	HandleMessage(ui *Interface, msg *Message)

	// HandleOSEvent processes one raw input sample. It is called
	// synchronously, outside the message queue, once per sample for
	// every live node. Implementations must not mutate shared state
	// directly; they may enqueue messages.
	HandleOSEvent(self pool.Handle, ui *Interface, e events.Event)

	// Resolve rewrites this node's handle fields against the given
	// mapping, as the second pass after a bulk graph copy or reload.
	Resolve(m HandleMapping)

	// RawCopy returns a deep copy of this node with slot-specific
	// state cleared. Handle fields still refer to the original graph
	// until [Node.Resolve] is called with a mapping for the copy.
	RawCopy() Node
}

// HandleMapping maps handles in an original node graph to their
// counterparts in a copied or reloaded graph. It is produced by bulk
// operations such as [Interface.CopyNode] and consumed by [Node.Resolve].
type HandleMapping map[pool.Handle]pool.Handle

// Resolve rewrites the given optional handle field in place.
// A handle absent from the mapping is left unchanged.
func (m HandleMapping) Resolve(h *pool.Handle) {
	if n, ok := m[*h]; ok {
		*h = n
	}
}

// MustResolve rewrites the given required handle field in place.
// It panics if the handle is absent from the mapping: a required
// structural link that cannot be remapped is unrepairable.
func (m HandleMapping) MustResolve(h *pool.Handle) {
	n, ok := m[*h]
	if !ok {
		panic(fmt.Sprintf("ui.HandleMapping: required handle %v has no mapping entry", *h))
	}
	*h = n
}
