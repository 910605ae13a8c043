// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"log/slog"
	"slices"

	"cogentcore.org/uix/events"
	"cogentcore.org/uix/math32"
	"cogentcore.org/uix/pool"
)

// Interface is the UI manager. It owns the node arena, the routed
// message queue, the picking restriction stack, the mouse capture slot,
// and the layout pass. All methods must be called from the one logical
// thread driving the event loop; none of them block.
type Interface struct {
	// Nodes is the arena of all registered widget nodes.
	Nodes pool.Pool[Node]

	root           pool.Handle
	screenSize     math32.Vector2
	cursorPosition math32.Vector2
	restrictions   []pool.Handle
	captured       pool.Handle
	messages       []Message
	needsLayout    bool
}

// NewInterface returns a new [Interface] with the given screen size
// and a registered root container node.
func NewInterface(screenSize math32.Vector2) *Interface {
	ui := &Interface{screenSize: screenSize}
	root := NewWidgetBuilder().SetSize(screenSize).Base()
	ui.root = ui.AddNode(&root)
	return ui
}

// Root returns the handle of the root container node. All parentless
// nodes are linked under it when registered.
func (ui *Interface) Root() pool.Handle {
	return ui.root
}

// ScreenSize returns the current screen size.
func (ui *Interface) ScreenSize() math32.Vector2 {
	return ui.screenSize
}

// SetScreenSize sets the screen size and invalidates layout.
func (ui *Interface) SetScreenSize(size math32.Vector2) {
	ui.screenSize = size
	if rw := ui.Widget(ui.root); rw != nil {
		rw.DesiredSize = size
	}
	ui.InvalidateLayout()
}

// CursorPosition returns the last known cursor position, updated from
// positional events in [Interface.ProcessOSEvent].
func (ui *Interface) CursorPosition() math32.Vector2 {
	return ui.cursorPosition
}

// Widget returns the [WidgetBase] of the node with the given handle,
// or nil if the handle is dead.
func (ui *Interface) Widget(h pool.Handle) *WidgetBase {
	n, ok := ui.Nodes.Get(h)
	if !ok {
		return nil
	}
	return n.AsWidget()
}

// AddNode registers the given node, adopts its declared children, and
// links it under the root if it has no parent. It returns the new handle.
func (ui *Interface) AddNode(n Node) pool.Handle {
	if n == nil {
		panic("ui.Interface.AddNode: node must not be nil")
	}
	h := ui.addRaw(n)
	wb := n.AsWidget()
	for _, child := range wb.Children {
		cw := ui.Widget(child)
		if cw == nil {
			slog.Error("ui.Interface.AddNode: dead child handle", "child", child)
			continue
		}
		ui.detach(child, cw)
		cw.Parent = h
	}
	if wb.Parent.IsNil() && ui.root.IsSome() {
		ui.LinkNodes(h, ui.root)
	}
	ui.InvalidateLayout()
	return h
}

// addRaw places the node in the arena and wires its back-references,
// without touching parent/child links.
func (ui *Interface) addRaw(n Node) pool.Handle {
	h := ui.Nodes.Add(n)
	wb := n.AsWidget()
	wb.Self = h
	wb.ui = ui
	return h
}

// RemoveNode removes the node with the given handle and its whole
// subtree from the graph, releasing capture and any picking
// restrictions held by removed nodes. Removing a dead or nil handle
// is a no-op.
func (ui *Interface) RemoveNode(h pool.Handle) {
	wb := ui.Widget(h)
	if wb == nil {
		return
	}
	ui.detach(h, wb)
	ui.removeSubtree(h)
	ui.InvalidateLayout()
}

func (ui *Interface) removeSubtree(h pool.Handle) {
	n, ok := ui.Nodes.Remove(h)
	if !ok {
		return
	}
	if ui.captured == h {
		ui.captured = pool.Handle{}
	}
	ui.restrictions = slices.DeleteFunc(ui.restrictions, func(r pool.Handle) bool {
		return r == h
	})
	for _, child := range n.AsWidget().Children {
		ui.removeSubtree(child)
	}
}

// LinkNodes makes child a child of parent, unlinking it from any
// previous parent. A nil child handle is a no-op.
func (ui *Interface) LinkNodes(child, parent pool.Handle) {
	if child.IsNil() {
		return
	}
	cw := ui.Widget(child)
	pw := ui.Widget(parent)
	if cw == nil || pw == nil {
		slog.Error("ui.Interface.LinkNodes: dead handle", "child", child, "parent", parent)
		return
	}
	ui.detach(child, cw)
	pw.Children = append(pw.Children, child)
	cw.Parent = parent
	ui.InvalidateLayout()
}

// detach removes the child from its current parent's child list.
func (ui *Interface) detach(child pool.Handle, cw *WidgetBase) {
	pw := ui.Widget(cw.Parent)
	cw.Parent = pool.Handle{}
	if pw == nil {
		return
	}
	pw.Children = slices.DeleteFunc(pw.Children, func(c pool.Handle) bool {
		return c == child
	})
}

// moveToTop moves the node to the end of its parent's child list,
// so that it renders above its siblings.
func (ui *Interface) moveToTop(h pool.Handle) {
	wb := ui.Widget(h)
	if wb == nil {
		return
	}
	pw := ui.Widget(wb.Parent)
	if pw == nil {
		return
	}
	i := slices.Index(pw.Children, h)
	if i < 0 || i == len(pw.Children)-1 {
		return
	}
	pw.Children = append(slices.Delete(pw.Children, i, i+1), h)
}

// TopPickingRestriction returns the handle on top of the picking
// restriction stack, or the nil handle if the stack is empty.
func (ui *Interface) TopPickingRestriction() pool.Handle {
	if n := len(ui.restrictions); n > 0 {
		return ui.restrictions[n-1]
	}
	return pool.Handle{}
}

// PushPickingRestriction pushes the given handle onto the picking
// restriction stack, giving it exclusive input priority.
func (ui *Interface) PushPickingRestriction(h pool.Handle) {
	ui.restrictions = append(ui.restrictions, h)
}

// PopPickingRestriction pops and returns the top of the picking
// restriction stack. Pushes and pops must be symmetric per
// open/close cycle; popping an empty stack is a programmer error
// and returns the nil handle.
func (ui *Interface) PopPickingRestriction() pool.Handle {
	n := len(ui.restrictions)
	if n == 0 {
		slog.Error("ui.Interface.PopPickingRestriction: stack is empty")
		return pool.Handle{}
	}
	top := ui.restrictions[n-1]
	ui.restrictions = ui.restrictions[:n-1]
	return top
}

// PickingRestrictions returns a copy of the picking restriction stack,
// bottom to top.
func (ui *Interface) PickingRestrictions() []pool.Handle {
	return slices.Clone(ui.restrictions)
}

// CapturedNode returns the handle of the node holding exclusive mouse
// capture, or the nil handle if none does.
func (ui *Interface) CapturedNode() pool.Handle {
	return ui.captured
}

// CaptureMouse directs all pointer input to the given node until
// [Interface.ReleaseMouseCapture] is called.
func (ui *Interface) CaptureMouse(h pool.Handle) {
	ui.captured = h
}

// ReleaseMouseCapture releases exclusive mouse capture.
func (ui *Interface) ReleaseMouseCapture() {
	ui.captured = pool.Handle{}
}

// Send appends the given message to the queue. It is delivered during
// the next [Interface.FlushMessages].
func (ui *Interface) Send(msg Message) {
	ui.messages = append(ui.messages, msg)
}

// FlushMessages drains the message queue in FIFO order, delivering each
// message to its destination node's [Node.HandleMessage]. Handlers run
// to completion and may enqueue further messages, which are consumed in
// the same drain. Messages to dead handles are dropped.
func (ui *Interface) FlushMessages() {
	for len(ui.messages) > 0 {
		msg := ui.messages[0]
		ui.messages = ui.messages[1:]
		n, ok := ui.Nodes.Get(msg.Destination)
		if !ok {
			continue
		}
		n.HandleMessage(ui, &msg)
	}
}

// QueuedMessages returns the number of messages waiting for delivery.
func (ui *Interface) QueuedMessages() int {
	return len(ui.messages)
}

// ProcessOSEvent delivers one raw input sample: it updates the cursor
// position from positional events and then hands the event to every
// live node's [Node.HandleOSEvent], synchronously. Handlers enqueue
// messages rather than mutating state, so delivery order across nodes
// does not matter.
func (ui *Interface) ProcessOSEvent(e events.Event) {
	if e.HasPos() {
		ui.cursorPosition = e.Pos()
	}
	for h, n := range ui.Nodes.All() {
		n.HandleOSEvent(h, ui, e)
	}
}

// InvalidateLayout marks the layout as stale, forcing a fresh
// measure/arrange pass on the next [Interface.Update].
func (ui *Interface) InvalidateLayout() {
	ui.needsLayout = true
}

// NeedsLayout returns whether a layout pass is pending.
func (ui *Interface) NeedsLayout() bool {
	return ui.needsLayout
}

// Update runs one cooperative tick: a layout pass if one is pending,
// then a full message flush. Layout runs first so that message handlers
// observe sizes from a fresh measure pass.
func (ui *Interface) Update() {
	if ui.needsLayout {
		ui.needsLayout = false
		ui.performLayout()
	}
	ui.FlushMessages()
}

// performLayout measures actual sizes bottom-up and assigns screen
// positions top-down, starting from the root.
func (ui *Interface) performLayout() {
	ui.measure(ui.root)
	ui.arrange(ui.root, math32.Vector2{})
}

// measure sets [Geom.Size] for the subtree: the declared desired size
// where given, otherwise the extent of the children per axis.
func (ui *Interface) measure(h pool.Handle) math32.Vector2 {
	wb := ui.Widget(h)
	if wb == nil {
		return math32.Vector2{}
	}
	var derived math32.Vector2
	for _, child := range wb.Children {
		csz := ui.measure(child)
		cw := ui.Widget(child)
		if cw == nil {
			continue
		}
		derived = derived.Max(cw.DesiredPosition.Add(csz))
	}
	size := derived.Max(math32.Vector2{})
	if wb.DesiredSize.X > 0 {
		size.X = wb.DesiredSize.X
	}
	if wb.DesiredSize.Y > 0 {
		size.Y = wb.DesiredSize.Y
	}
	wb.Geom.Size = size
	return size
}

// arrange assigns screen positions for the subtree.
func (ui *Interface) arrange(h pool.Handle, parentPos math32.Vector2) {
	wb := ui.Widget(h)
	if wb == nil {
		return
	}
	wb.Geom.Pos = parentPos.Add(wb.DesiredPosition)
	for _, child := range wb.Children {
		ui.arrange(child, wb.Geom.Pos)
	}
}

// CopyNode deep-copies the subtree rooted at the given handle,
// registers the copies, rewrites their handle fields with the
// resulting [HandleMapping], and links the new root under the UI root.
// It returns the handle of the copied root, or the nil handle if the
// source is dead.
func (ui *Interface) CopyNode(h pool.Handle) pool.Handle {
	m := HandleMapping{}
	nh := ui.copyNodeRec(h, m)
	if nh.IsNil() {
		return nh
	}
	for _, ch := range m {
		if n, ok := ui.Nodes.Get(ch); ok {
			n.Resolve(m)
		}
	}
	cw := ui.Widget(nh)
	cw.Parent = pool.Handle{}
	ui.LinkNodes(nh, ui.root)
	return nh
}

func (ui *Interface) copyNodeRec(h pool.Handle, m HandleMapping) pool.Handle {
	n, ok := ui.Nodes.Get(h)
	if !ok {
		return pool.Handle{}
	}
	nh := ui.addRaw(n.RawCopy())
	m[h] = nh
	for _, child := range n.AsWidget().Children {
		ui.copyNodeRec(child, m)
	}
	return nh
}
