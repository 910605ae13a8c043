// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ui implements a small retained-mode UI core: a generational
// arena of widget nodes, a FIFO routed-message queue drained once per
// tick, a minimal layout pass, and the [Popup] overlay widget.
package ui

import (
	"log/slog"

	"github.com/jinzhu/copier"

	"cogentcore.org/uix/events"
	"cogentcore.org/uix/math32"
	"cogentcore.org/uix/pool"
)

// Geom holds the screen-space layout results for a widget,
// produced by the layout pass.
type Geom struct {
	// Pos is the screen position of the top-left corner.
	Pos math32.Vector2

	// Size is the actual size from the last measure pass.
	Size math32.Vector2
}

// WidgetBase implements the [Node] interface and provides the core
// functionality for all uix widget variants, which must embed it.
// A plain WidgetBase is also usable directly as a generic container.
type WidgetBase struct {
	// Self is the handle of this node in the [Interface] arena,
	// set when the node is registered. Do not set directly.
	Self pool.Handle

	// Parent is the handle of this widget's parent, set by
	// [Interface.LinkNodes]. Do not set directly.
	Parent pool.Handle

	// Children are the handles of this widget's children, in render
	// order: later children render above earlier ones.
	Children []pool.Handle

	// Visible is whether this widget (and its subtree) is rendered.
	Visible bool

	// DesiredSize is the explicitly requested size. When zero on an
	// axis, the measure pass derives that axis from the children.
	DesiredSize math32.Vector2

	// DesiredPosition is the requested position relative to the parent.
	DesiredPosition math32.Vector2

	// Geom holds the screen-space results of the last layout pass.
	Geom Geom

	// ui is the owning manager, set when the node is registered.
	ui *Interface
}

// AsWidget returns the [WidgetBase] of this node.
func (wb *WidgetBase) AsWidget() *WidgetBase {
	return wb
}

// UI returns the [Interface] this widget is registered with,
// or nil before registration.
func (wb *WidgetBase) UI() *Interface {
	return wb.ui
}

// HandleMessage processes the widget-level message payloads:
// [WidgetTopmost] and [WidgetVisible].
func (wb *WidgetBase) HandleMessage(ui *Interface, msg *Message) {
	switch data := msg.Data.(type) {
	case WidgetTopmost:
		ui.moveToTop(wb.Self)
		msg.Handled = true
	case WidgetVisible:
		wb.SetVisible(data.Visible)
		msg.Handled = true
	}
}

// HandleOSEvent does nothing for the base widget.
func (wb *WidgetBase) HandleOSEvent(self pool.Handle, ui *Interface, e events.Event) {}

// Resolve rewrites the parent and child handles against the given
// mapping. Handles outside the mapped subtree are left unchanged.
func (wb *WidgetBase) Resolve(m HandleMapping) {
	m.Resolve(&wb.Parent)
	for i := range wb.Children {
		m.Resolve(&wb.Children[i])
	}
}

// RawCopy returns a deep copy of this widget.
func (wb *WidgetBase) RawCopy() Node {
	c := &WidgetBase{}
	nodeCopy(c, wb)
	return c
}

// nodeCopy deep-copies src into dst and clears slot-specific state.
// The copy's handle fields still refer to the original graph; they are
// rewritten by a subsequent [Node.Resolve] pass.
func nodeCopy(dst, src Node) {
	err := copier.CopyWithOption(dst, src, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("ui.nodeCopy: copy failed", "err", err)
	}
	dst.AsWidget().Self = pool.Handle{}
}

// Send enqueues a message with the given payload addressed to this
// widget. It is dropped if the widget is not registered yet.
func (wb *WidgetBase) Send(data any) {
	if wb.ui == nil {
		slog.Error("ui.WidgetBase.Send: widget is not registered with an Interface")
		return
	}
	wb.ui.Send(Message{Destination: wb.Self, Data: data})
}

// InvalidateLayout marks the layout as stale, forcing a fresh
// measure/arrange pass on the next [Interface.Update].
func (wb *WidgetBase) InvalidateLayout() {
	if wb.ui != nil {
		wb.ui.InvalidateLayout()
	}
}

// SetVisible sets the visibility of this widget and invalidates layout.
func (wb *WidgetBase) SetVisible(visible bool) {
	if wb.Visible == visible {
		return
	}
	wb.Visible = visible
	wb.InvalidateLayout()
}

// SetDesiredPosition sets the requested position relative to the parent
// and invalidates layout.
func (wb *WidgetBase) SetDesiredPosition(pos math32.Vector2) {
	if wb.DesiredPosition == pos {
		return
	}
	wb.DesiredPosition = pos
	wb.InvalidateLayout()
}

// ActualSize returns the size from the last measure pass.
// It is zero before the first layout pass has run.
func (wb *WidgetBase) ActualSize() math32.Vector2 {
	return wb.Geom.Size
}

// ScreenBounds returns the screen-space bounding box of this widget
// from the last layout pass.
func (wb *WidgetBase) ScreenBounds() math32.Box2 {
	return math32.Box2{Min: wb.Geom.Pos, Max: wb.Geom.Pos.Add(wb.Geom.Size)}
}

// WidgetBuilder assembles the base state shared by all widget variants.
// Configure it with the chained Set/Add methods, then either pass it to
// a variant builder or call [WidgetBuilder.Build] for a plain container.
type WidgetBuilder struct {
	// Visible is the initial visibility. Defaults to true.
	Visible bool

	// DesiredSize is the explicitly requested size, zero for
	// child-derived sizing.
	DesiredSize math32.Vector2

	// DesiredPosition is the initial position relative to the parent.
	DesiredPosition math32.Vector2

	// Children are previously built nodes to adopt as children.
	Children []pool.Handle
}

// NewWidgetBuilder returns a new [WidgetBuilder] with default settings.
func NewWidgetBuilder() *WidgetBuilder {
	return &WidgetBuilder{Visible: true}
}

// SetVisible sets the initial visibility.
func (b *WidgetBuilder) SetVisible(visible bool) *WidgetBuilder {
	b.Visible = visible
	return b
}

// SetSize sets the explicitly requested size.
func (b *WidgetBuilder) SetSize(size math32.Vector2) *WidgetBuilder {
	b.DesiredSize = size
	return b
}

// SetDesiredPosition sets the initial position relative to the parent.
func (b *WidgetBuilder) SetDesiredPosition(pos math32.Vector2) *WidgetBuilder {
	b.DesiredPosition = pos
	return b
}

// AddChild adds a previously built node as a child. Nil handles are
// ignored, so optional children can be passed through unconditionally.
func (b *WidgetBuilder) AddChild(child pool.Handle) *WidgetBuilder {
	if child.IsSome() {
		b.Children = append(b.Children, child)
	}
	return b
}

// Base returns the configured [WidgetBase] for embedding in a variant.
func (b *WidgetBuilder) Base() WidgetBase {
	return WidgetBase{
		Visible:         b.Visible,
		DesiredSize:     b.DesiredSize,
		DesiredPosition: b.DesiredPosition,
		Children:        b.Children,
	}
}

// Build registers a plain container widget and returns its handle.
func (b *WidgetBuilder) Build(ui *Interface) pool.Handle {
	wb := b.Base()
	return ui.AddNode(&wb)
}
