/*
Package compas provides the core of a retained-mode widget toolkit: glyph
layout, hit testing, a blinking caret, a text editor built from the three,
and a small scene graph driven one frame at a time by a Stage.

# Overview

Widgets are nodes in a tree of Containers. Each frame the Stage dispatches
pointer and key input, calls Update on every node that has it, draws the
tree into a pooled DrawList and hands the list to a Renderer. Concrete
widgets come from a ComponentFactory; the standard look-and-feel lives in
the standard subpackage and registers itself under "standard".

# Quick Start

	renderer, _ := opengl.NewRenderer(1280, 720)
	factory, _ := standard.NewFactory()
	renderer.UploadAtlas(factory.Font().Atlas())

	stage := compas.NewStage(renderer)
	field := factory.CreateTextField()
	field.SetPos(20, 20)
	stage.Add(field)

	for !window.ShouldClose() {
	    input.BeginFrame()
	    glfw.PollEvents()
	    if err := stage.Frame(input.Input()); err != nil {
	        return err
	    }
	    window.SwapBuffers()
	}

# Text Layout

ComputeLayout places one LayoutEntry per rune of a string. Characters on a
line are placed left to right using the width reported by FontMetrics.
A newline gets a zero-width entry at the pen position and moves the pen to
the start of the next line, which is the current character height plus the
line spacing further down. Layout.End is the slot after the last rune.

	l := compas.ComputeLayout("AB\nC", metrics, -8)
	l.PositionOf(3) // top-left corner of 'C'

# Hit Testing

HitTest maps a widget-local point to the index of the character whose box
contains it, or HitNone. Boxes are (textOrigin + entry) * scale and
half-open on both axes. Newline entries have zero width and never match.

# Caret

A Caret blinks on a frame counter: with the default period of 40 ticks it
is hidden for ticks 0 to 19 and visible for 20 to 39. Moving the caret does
not restart the blink.

# Keyboard

While a node holds focus the Stage forwards typed text as KeyTypeEvent and
the following keys as KeyEvent, with key repeat:

	Left / Right     Move the caret one character
	Home / End       Jump to the start or end of the text
	Enter            Insert a newline (multiline) or submit (single line)

Tab moves focus to the next focusable node, and Escape clears focus. Within
one frame, typed text is delivered before navigation keys, and both before
Tab and Escape.

# Logging

The package logs through log/slog. SetVerbose enables debug output;
SetLogger installs a custom logger.
*/
package compas
