package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// primitives returns the editor functions exposed to scripts, keyed by
// their global name.
func (h *Host) primitives() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		// editing
		"at":            h.at,
		"delete":        h.delete,
		"dirty":         h.dirty,
		"get_line":      h.getLine,
		"insert":        h.insert,
		"kill":          h.kill,
		"undo":          h.undo,
		"selection":     h.selection,
		"cut_selection": h.cutSelection,

		// movement
		"up":        h.motion(h.ed.Up),
		"down":      h.motion(h.ed.Down),
		"left":      h.motion(h.ed.Left),
		"right":     h.motion(h.ed.Right),
		"sol":       h.motion(h.ed.StartOfLine),
		"eol":       h.motion(h.ed.EndOfLine),
		"sof":       h.motion(h.ed.StartOfFile),
		"eof":       h.motion(h.ed.EndOfFile),
		"page_up":   h.motion(h.ed.PageUp),
		"page_down": h.motion(h.ed.PageDown),
		"point":     h.point,
		"mark":      h.mark,

		// screen and interaction
		"width":  h.width,
		"height": h.height,
		"status": h.status,
		"key":    h.key,
		"prompt": h.prompt,
		"find":   h.find,
		"eval":   h.eval,
		"exit":   h.exit,

		// files
		"open": h.open,
		"save": h.save,

		// buffers
		"buffer":        h.buffer,
		"buffers":       h.bufferCount,
		"create_buffer": h.createBuffer,
		"buffer_name":   h.bufferName,
		"kill_buffer":   h.killBuffer,
		"select_buffer": h.selectBuffer,

		// syntax
		"set_syntax":               h.setSyntax,
		"set_syntax_keywords":      h.setSyntaxKeywords,
		"set_syntax_comments":      h.setSyntaxComments,
		"syntax_highlight_numbers": h.highlightNumbers,
		"syntax_highlight_strings": h.highlightStrings,
	}
}
