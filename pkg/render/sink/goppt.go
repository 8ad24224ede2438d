package sink

import ppt "github.com/VantageDataChat/GoPPT"

// addShape appends an auto shape to a slide's shape tree. All GoPPT calls
// that build geometry go through here or through CreateRichTextShape.
func addShape(slide *ppt.Slide, shape *ppt.AutoShape) {
	slide.AddShape(shape)
}
