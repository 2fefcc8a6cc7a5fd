// Package memscene is a retained, in-memory implementation of scene.Scene.
//
// It keeps the primitive tree, measures text with a golang.org/x/image font
// face, hit-tests pointer positions and synthesizes over/out and click
// events the way a browser canvas does. Hosts feed it raw input through
// PointerMove, PointerDown, PointerUp and Key, and render it by walking the
// tree with Walk. Tests use it directly as a headless scene.
package memscene

import (
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/widgetkit/pkg/animation"
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/scene"
)

// Scene is an in-memory scene graph.
type Scene struct {
	face    font.Face
	root    *Node
	canvas  map[scene.PointerKind][]func(scene.PointerEvent)
	keys    []func(scene.KeyEvent)
	hovered *Node
	pressed *Node
	pointer graphics.Point
	nextID  int
}

var _ scene.Scene = (*Scene)(nil)

// New returns an empty scene measuring text with basicfont.Face7x13.
func New() *Scene {
	return NewWithFace(basicfont.Face7x13)
}

// NewWithFace returns an empty scene measuring text with face.
func NewWithFace(face font.Face) *Scene {
	s := &Scene{
		face:   face,
		canvas: make(map[scene.PointerKind][]func(scene.PointerEvent)),
	}
	s.root = s.newNode(scene.ShapeGroup)
	return s
}

// Face returns the font face used for text metrics.
func (s *Scene) Face() font.Face {
	return s.face
}

func (s *Scene) newNode(shape scene.Shape) *Node {
	s.nextID++
	return &Node{
		scene:    s,
		id:       s.nextID,
		shape:    shape,
		handlers: make(map[scene.PointerKind][]func(scene.PointerEvent)),
	}
}

func (s *Scene) attach(n *Node) *Node {
	if s.root != nil {
		s.root.add(n)
	}
	return n
}

// Rect implements scene.Scene.
func (s *Scene) Rect(width, height float64) scene.Primitive {
	n := s.newNode(scene.ShapeRect)
	n.bounds = graphics.RectXYWH(0, 0, width, height)
	return s.attach(n)
}

// Circle implements scene.Scene.
func (s *Scene) Circle(diameter float64) scene.Primitive {
	n := s.newNode(scene.ShapeCircle)
	n.bounds = graphics.RectXYWH(0, 0, diameter, diameter)
	return s.attach(n)
}

// Text implements scene.Scene.
func (s *Scene) Text(content string) scene.Text {
	n := s.newNode(scene.ShapeText)
	n.fill = graphics.ColorBlack
	n.content = content
	n.bounds = graphics.RectXYWH(0, 0, s.measure(content), s.lineHeight())
	return s.attach(n)
}

// Group implements scene.Scene.
func (s *Scene) Group() scene.Group {
	return s.attach(s.newNode(scene.ShapeGroup))
}

// OnPointer implements scene.Scene.
func (s *Scene) OnPointer(kind scene.PointerKind, h func(scene.PointerEvent)) {
	s.canvas[kind] = append(s.canvas[kind], h)
}

// OnKey implements scene.Scene.
func (s *Scene) OnKey(h func(scene.KeyEvent)) {
	s.keys = append(s.keys, h)
}

// LoopWidth implements scene.Scene.
func (s *Scene) LoopWidth(p scene.Primitive, width float64, period time.Duration) scene.Animation {
	ctrl := animation.NewAnimationController(period)
	ctrl.Curve = animation.EaseInOutSine
	return &widthLoop{target: p, width: width, ctrl: ctrl}
}

// Pump advances running animations to the current animation clock time.
func (s *Scene) Pump() {
	animation.StepTickers()
}

func (s *Scene) measure(content string) float64 {
	return float64(font.MeasureString(s.face, content)) / 64
}

func (s *Scene) lineHeight() float64 {
	return float64(s.face.Metrics().Height) / 64
}

// Pointer returns the last pointer position delivered to the scene.
func (s *Scene) Pointer() graphics.Point {
	return s.pointer
}

// Hovered returns the innermost primitive under the pointer, or nil.
func (s *Scene) Hovered() scene.Primitive {
	if s.hovered == nil {
		return nil
	}
	return s.hovered
}

// Walk visits every visible primitive in paint order, parents before
// children. depth is 0 for direct children of the canvas.
func (s *Scene) Walk(fn func(n *Node, depth int)) {
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		for _, c := range n.children {
			if c.hidden {
				continue
			}
			fn(c, depth)
			if c.shape == scene.ShapeGroup {
				walk(c, depth+1)
			}
		}
	}
	walk(s.root, 0)
}

type widthLoop struct {
	target  scene.Primitive
	width   float64
	base    float64
	ctrl    *animation.AnimationController
	unwatch func()
}

func (l *widthLoop) Start() {
	l.Stop()
	b := l.target.Bounds()
	l.base = b.Dx()
	height := b.Dy()
	tween := animation.TweenFloat64(l.base, l.width)
	l.unwatch = l.ctrl.AddListener(func() {
		l.target.SetSize(tween.Transform(l.ctrl), height)
	})
	l.ctrl.Repeat(true)
}

func (l *widthLoop) Stop() {
	if l.unwatch == nil {
		return
	}
	l.ctrl.Stop()
	l.unwatch()
	l.unwatch = nil
	l.target.SetSize(l.base, l.target.Bounds().Dy())
}

func (l *widthLoop) Running() bool {
	return l.ctrl.IsAnimating()
}
