package widget

import (
	"fmt"
	"slices"

	"github.com/clipdeck/clipdeck/internal/geom"
	"github.com/clipdeck/clipdeck/internal/render"
	"github.com/clipdeck/clipdeck/internal/ui/input"
)

// Children owns the fixed list of child widgets of a container along with which child is
// active and which are selected. Children never refer back to their parent.
type Children[T Widget] struct {
	items    []T
	active   int
	selected map[int]struct{}
}

func NewChildren[T Widget](items ...T) (*Children[T], error) {
	if len(items) == 0 {
		return nil, ErrNoChildren
	}

	return &Children[T]{
		items:    slices.Clone(items),
		selected: map[int]struct{}{},
	}, nil
}

func (c *Children[T]) Len() int {
	return len(c.items)
}

func (c *Children[T]) At(index int) T {
	return c.items[index]
}

func (c *Children[T]) Active() T {
	return c.items[c.active]
}

func (c *Children[T]) ActiveIndex() int {
	return c.active
}

func (c *Children[T]) SetActive(index int) error {
	if err := c.check(index); err != nil {
		return err
	}

	c.active = index

	return nil
}

// Next moves the active index forward, reporting false when already on the last child.
func (c *Children[T]) Next() bool {
	if c.active+1 >= len(c.items) {
		return false
	}

	c.active++

	return true
}

// Prev moves the active index back, reporting false when already on the first child.
func (c *Children[T]) Prev() bool {
	if c.active == 0 {
		return false
	}

	c.active--

	return true
}

func (c *Children[T]) Select(index int) error {
	if err := c.check(index); err != nil {
		return err
	}

	c.selected[index] = struct{}{}

	return nil
}

func (c *Children[T]) Deselect(index int) {
	delete(c.selected, index)
}

// ToggleSelected flips the selection of index and returns the new value.
func (c *Children[T]) ToggleSelected(index int) (bool, error) {
	if err := c.check(index); err != nil {
		return false, err
	}

	if c.IsSelected(index) {
		c.Deselect(index)

		return false, nil
	}

	c.selected[index] = struct{}{}

	return true, nil
}

func (c *Children[T]) IsSelected(index int) bool {
	_, found := c.selected[index]

	return found
}

// Selected returns the selected indices in ascending order.
func (c *Children[T]) Selected() []int {
	indices := make([]int, 0, len(c.selected))
	for index := range c.selected {
		indices = append(indices, index)
	}

	slices.Sort(indices)

	return indices
}

// StateOf is the state child index is drawn with when its container is drawn with parent.
// Emphasis only shows along the active branch: unless the container itself is active every
// child is drawn without any.
func (c *Children[T]) StateOf(index int, parent State) State {
	if parent != StateActive {
		return StateNone
	}

	if index == c.active {
		return StateActive
	}

	if c.IsSelected(index) {
		return StateSelected
	}

	return StateNone
}

// Draw stacks every child below the previous one starting at rect and returns the rect each
// child consumed, in order.
func (c *Children[T]) Draw(surface render.Surface, rect geom.Rect, parent State) ([]geom.Rect, error) {
	consumed := make([]geom.Rect, 0, len(c.items))
	cursor := rect

	for index, child := range c.items {
		used, err := child.Draw(surface, cursor, c.StateOf(index, parent))
		if err != nil {
			return consumed, err
		}

		consumed = append(consumed, used)
		cursor = used.Next()
	}

	return consumed, nil
}

// HandleInput routes the event to the active child, and only to it.
func (c *Children[T]) HandleInput(event input.Event) bool {
	return c.items[c.active].HandleInput(event)
}

func (c *Children[T]) check(index int) error {
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndex, index, len(c.items))
	}

	return nil
}
