package controller_test

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/snapline/pkg/action"
	"github.com/matzehuels/snapline/pkg/controller"
	"github.com/matzehuels/snapline/pkg/dom"
	"github.com/matzehuels/snapline/pkg/geom"
	"github.com/matzehuels/snapline/pkg/input"
	"github.com/matzehuels/snapline/pkg/spacing"
)

func ExampleDrag() {
	page := dom.NewNode("page", geom.Rect{Width: 400, Height: 400})
	hero := page.Append(dom.NewNode("hero", geom.Rect{Width: 100, Height: 100}))
	win := input.NewWindow()

	d := controller.NewDrag(controller.DragOptions{
		Common: controller.Common{
			ComponentID: "hero",
			Container:   hero,
			Window:      win,
			Dispatch: func(a action.Action) {
				out, _ := json.Marshal(a)
				fmt.Println(string(out))
			},
		},
		Grid: controller.Grid{GridEnabled: true, GridCols: 4},
	})

	d.Start(input.PointerEvent{X: 0, Y: 0})
	win.PointerMove(input.PointerEvent{X: 130, Y: 130})
	win.PointerUp(input.PointerEvent{X: 130, Y: 130})
	// Output:
	// {"id":"hero","left":"100px","top":"100px","type":"resize"}
}

func ExampleResize() {
	page := dom.NewNode("page", geom.Rect{Width: 1000, Height: 1000})
	card := page.Append(dom.NewNode("card", geom.Rect{Width: 100, Height: 100}))
	win := input.NewWindow()
	rec := &action.Recorder{}

	r := controller.NewResize(controller.ResizeOptions{
		Common:    controller.Common{ComponentID: "card", Container: card, Window: win, Dispatch: rec.Dispatch},
		WidthKey:  "widthDesktop",
		HeightKey: "heightDesktop",
		WidthVal:  "100px",
		HeightVal: "100px",
	})

	r.Start(input.PointerEvent{X: 100, Y: 100}, controller.HandleSE)
	win.PointerMove(input.PointerEvent{X: 150, Y: 150})
	last := rec.LastResize()
	fmt.Println(last.Fields["widthDesktop"], last.Fields["heightDesktop"], r.Snapping())

	win.PointerMove(input.PointerEvent{X: 150, Y: 150, Modifiers: input.Modifiers{Shift: true}})
	last = rec.LastResize()
	fmt.Println(last.Fields["widthDesktop"], last.Fields["heightDesktop"], r.Snapping())
	r.Close()
	// Output:
	// 150px 150px false
	// 100% 100% true
}

func ExampleSpacing() {
	page := dom.NewNode("page", geom.Rect{Width: 1000, Height: 1000})
	box := page.Append(dom.NewNode("box", geom.Rect{Width: 100, Height: 100}))
	win := input.NewWindow()
	rec := &action.Recorder{}

	s := controller.NewSpacing(controller.SpacingOptions{
		Common:     controller.Common{ComponentID: "box", Container: box, Window: win, Dispatch: rec.Dispatch},
		PaddingVal: "10px",
	})
	s.Start(input.PointerEvent{X: 0, Y: 0}, spacing.Padding, spacing.Top)
	win.PointerMove(input.PointerEvent{X: 0, Y: 5})
	fmt.Println(rec.LastResize().Fields["padding"])
	fmt.Printf("%+v\n", *s.Overlay())
	win.PointerUp(input.PointerEvent{X: 0, Y: 5})
	// Output:
	// 15px 10px 10px 10px
	// {Left:0 Top:0 Width:100 Height:15}
}
